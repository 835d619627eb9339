package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/offline"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Logger      *slog.Logger
	Catalog     *catalog.Catalog
	Sessions    *Registry
	Broker      *Broker
	Leaderboard highscore.Leaderboard
	// Offline fronts the SPA when set; otherwise SPADir is served.
	Offline *offline.Worker
	SPADir  string
	FlagCDN string
	Clock   clockwork.Clock
}

func addRoutes(r chi.Router, d Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Handle("/docs", handleSwaggerUI())
	r.Handle("/docs/*", handleSwaggerUI())

	r.Route("/api", func(r chi.Router) {
		r.Use(playerMiddleware())

		r.Get("/countries", handleListCountries(d.Catalog, d.FlagCDN))
		r.Post("/sessions", handleStartSession(d.Logger, d.Sessions, d.FlagCDN))

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Use(sessionMiddleware(d.Sessions))
			r.Get("/", handleGetSession(d.FlagCDN))
			r.Delete("/", handleDeleteSession(d.Sessions))
			r.Post("/reset", handleResetSession(d.FlagCDN))
			r.Post("/guesses", handleGuess(d.FlagCDN))
			r.Get("/suggestions", handleSuggestions(d.FlagCDN))
			r.Post("/hint", handleHint())
			r.Post("/give-up", handleGiveUp(d.FlagCDN))
			r.Get("/events", handleEvents(d.Broker, d.Clock))
			r.Post("/highscore", handleSubmitHighscore(d.Logger, d.Leaderboard))
		})

		r.Get("/highscores/{game}", handleListHighscores(d.Logger, d.Leaderboard))
		r.Post("/offline/messages", handleOfflineMessage(d.Logger, d.Offline))
	})

	switch {
	case d.Offline != nil:
		d.Logger.Info("serving SPA through offline cache")
		r.NotFound(d.Offline.ServeHTTP)
	case d.SPADir != "":
		if info, err := os.Stat(d.SPADir); err == nil && info.IsDir() {
			d.Logger.Info("serving SPA", "dir", d.SPADir)
			r.NotFound(handleSPA(d.SPADir))
		}
	}
}
