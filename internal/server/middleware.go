package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/playperu/marcopolo/internal/game"
)

type ctxKey int

const (
	ctxKeyPlayer ctxKey = iota
	ctxKeySession
)

const (
	playerCookieName = "mp_player"
	playerCookieTTL  = 365 * 24 * time.Hour
)

// playerMiddleware identifies the browser by the mp_player cookie, issuing
// a fresh ID when the cookie is missing or malformed.
func playerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var playerID string
			if c, err := r.Cookie(playerCookieName); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					playerID = id.String()
				}
			}
			if playerID == "" {
				playerID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     playerCookieName,
					Value:    playerID,
					Path:     "/",
					MaxAge:   int(playerCookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ctxKeyPlayer, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionMiddleware resolves {id} to a session owned by the caller. Sessions
// of other players are reported as missing.
func sessionMiddleware(sessions *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sessions.Get(chi.URLParam(r, "id"))
			if err != nil || s.PlayerID != playerFrom(r) {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func playerFrom(r *http.Request) string {
	return r.Context().Value(ctxKeyPlayer).(string)
}

func sessionFrom(r *http.Request) *game.Session {
	return r.Context().Value(ctxKeySession).(*game.Session)
}
