package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

type HighscoreRequest struct {
	Player string `json:"player"`
}

type HighscoreResponse struct {
	Submitted  bool                          `json:"submitted"`
	Submission marcopolo.HighscoreSubmission `json:"submission"`
}

// handleSubmitHighscore posts the finished session's score upstream, once.
// A failure leaves the session untouched so the player can submit again.
func handleSubmitHighscore(logger *slog.Logger, board highscore.Leaderboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HighscoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		s := sessionFrom(r)
		sub, done, err := s.BeginSubmission(req.Player)
		if err != nil {
			writeGameError(w, err)
			return
		}

		err = board.Submit(r.Context(), sub)
		done(err == nil)
		if err != nil {
			logger.Warn("highscore submission failed", "session", s.ID, "error", err)
			writeError(w, http.StatusBadGateway, "Failed to submit highscore")
			return
		}
		writeJSON(w, http.StatusCreated, HighscoreResponse{Submitted: true, Submission: sub})
	}
}

func handleListHighscores(logger *slog.Logger, board highscore.Leaderboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := marcopolo.ParseMode(chi.URLParam(r, "game"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entries, err := board.List(r.Context(), mode)
		if err != nil {
			if !errors.Is(err, highscore.ErrFetchFailed) {
				logger.Error("listing highscores", "game", mode, "error", err)
			}
			writeError(w, http.StatusBadGateway, "Failed to fetch highscores")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
