package server

import (
	"log/slog"
	"net/http"

	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

type StartSessionRequest struct {
	Mode marcopolo.Mode `json:"mode"`
}

// SessionResponse is the player's view of a session. The target country is
// never included while the session is running.
type SessionResponse struct {
	ID string `json:"id"`
	game.Snapshot
	// FlagURL is the flag of the current Flag-mode round.
	FlagURL string `json:"flagUrl,omitempty"`
	// Ranked holds Distance-mode guesses ordered closest first.
	Ranked []marcopolo.Guess `json:"ranked,omitempty"`
	// HighscoreSubmitted is set once the score reached the leaderboard.
	HighscoreSubmitted bool `json:"highscoreSubmitted"`
}

func newSessionResponse(id string, snap game.Snapshot, cdn string) SessionResponse {
	resp := SessionResponse{ID: id, Snapshot: snap}
	switch snap.Mode {
	case marcopolo.ModeFlag:
		if snap.Round != nil && !snap.Status.Terminal() {
			resp.FlagURL = snap.Round.Country.FlagURL(cdn, flagHeight)
		}
	case marcopolo.ModeDistance:
		resp.Ranked = marcopolo.SortedByDistance(snap.Guesses)
	}
	return resp
}

func writeSession(w http.ResponseWriter, status int, s *game.Session, cdn string) {
	snap, err := s.Snapshot()
	if err != nil {
		writeGameError(w, err)
		return
	}
	resp := newSessionResponse(s.ID, snap, cdn)
	resp.HighscoreSubmitted = s.Submitted()
	writeJSON(w, status, resp)
}

func handleStartSession(logger *slog.Logger, sessions *Registry, cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		mode, err := marcopolo.ParseMode(string(req.Mode))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s, err := sessions.Start(playerFrom(r), mode)
		if err != nil {
			logger.Error("starting session", "mode", mode, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeSession(w, http.StatusCreated, s, cdn)
	}
}

func handleGetSession(cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSession(w, http.StatusOK, sessionFrom(r), cdn)
	}
}

// handleResetSession restarts the session in the same mode. A pending round
// transition of the old engine is dropped.
func handleResetSession(cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		if err := s.Reset(); err != nil {
			writeGameError(w, err)
			return
		}
		writeSession(w, http.StatusOK, s, cdn)
	}
}

func handleDeleteSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Remove(sessionFrom(r).ID)
		w.WriteHeader(http.StatusNoContent)
	}
}
