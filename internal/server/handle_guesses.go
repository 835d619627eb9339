package server

import (
	"net/http"
	"strings"

	"github.com/playperu/marcopolo/internal/game"
)

type GuessRequest struct {
	Name string `json:"name"`
}

type GuessResponse struct {
	Result  game.Result     `json:"result"`
	Session SessionResponse `json:"session"`
}

func handleGuess(cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		s := sessionFrom(r)
		res, err := s.SubmitName(req.Name)
		if err != nil {
			writeGameError(w, err)
			return
		}
		snap, err := s.Snapshot()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, GuessResponse{
			Result:  res,
			Session: newSessionResponse(s.ID, snap, cdn),
		})
	}
}

func handleSuggestions(cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := sessionFrom(r).Suggestions(r.URL.Query().Get("q"))
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, countryResponses(matches, cdn))
	}
}

func handleHint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := sessionFrom(r).Hint()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

func handleGiveUp(cdn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		if err := s.GiveUp(); err != nil {
			writeGameError(w, err)
			return
		}
		writeSession(w, http.StatusOK, s, cdn)
	}
}
