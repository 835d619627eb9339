package server

import (
	"log/slog"
	"net/http"

	"github.com/playperu/marcopolo/internal/offline"
)

type OfflineStateResponse struct {
	State string `json:"state"`
}

func handleOfflineMessage(logger *slog.Logger, worker *offline.Worker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if worker == nil {
			writeError(w, http.StatusNotFound, "offline cache disabled")
			return
		}

		var msg offline.Message
		if err := readJSON(r, &msg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := worker.HandleMessage(r.Context(), msg); err != nil {
			logger.Error("offline message failed", "type", msg.Type, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, OfflineStateResponse{State: worker.State().String()})
	}
}
