package server

import (
	"errors"
	"net/http"

	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// writeGameError maps domain errors to status codes. Anything unknown is a
// 500 and is not echoed to the client.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, marcopolo.ErrDuplicateGuess),
		errors.Is(err, marcopolo.ErrProcessing),
		errors.Is(err, marcopolo.ErrSessionOver),
		errors.Is(err, marcopolo.ErrNotFinished),
		errors.Is(err, marcopolo.ErrSubmitted),
		errors.Is(err, marcopolo.ErrHintUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, marcopolo.ErrUnknownCountry):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, marcopolo.ErrPlayerRequired),
		errors.Is(err, game.ErrUnsupported):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, highscore.ErrSubmissionFailed),
		errors.Is(err, highscore.ErrFetchFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
