package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/playperu/marcopolo/internal/marcopolo"
)

// TickEvent is the once-a-second display update. It never drives state.
type TickEvent struct {
	ElapsedSeconds int              `json:"elapsedSeconds"`
	Status         marcopolo.Status `json:"status"`
}

func handleEvents(broker *Broker, clock clockwork.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		flusher.Flush()

		ch := broker.Subscribe(s.ID)
		defer broker.Unsubscribe(s.ID, ch)

		tick := clock.NewTicker(time.Second)
		defer tick.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-broker.Done():
				return
			case msg := <-ch:
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
				flusher.Flush()
			case <-tick.Chan():
				snap, err := s.Snapshot()
				if err != nil {
					// Session closed or replaced.
					fmt.Fprintf(w, "event: closed\ndata: {}\n\n")
					flusher.Flush()
					return
				}
				data, _ := json.Marshal(TickEvent{ElapsedSeconds: snap.ElapsedSeconds, Status: snap.Status})
				fmt.Fprintf(w, "event: tick\ndata: %s\n\n", data)
				flusher.Flush()
			}
		}
	}
}
