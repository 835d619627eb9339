package offline

import (
	"errors"
	"net/http"
	"strconv"
)

// ServeHTTP proxies r to the origin through the caching policy.
func (w *Worker) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	resp, err := w.Fetch(r.Context(), r)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, ErrTooLarge):
		case errors.Is(err, ErrNoResponse):
			status = http.StatusServiceUnavailable
		}
		w.logger.Warn("offline proxy failed", "path", r.URL.Path, "error", err)
		http.Error(rw, http.StatusText(status), status)
		return
	}

	h := rw.Header()
	for k, vs := range resp.Header {
		h[k] = append([]string(nil), vs...)
	}
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	rw.WriteHeader(resp.Status)
	if r.Method != http.MethodHead {
		rw.Write(resp.Body)
	}
}
