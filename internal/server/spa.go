package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// handleSPA serves the built SPA from dir. Unknown paths get index.html so
// client-side routes such as /flag survive a reload; the shell is never
// cached by the browser so a new build is picked up on the next load.
func handleSPA(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, index)
	}
}
