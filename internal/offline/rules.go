package offline

import (
	"net/http"
	"net/url"
	"strings"
)

// DefaultBypassHosts are cross-origin services whose requests always go
// straight to the network.
var DefaultBypassHosts = []string{
	"firestore.googleapis.com",
	"firebase",
	"unpkg.com",
	"flagcdn.com",
}

// DefaultManifest lists the assets pre-cached on install.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/register-sw.js",
	"/earth-sepia.jpg",
	"/night-sky.png",
	"/icons/icon-72x72.png",
	"/icons/icon-96x96.png",
	"/icons/icon-128x128.png",
	"/icons/icon-144x144.png",
	"/icons/icon-152x152.png",
	"/icons/icon-192x192.png",
	"/icons/icon-384x384.png",
	"/icons/icon-512x512.png",
	"/icons/icon-placeholder.svg",
}

// ShellKey is the cached document served for every page load.
const ShellKey = "/index.html"

// bypass reports whether a request must not be intercepted at all.
func (w *Worker) bypass(u *url.URL) bool {
	raw := u.String()
	if u.Scheme == "ws" || u.Scheme == "wss" ||
		strings.Contains(raw, "/__vite_ping") {
		return true
	}
	if w.dev && strings.Contains(raw, "/@vite/client") {
		return true
	}
	for _, h := range w.bypassHosts {
		if strings.Contains(raw, h) {
			return true
		}
	}
	if w.dev {
		for _, s := range []string{"node_modules", "/@", "?t=", "?v="} {
			if strings.Contains(raw, s) {
				return true
			}
		}
	}
	return false
}

// isNavigation reports whether r is a full-page load.
func isNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if mode := r.Header.Get("Sec-Fetch-Mode"); mode != "" {
		return mode == "navigate"
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// cacheKey is the path and query of a same-origin URL.
func cacheKey(u *url.URL) string {
	key := u.EscapedPath()
	if key == "" {
		key = "/"
	}
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key
}
