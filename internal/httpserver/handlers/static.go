package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
)

// Static serves the website assets with SPA-style fallbacks:
// "/" and any extension-less path serve index.html, "/admin" serves the
// admin console. Returns nil when no static directory is configured so
// the route can stay unregistered.
func Static(d deps.Deps) http.HandlerFunc {
	root := d.StaticDir
	if root == "" {
		return nil
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		// path.Clean collapses any ".." segment, keeping lookups inside root.
		p := path.Clean("/" + r.URL.Path)

		switch {
		case p == "/" || p == "/index.html":
			p = "/index.html"
		case p == "/admin" || p == "/admin/":
			p = "/admin/admin.html"
		case path.Ext(p) == "":
			// Extension-less routes belong to the client-side router.
			p = "/index.html"
		}

		full := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
		if fi, err := os.Stat(full); err != nil || fi.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, full)
	}
}
