package api

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/mediatrackapp/mediatrack-server/internal/http/response"
)

//go:embed all:web
var webAssets embed.FS

// setupWebRoutes serves the embedded frontend. Unmatched GET paths fall
// back to index.html so client-side routing works on refresh.
func (s *Server) setupWebRoutes() {
	assets, err := fs.Sub(webAssets, "web")
	if err != nil {
		// The web directory is compiled in; a failure here is a build defect.
		panic(err)
	}
	fileServer := http.FileServer(http.FS(assets))

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			response.NotFound(w, "route not found", s.logger)
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			response.Error(w, http.StatusMethodNotAllowed, "method not allowed", s.logger)
			return
		}

		// Paths with an extension are static assets; everything else is
		// a client-side route served by the SPA shell.
		if path.Ext(r.URL.Path) != "" {
			fileServer.ServeHTTP(w, r)
			return
		}

		s.serveIndex(w)
	})
}

func (s *Server) serveIndex(w http.ResponseWriter) {
	data, err := webAssets.ReadFile("web/index.html")
	if err != nil {
		s.logger.Error("Failed to read index.html", "error", err)
		response.InternalError(w, s.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
