package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

const indexFile = "index.html"

// NotFound responde 404 em JSON para /api/* e serve o frontend nos demais caminhos
func NotFound(distPath string) http.Handler {
	frontend := FrontendHandler(distPath)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
			return
		}
		frontend.ServeHTTP(w, r)
	})
}

// FrontendHandler serve os arquivos do build do frontend. Caminhos sem arquivo
// correspondente recebem o index.html, para o roteamento do lado do cliente.
func FrontendHandler(distPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
			return
		}

		cleaned := path.Clean("/" + r.URL.Path)
		target := filepath.Join(distPath, filepath.FromSlash(cleaned))

		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			http.ServeFile(w, r, target)
			return
		}

		index := filepath.Join(distPath, indexFile)
		if _, err := os.Stat(index); err != nil {
			log.ForContext(r.Context()).WithField("dist_path", distPath).Warn("handler: frontend não encontrado")
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
			return
		}

		// ServeContent evita o redirecionamento que ServeFile faz para */index.html
		f, err := os.Open(index)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
			return
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
			return
		}
		http.ServeContent(w, r, indexFile, stat.ModTime(), f)
	})
}
