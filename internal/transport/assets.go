package transport

import (
	"net/http"

	"templatedesk/internal/config"

	"github.com/spf13/afero"
)

// NewAssetHandler serves the managed directory to the webview, with the
// start page at the root.
func NewAssetHandler(cfg *config.Config, startPage string) http.Handler {
	files := http.FileServer(afero.NewHttpFs(cfg.Fs).Dir(cfg.TemplatesDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			files.ServeHTTP(w, r)
			return
		}

		f, err := cfg.Fs.Open(startPage)
		if err != nil {
			cfg.Logger.Error("Start page unavailable", "path", startPage, "error", err)
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}
