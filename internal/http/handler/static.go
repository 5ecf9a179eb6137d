package handler

import (
	"io/fs"
	"net/http"
	"strings"
)

// Static отдаёт встроенные ассеты. В prod — долгий кэш,
// в dev — короткий, чтобы правки были видны сразу.
func Static(files fs.FS, prefix string, isProd bool) http.Handler {
	cacheControl := "public, max-age=300"
	if isProd {
		cacheControl = "public, max-age=86400"
	}
	fileServer := http.StripPrefix(prefix, http.FileServerFS(files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// без листинга каталогов
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		w.Header().Set("Vary", "Accept-Encoding")
		fileServer.ServeHTTP(w, r)
	})
}
