package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for compressible responses.
const compressionLevel = 5

// withCompression gzips responses for clients that accept it. Range requests
// are served uncompressed: http.ServeContent counts Content-Range in bytes of
// the file, which would not match a gzipped body.
func withCompression(next http.Handler) http.Handler {
	compressed := middleware.Compress(compressionLevel)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Range") != "" {
			next.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}
