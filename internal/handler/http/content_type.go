package http

import (
	"mime"
	"path"
	"strings"
)

const defaultContentType = "application/octet-stream"

// contentTypes pins the types the client relies on. mime.TypeByExtension
// depends on the host's MIME tables, which differ between systems.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".js":    "application/javascript",
	".mjs":   "application/javascript",
	".css":   "text/css",
	".json":  "application/json",
	".map":   "application/json",
	".txt":   "text/plain; charset=utf-8",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".webp":  "image/webp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".wav":   "audio/wav",
	".mp3":   "audio/mpeg",
	".wasm":  "application/wasm",
}

// contentTypeByExtension infers the Content-Type of name from its extension,
// falling back to the standard MIME table and then to
// application/octet-stream.
func contentTypeByExtension(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return defaultContentType
	}

	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	return defaultContentType
}
