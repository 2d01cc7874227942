package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "javascript", file: "js/app.js", want: "application/javascript"},
		{name: "stylesheet", file: "css/style.css", want: "text/css"},
		{name: "html", file: "partials/help.html", want: "text/html; charset=utf-8"},
		{name: "json", file: "data/grammars.json", want: "application/json"},
		{name: "png", file: "img/logo.png", want: "image/png"},
		{name: "jpeg", file: "img/photo.jpeg", want: "image/jpeg"},
		{name: "svg", file: "img/icon.svg", want: "image/svg+xml"},
		{name: "favicon", file: "favicon.ico", want: "image/x-icon"},
		{name: "wav", file: "audio/beep.wav", want: "audio/wav"},
		{name: "upper case extension", file: "JS/APP.JS", want: "application/javascript"},
		{name: "no extension", file: "LICENSE", want: "application/octet-stream"},
		{name: "unknown extension", file: "blob.zz9unknown", want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentTypeByExtension(tt.file))
		})
	}
}
