package store

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AssetStorage gives read-only access to files below a single root
// directory. Names are slash-separated and relative to the root.
type AssetStorage interface {
	// Open returns the named file. The caller must close Asset.Content.
	Open(ctx context.Context, name string) (*Asset, error)

	// ReadFile returns the whole content of the named file.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Asset is an opened file from an [AssetStorage].
type Asset struct {
	// Name is the slash-separated name the asset was opened with.
	Name string

	// ModTime is the last modification time of the file.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Content reads the file. It supports seeking so that it can be served
	// with range and conditional request support.
	Content io.ReadSeekCloser
}
