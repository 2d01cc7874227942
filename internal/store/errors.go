package store

import "errors"

// Sentinel errors returned by [AssetStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrAssetNotFound is returned when the requested name does not exist
	// below the root, names a directory, or could not be resolved inside
	// the root.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrInvalidAssetPath is returned for names that are empty, absolute,
	// or contain ".." segments, i.e. names that could leave the root.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrReadingAsset is returned when a file exists but could not be read.
	ErrReadingAsset = errors.New("error reading asset")
)
