package service

import "errors"

var (
	// ErrIndexUnavailable is returned when the application shell document
	// cannot be read or rendered. The storage error is not wrapped: a
	// missing shell is an internal failure, not a missing page.
	ErrIndexUnavailable = errors.New("application shell document is unavailable")
)
