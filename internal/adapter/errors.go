package adapter

import "errors"

var (
	ErrUnhealthy      = errors.New("server unhealthy")
	ErrInvalidAddress = errors.New("invalid server address")
)
