package client

import "errors"

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrNotFound              = errors.New("template not found")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
