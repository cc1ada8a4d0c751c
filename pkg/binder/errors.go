package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMalformedBody        = errors.New("binder: malformed request body")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
)
