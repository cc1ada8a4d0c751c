package ratelimiter

import "errors"

// ErrInvalidConfig indicates the bucket configuration is unusable.
var ErrInvalidConfig = errors.New("ratelimiter: invalid config")
