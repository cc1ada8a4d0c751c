package redis

import "errors"

var (
	// ErrParseURL indicates the connection URL could not be parsed.
	ErrParseURL = errors.New("redis: failed to parse connection URL")

	// ErrNotReady indicates all connection attempts failed.
	ErrNotReady = errors.New("redis: server not ready")
)
