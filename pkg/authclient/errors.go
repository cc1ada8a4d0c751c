package authclient

import "errors"

var (
	// ErrInvalidBaseURL indicates the configured base URL could not be parsed.
	ErrInvalidBaseURL = errors.New("authclient: invalid base URL")

	// ErrUnexpectedStatus indicates the server answered with a status the
	// wire contract does not define.
	ErrUnexpectedStatus = errors.New("authclient: unexpected response status")

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = errors.New("authclient: malformed response body")
)
