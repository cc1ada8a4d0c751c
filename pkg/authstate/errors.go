package authstate

import "errors"

var (
	// ErrNoSession is reported by Client.Me when the server confirms no
	// session exists (HTTP 401 or a success payload without a user). It is
	// an expected outcome, not a failure.
	ErrNoSession = errors.New("authstate: no active session")
)

// LoginError carries the human-readable message of a rejected login attempt.
// Clients return it when the server explicitly refused the credentials, as
// opposed to a transport failure.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}
