package auth

import "errors"

var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUserNotFound indicates no account matches the lookup.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrEmailTaken indicates an account with the email already exists.
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrSessionNotFound indicates the token resolves to no live session.
	ErrSessionNotFound = errors.New("auth: session not found")

	// ErrTokenGeneration indicates secure token generation failed.
	ErrTokenGeneration = errors.New("auth: token generation failed")
)
