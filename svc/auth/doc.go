// Package auth implements the server side of the ThreadCraft session
// contract: cookie-based login, logout and session validation backed by a
// user store (PostgreSQL) and a session store (Redis).
//
// The HTTP surface is three JSON endpoints answering the
// {success, user, message} envelope:
//
//	POST /api/auth/login   {email, password} -> session cookie + user
//	POST /api/auth/logout  -> clears the session cookie
//	GET  /api/auth/me      -> current user, 401 when no session exists
//
// Sessions are opaque random tokens delivered in an HttpOnly cookie and
// resolved server-side; nothing about the user is encoded in the token.
package auth
