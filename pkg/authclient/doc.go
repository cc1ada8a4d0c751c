// Package authclient implements the HTTP client side of the ThreadCraft
// authentication API: session validation, login and logout over JSON.
//
// Sessions are cookie-based. The client carries an in-memory cookie jar so
// the session cookie issued by login is replayed on subsequent requests;
// no token ever touches persistent storage.
//
// The client satisfies authstate.Client and maps transport outcomes to that
// contract: HTTP 401 on validation becomes authstate.ErrNoSession, a
// rejected login becomes *authstate.LoginError carrying the server message.
//
//	client, err := authclient.New(
//	    authclient.WithBaseURL("https://app.threadcraft.io"),
//	)
package authclient
