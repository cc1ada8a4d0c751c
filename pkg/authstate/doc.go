// Package authstate owns the client-side authentication session state for
// the ThreadCraft dashboard and mediates every transition caused by login,
// logout or server-side re-validation.
//
// The package is built from three collaborating pieces:
//
//   - Store holds the Session value (current user, loading flag,
//     initialization flag, last login error) and notifies subscribers
//     synchronously on every mutation. It performs no I/O.
//   - Manager drives the three state-changing operations (CheckAuth, Login,
//     Logout) against a Client and writes outcomes into the Store. CheckAuth
//     is single-flight and rate limited so background re-validation can never
//     pile up requests.
//   - Provider bridges a Manager into an application lifecycle: it performs
//     the one initial CheckAuth, owns the periodic re-validation ticker while
//     a user is signed in, and forwards login failures to a Notifier.
//
// All three are explicit values constructed at application bootstrap and
// threaded through as dependencies, so tests can run any number of
// independent instances.
//
// # Usage
//
//	client, _ := authclient.New(authclient.WithBaseURL("https://app.threadcraft.io"))
//	manager := authstate.NewManager(client, authstate.WithLogger(log))
//	provider := authstate.NewProvider(manager,
//	    authstate.WithNotifier(func(msg string) { toasts.Error(msg) }),
//	)
//
//	go provider.Run(ctx) // initial check + periodic re-validation
//
//	if err := provider.Login(ctx, email, password); err == nil {
//	    user := provider.State().User
//	    // ...
//	}
//
// Background validation failures (including an expired session) degrade
// silently to the signed-out state; only Login failures carry a user-visible
// message.
package authstate
