// Package httpserver wraps net/http with graceful shutdown, sensible
// timeouts and structured logging for ThreadCraft services.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithLogger(log),
//	)
//
//	// Blocks until the context is cancelled or SIGINT/SIGTERM arrives.
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
package httpserver
