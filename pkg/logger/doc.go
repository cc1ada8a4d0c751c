// Package logger builds configured slog.Logger instances for ThreadCraft
// services. It standardizes output format, level and static attributes so
// every process logs the same way.
//
//	log := logger.New(
//	    logger.WithProduction("threadcraft-api"),
//	)
//	log.Info("server started", "addr", ":8080")
//
// Development preset switches to human-readable text output at debug level:
//
//	log := logger.New(logger.WithDevelopment("threadcraft-api"))
package logger
