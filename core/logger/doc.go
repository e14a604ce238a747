// Package logger provides a structured logging facility based on Zap.
//
// New builds the console logger used by the CLI. Open builds the full Set a
// running server needs: the application logger (console, logger-info.log and
// logger-error.log), the access logger (http-error.log) and the exceptions
// logger (logger-exceptions.log, echoed to the console). Files live in
// Config.Dir, are opened in append mode and rotate through lumberjack.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry, so all logs of a single request can be correlated.
//
// # Usage
//
//	logs, err := logger.Open(&cfg.Log, cfg.Server.Debug)
//	defer logs.Close()
//	logs.App.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(logs.App, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
