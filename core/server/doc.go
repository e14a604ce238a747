// Package server holds the HTTP server settings and the listen lifecycle.
//
// # Configuration
//
// The Config struct carries the environment name, debug flag and the raw port
// value read from NODE_ENV, DEBUG and PORT, plus the asset directories and
// timing settings of the server.
//
// # Listen targets
//
// NormalizePort turns the raw port value into a ListenTarget: a TCP port, a
// pipe (unix socket) path, or an invalid target. Bind opens the target on the
// wildcard address and classifies failures as a *BindError; OnBindError turns
// permission and address-in-use failures into a diagnostic and exit status 1;
// everything else goes to the exceptions log and is re-raised.
//
// # Usage
//
//	target := server.NormalizePort(cfg.Server.Port)
//	ln, err := server.Bind(target)
//	if err != nil {
//	    server.OnBindError(err, os.Stderr, os.Exit, logs.Exceptions)
//	}
//	server.LogListening(log, ln.Addr())
package server
