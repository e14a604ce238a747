// Package app assembles the Fiber application.
//
// New wires the middleware chain, the view engine (html/template files with
// the "layouts/main" layout), static files, the loaded features and the
// not-found handler, in that order. Unmatched requests get a 404 with the
// JSON body {"code":404}.
//
// # Error handling
//
// The error handler is picked once from the environment: production renders
// the error view with "see log" and no detail, every other environment
// renders the message and the error text. Both log the error with its ray id.
// Panics are recovered, written to the exceptions log and answered with 500.
package app
