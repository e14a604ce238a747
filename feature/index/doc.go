// Package index provides the default router mounted at "/".
//
// # HTTP Endpoints
//
//   - GET / : Renders the "index" view inside the main layout.
package index
