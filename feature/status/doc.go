// Package status exposes a health endpoint for operators.
//
// # HTTP Endpoints
//
//   - GET /status : Environment, uptime and Redis reachability. Returns 503
//     when the store is configured but does not answer a ping; the ping error
//     is only included outside production.
package status
