// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Security: Applies the helmet security headers and the spoofed
//     X-Powered-By server identification.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RealIP: Resolves the client address as the right-most X-Forwarded-For
//     hop that is not a trusted proxy.
//   - AccessLog: Writes one entry per request that ends with status >= 400.
//
// These middleware components are registered globally, in that order, by
// core/app before any static files or routes.
package middleware
