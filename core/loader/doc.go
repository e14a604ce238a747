// Package loader provides the plugin-like feature loading system.
//
// The request routes of the server are not part of the bootstrap: they are
// supplied as features and mounted at the root path after the static file
// handlers and before the not-found handler.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(r fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in registration order, via LoadAll()
package loader
