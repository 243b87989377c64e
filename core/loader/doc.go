// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its own
// routes. Features that need to warm state after the server starts also
// implement Initializer.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of features:
//   - Register adds a feature
//   - LoadAll registers the routes of enabled features
//   - InitAll runs Init on enabled initializers in the background and reports
//     the first failure on the returned channel
package loader
