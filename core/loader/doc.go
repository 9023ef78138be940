// Package loader provides the plugin-like feature loading system for serve
// mode.
//
// It allows the application to register and initialize features (modules)
// dynamically. Each feature implements the Feature interface, which defines
// its lifecycle hooks and route registration logic.
package loader
