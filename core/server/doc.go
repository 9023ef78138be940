// Package server holds configuration for the optional HTTP read surface
// exposed by the serve command.
package server
