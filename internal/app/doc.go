// Package app provides application initialization and lifecycle management.
//
// The App type wires process configuration, the setting registry, the
// settings service instance and the HTTP server together, and handles
// graceful shutdown on signal or context cancellation.
package app
