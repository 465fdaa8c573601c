// Package handler exposes the settings service over HTTP.
//
// The JSON API reads and writes individual settings; the settings page
// renders an overview of every registered key for the server's admin UI.
// Validation failures never reach the store: they map to client errors.
package handler
