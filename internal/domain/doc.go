// Package domain defines the shared setting value types, repository
// interfaces and error values used across the application.
package domain
