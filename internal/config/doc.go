// Package config handles process-level configuration loading.
//
// Configuration is read from environment variables with sensible defaults.
// The Windows filename override is resolved here, once, so the validator
// itself stays deterministic.
package config
