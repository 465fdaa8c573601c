// Package storage provides the BoltDB-backed implementation of the setting
// repository.
//
// Values are persisted as the exact JSON text that was written, one record
// per setting key. BoltHold serializes reads and writes per store handle, so
// each repository call is a single atomic key operation.
package storage
