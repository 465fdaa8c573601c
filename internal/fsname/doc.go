// Package fsname decides whether a string is a legal filename or directory
// path fragment under configurable platform rules.
//
// Validation is pure and deterministic: the stricter Windows-compatible
// rules are selected by an explicit flag on Rules, never probed from the
// running OS, so behavior is identical across platforms and in tests.
package fsname
