// Package settings turns a static table of heterogeneous setting
// definitions into a validated get/set surface.
//
// Each Setting couples a validation predicate with the environment variable
// consulted when no persisted value exists and a shape description used in
// diagnostics. Setting values travel in decoded-JSON form (bool,
// map[string]any, ...) because both the persistent store and the
// environment fallback hold JSON text; Decode and Encode bridge to the
// typed structures in the domain package.
package settings
