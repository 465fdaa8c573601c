// Package service provides the per-instance settings facade.
//
// Instantiate hands out one Config per instance name for the lifetime of the
// process; the instance exclusively owns its persistent store. Reads resolve
// the persisted value or the setting's environment default and always pass
// validation before they are returned; writes validate before they touch
// the store.
package service
