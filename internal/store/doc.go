// Package store defines the persistence interfaces for the bloglist
// service along with the sentinel errors their implementations surface.
// Concrete implementations live in internal/platform/postgres; tests use
// the function-field fakes in internal/mocks.
package store
