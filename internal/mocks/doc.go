// Package mocks provides hand-written fakes for the store and auth
// interfaces. Each mock has function fields to override behavior per test
// and a map-backed default implementation that mirrors the real store's
// error semantics.
package mocks
