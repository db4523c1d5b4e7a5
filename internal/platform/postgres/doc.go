// Package postgres contains the PostgreSQL implementations of the store
// interfaces. All database errors are mapped through MapError so callers
// only ever see the store package's sentinel taxonomy.
package postgres
