// Package domain defines the core business entities of the bloglist
// service and their validation rules. Entities carry no persistence or
// transport concerns; those live in the store and api packages.
package domain
