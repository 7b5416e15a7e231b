// Package store is the data-access layer. It carries no business
// logic; services depend on the interfaces here so tests can swap in
// fakes.
package store

import "errors"

var (
	// ErrNotFound means no record matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail surfaces the users.email unique constraint.
	// The database constraint, not the pre-insert check, is what
	// actually guarantees uniqueness under concurrent registration.
	ErrDuplicateEmail = errors.New("email already registered")
)
