// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/store layers.
var (
	// ErrInvalidArgument indicates a required argument (user, login, email) is absent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingUserID indicates Create/Update was called on a user without an assigned ID.
	ErrMissingUserID = errors.New("user id must be set")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username or email taken).
	ErrAlreadyExists = errors.New("already exists")
)
