package repository

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// LoginRepository stores (user, provider, provider key) triples.
type LoginRepository interface {
	// Insert adds a login row. Duplicate triples are representable.
	Insert(ctx context.Context, userID string, login model.UserLogin) error
	// Delete removes all rows matching the triple exactly; no-op if absent.
	Delete(ctx context.Context, userID string, login model.UserLogin) error
	// ListByUser returns the user's logins in insertion order.
	ListByUser(ctx context.Context, userID string) ([]model.UserLogin, error)
	// FindUserID resolves a (provider, key) pair to a user ID, or errs.ErrNotFound.
	FindUserID(ctx context.Context, login model.UserLogin) (string, error)
}
