package repository

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// ClaimRepository stores (user, claim type, claim value) triples.
type ClaimRepository interface {
	// Insert adds a claim row.
	Insert(ctx context.Context, userID string, claim model.UserClaim) error
	// Delete removes all rows matching (type, value) exactly; no-op if absent.
	Delete(ctx context.Context, userID string, claim model.UserClaim) error
	// ListByUser returns the user's claims in insertion order.
	ListByUser(ctx context.Context, userID string) ([]model.UserClaim, error)
}
