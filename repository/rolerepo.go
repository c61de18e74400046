package repository

import "context"

// RoleRepository stores (user, role name) pairs.
type RoleRepository interface {
	// Insert adds a role row.
	Insert(ctx context.Context, userID string, roleName string) error
	// Delete removes rows matching the role name case-insensitively; no-op if absent.
	Delete(ctx context.Context, userID string, roleName string) error
	// ListByUser returns the user's role names in insertion order.
	ListByUser(ctx context.Context, userID string) ([]string, error)
}
