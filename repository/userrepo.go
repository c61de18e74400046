// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// UserRepository provides CRUD and lookup access for user rows.
//
// Lookups report a missing row with errs.ErrNotFound; unique constraint
// violations on Insert/Update surface as errs.ErrAlreadyExists.
type UserRepository interface {
	// Insert adds a new user row.
	Insert(ctx context.Context, u *model.User) error
	// Update rewrites the scalar columns of an existing user row.
	Update(ctx context.Context, u *model.User) error
	// Delete removes the user row. Child records are not touched.
	Delete(ctx context.Context, id string) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByName loads a user by username.
	GetByName(ctx context.Context, userName string) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// All returns every user row in stable username order.
	All(ctx context.Context) ([]*model.User, error)
}
