package postgres

import (
	"context"

	"github.com/aseleznev/identity-store/errs"
)

// RoleRepo implements RoleRepository using PostgreSQL.
type RoleRepo struct{ db *DB }

// NewRoleRepo constructs a role repository.
func NewRoleRepo(db *DB) *RoleRepo { return &RoleRepo{db: db} }

// Insert adds a role row. The schema enforces uniqueness on
// (user_id, lower(role_name)); a racing duplicate surfaces as ErrAlreadyExists.
func (r *RoleRepo) Insert(ctx context.Context, userID string, roleName string) error {
	const q = `
INSERT INTO user_roles (user_id, role_name)
VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, q, userID, roleName)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Delete removes rows matching the role name case-insensitively; no-op if absent.
func (r *RoleRepo) Delete(ctx context.Context, userID string, roleName string) error {
	const q = `
DELETE FROM user_roles
WHERE user_id=$1 AND lower(role_name)=lower($2)`
	_, err := r.db.Pool.Exec(ctx, q, userID, roleName)
	return err
}

// ListByUser returns the user's role names in insertion order.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) ([]string, error) {
	const q = `
SELECT role_name
FROM user_roles
WHERE user_id=$1
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
