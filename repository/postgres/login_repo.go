package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aseleznev/identity-store/errs"
	"github.com/aseleznev/identity-store/model"
)

// LoginRepo implements LoginRepository using PostgreSQL.
type LoginRepo struct{ db *DB }

// NewLoginRepo constructs a login repository.
func NewLoginRepo(db *DB) *LoginRepo { return &LoginRepo{db: db} }

// Insert adds a login row. The table carries no unique constraint on the
// triple, so repeated inserts produce repeated rows.
func (r *LoginRepo) Insert(ctx context.Context, userID string, login model.UserLogin) error {
	const q = `
INSERT INTO user_logins (user_id, login_provider, provider_key)
VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, userID, login.Provider, login.ProviderKey)
	return err
}

// Delete removes all rows matching the triple exactly; no-op if absent.
func (r *LoginRepo) Delete(ctx context.Context, userID string, login model.UserLogin) error {
	const q = `
DELETE FROM user_logins
WHERE user_id=$1 AND login_provider=$2 AND provider_key=$3`
	_, err := r.db.Pool.Exec(ctx, q, userID, login.Provider, login.ProviderKey)
	return err
}

// ListByUser returns the user's logins in insertion order.
func (r *LoginRepo) ListByUser(ctx context.Context, userID string) ([]model.UserLogin, error) {
	const q = `
SELECT login_provider, provider_key
FROM user_logins
WHERE user_id=$1
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserLogin
	for rows.Next() {
		var l model.UserLogin
		if err := rows.Scan(&l.Provider, &l.ProviderKey); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// FindUserID resolves a (provider, key) pair to the owning user ID.
func (r *LoginRepo) FindUserID(ctx context.Context, login model.UserLogin) (string, error) {
	const q = `
SELECT user_id
FROM user_logins
WHERE login_provider=$1 AND provider_key=$2
LIMIT 1`
	var userID string
	err := r.db.Pool.QueryRow(ctx, q, login.Provider, login.ProviderKey).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errs.ErrNotFound
	}
	return userID, err
}
