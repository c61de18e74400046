package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aseleznev/identity-store/errs"
	"github.com/aseleznev/identity-store/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, user_name, email, email_confirmed, password_hash, security_stamp,
lockout_end_utc, lockout_enabled, access_failed_count, phone_number, phone_number_confirmed, two_factor_enabled`

// Insert adds a new user row.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, user_name, email, email_confirmed, password_hash, security_stamp,
lockout_end_utc, lockout_enabled, access_failed_count, phone_number, phone_number_confirmed, two_factor_enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Pool.Exec(ctx, q,
		u.ID, u.UserName, u.Email, u.EmailConfirmed, u.PasswordHash, u.SecurityStamp,
		u.LockoutEndUTC, u.LockoutEnabled, u.AccessFailedCount,
		u.PhoneNumber, u.PhoneNumberConfirmed, u.TwoFactorEnabled)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Update rewrites the scalar columns of an existing user row.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	const q = `
UPDATE users
SET user_name=$2, email=$3, email_confirmed=$4, password_hash=$5, security_stamp=$6,
lockout_end_utc=$7, lockout_enabled=$8, access_failed_count=$9,
phone_number=$10, phone_number_confirmed=$11, two_factor_enabled=$12
WHERE id=$1`
	_, err := r.db.Pool.Exec(ctx, q,
		u.ID, u.UserName, u.Email, u.EmailConfirmed, u.PasswordHash, u.SecurityStamp,
		u.LockoutEndUTC, u.LockoutEnabled, u.AccessFailedCount,
		u.PhoneNumber, u.PhoneNumberConfirmed, u.TwoFactorEnabled)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Delete removes the user row. Child records are left in place.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id=$1`
	_, err := r.db.Pool.Exec(ctx, q, id)
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users WHERE id=$1`
	return r.getOne(ctx, q, id)
}

// GetByName selects a user by username.
func (r *UserRepo) GetByName(ctx context.Context, userName string) (*model.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users WHERE user_name=$1`
	return r.getOne(ctx, q, userName)
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users WHERE email=$1`
	return r.getOne(ctx, q, email)
}

// All returns every user row ordered by username.
func (r *UserRepo) All(ctx context.Context) ([]*model.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users ORDER BY user_name`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, q string, arg any) (*model.User, error) {
	row := r.db.Pool.QueryRow(ctx, q, arg)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID, &u.UserName, &u.Email, &u.EmailConfirmed, &u.PasswordHash, &u.SecurityStamp,
		&u.LockoutEndUTC, &u.LockoutEnabled, &u.AccessFailedCount,
		&u.PhoneNumber, &u.PhoneNumberConfirmed, &u.TwoFactorEnabled)
}
