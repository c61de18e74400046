package postgres

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// ClaimRepo implements ClaimRepository using PostgreSQL.
type ClaimRepo struct{ db *DB }

// NewClaimRepo constructs a claim repository.
func NewClaimRepo(db *DB) *ClaimRepo { return &ClaimRepo{db: db} }

// Insert adds a claim row.
func (r *ClaimRepo) Insert(ctx context.Context, userID string, claim model.UserClaim) error {
	const q = `
INSERT INTO user_claims (user_id, claim_type, claim_value)
VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, userID, claim.Type, claim.Value)
	return err
}

// Delete removes all rows matching (type, value) exactly; no-op if absent.
func (r *ClaimRepo) Delete(ctx context.Context, userID string, claim model.UserClaim) error {
	const q = `
DELETE FROM user_claims
WHERE user_id=$1 AND claim_type=$2 AND claim_value=$3`
	_, err := r.db.Pool.Exec(ctx, q, userID, claim.Type, claim.Value)
	return err
}

// ListByUser returns the user's claims in insertion order.
func (r *ClaimRepo) ListByUser(ctx context.Context, userID string) ([]model.UserClaim, error) {
	const q = `
SELECT claim_type, claim_value
FROM user_claims
WHERE user_id=$1
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserClaim
	for rows.Next() {
		var c model.UserClaim
		if err := rows.Scan(&c.Type, &c.Value); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
