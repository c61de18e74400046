package identity

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// GetClaims returns a copy of the in-memory claim collection.
func (s *UserStore) GetClaims(u *model.User) ([]model.UserClaim, error) {
	if err := requireUser(u); err != nil {
		return nil, err
	}
	out := make([]model.UserClaim, len(u.Claims))
	copy(out, u.Claims)
	return out, nil
}

// AddClaim appends the claim and inserts its row. Gated: when an identical
// (type, value) entry is already present in memory neither the append nor
// the insert happens.
func (s *UserStore) AddClaim(ctx context.Context, u *model.User, claim model.UserClaim) error {
	if err := requireUser(u); err != nil {
		return err
	}
	for _, c := range u.Claims {
		if c == claim {
			return nil
		}
	}
	u.Claims = append(u.Claims, claim)
	if err := s.claims.Insert(ctx, u.ID, claim); err != nil {
		s.warnDiverged("add claim", u.ID, err)
		return err
	}
	return nil
}

// RemoveClaim drops all matching (type, value) entries from memory. The
// persisted delete is issued even when nothing matched in memory.
func (s *UserStore) RemoveClaim(ctx context.Context, u *model.User, claim model.UserClaim) error {
	if err := requireUser(u); err != nil {
		return err
	}
	n := 0
	for _, c := range u.Claims {
		if c != claim {
			u.Claims[n] = c
			n++
		}
	}
	u.Claims = u.Claims[:n]
	return s.claims.Delete(ctx, u.ID, claim)
}
