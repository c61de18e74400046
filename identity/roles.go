package identity

import (
	"context"
	"strings"

	"github.com/aseleznev/identity-store/model"
)

// GetRoles returns a copy of the in-memory role collection.
func (s *UserStore) GetRoles(u *model.User) ([]string, error) {
	if err := requireUser(u); err != nil {
		return nil, err
	}
	out := make([]string, len(u.Roles))
	copy(out, u.Roles)
	return out, nil
}

// IsInRole reports case-insensitive role membership.
func (s *UserStore) IsInRole(u *model.User, roleName string) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return containsFold(u.Roles, roleName), nil
}

// AddToRole appends the role and inserts its row. Gated case-insensitively:
// an already held role causes neither an append nor an insert.
func (s *UserStore) AddToRole(ctx context.Context, u *model.User, roleName string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	if containsFold(u.Roles, roleName) {
		return nil
	}
	u.Roles = append(u.Roles, roleName)
	if err := s.roles.Insert(ctx, u.ID, roleName); err != nil {
		s.warnDiverged("add role", u.ID, err)
		return err
	}
	return nil
}

// RemoveFromRole drops all case-insensitive matches from memory. The
// persisted delete is issued even when nothing matched in memory.
func (s *UserStore) RemoveFromRole(ctx context.Context, u *model.User, roleName string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	n := 0
	for _, r := range u.Roles {
		if !strings.EqualFold(r, roleName) {
			u.Roles[n] = r
			n++
		}
	}
	u.Roles = u.Roles[:n]
	return s.roles.Delete(ctx, u.ID, roleName)
}

func containsFold(roles []string, roleName string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, roleName) {
			return true
		}
	}
	return false
}
