package identity

import (
	"context"

	"github.com/aseleznev/identity-store/model"
)

// GetLogins returns a copy of the in-memory login collection.
func (s *UserStore) GetLogins(u *model.User) ([]model.UserLogin, error) {
	if err := requireUser(u); err != nil {
		return nil, err
	}
	out := make([]model.UserLogin, len(u.Logins))
	copy(out, u.Logins)
	return out, nil
}

// AddLogin appends the login and inserts its row. Ungated: a repeated
// (provider, key) pair is appended and inserted again.
func (s *UserStore) AddLogin(ctx context.Context, u *model.User, login model.UserLogin) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.Logins = append(u.Logins, login)
	if err := s.logins.Insert(ctx, u.ID, login); err != nil {
		s.warnDiverged("add login", u.ID, err)
		return err
	}
	return nil
}

// RemoveLogin drops the first matching entry from memory. The persisted
// delete is issued only when an in-memory match existed.
func (s *UserStore) RemoveLogin(ctx context.Context, u *model.User, login model.UserLogin) error {
	if err := requireUser(u); err != nil {
		return err
	}
	for i, l := range u.Logins {
		if l == login {
			u.Logins = append(u.Logins[:i], u.Logins[i+1:]...)
			return s.logins.Delete(ctx, u.ID, login)
		}
	}
	return nil
}
