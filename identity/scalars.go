package identity

import (
	"time"

	"github.com/aseleznev/identity-store/model"
)

// Scalar setters mutate only the in-memory aggregate. Nothing is persisted
// until the caller issues Update; this batches any number of field changes
// into one write, unlike the per-call writes of the collection mutators.

// SetEmail sets the email on the aggregate.
func (s *UserStore) SetEmail(u *model.User, email string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.Email = email
	return nil
}

// GetEmail returns the email.
func (s *UserStore) GetEmail(u *model.User) (string, error) {
	if err := requireUser(u); err != nil {
		return "", err
	}
	return u.Email, nil
}

// GetEmailConfirmed reports whether the email is confirmed.
func (s *UserStore) GetEmailConfirmed(u *model.User) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return u.EmailConfirmed, nil
}

// SetEmailConfirmed sets the email confirmation flag.
func (s *UserStore) SetEmailConfirmed(u *model.User, confirmed bool) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.EmailConfirmed = confirmed
	return nil
}

// SetPasswordHash stores the opaque password hash on the aggregate.
func (s *UserStore) SetPasswordHash(u *model.User, hash string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// GetPasswordHash returns the opaque password hash.
func (s *UserStore) GetPasswordHash(u *model.User) (string, error) {
	if err := requireUser(u); err != nil {
		return "", err
	}
	return u.PasswordHash, nil
}

// HasPassword reports whether a password hash is set.
func (s *UserStore) HasPassword(u *model.User) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return u.PasswordHash != "", nil
}

// SetSecurityStamp sets the security stamp.
func (s *UserStore) SetSecurityStamp(u *model.User, stamp string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.SecurityStamp = stamp
	return nil
}

// GetSecurityStamp returns the security stamp.
func (s *UserStore) GetSecurityStamp(u *model.User) (string, error) {
	if err := requireUser(u); err != nil {
		return "", err
	}
	return u.SecurityStamp, nil
}

// SetPhoneNumber sets the phone number.
func (s *UserStore) SetPhoneNumber(u *model.User, phone string) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.PhoneNumber = phone
	return nil
}

// GetPhoneNumber returns the phone number.
func (s *UserStore) GetPhoneNumber(u *model.User) (string, error) {
	if err := requireUser(u); err != nil {
		return "", err
	}
	return u.PhoneNumber, nil
}

// GetPhoneNumberConfirmed reports whether the phone number is confirmed.
func (s *UserStore) GetPhoneNumberConfirmed(u *model.User) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return u.PhoneNumberConfirmed, nil
}

// SetPhoneNumberConfirmed sets the phone confirmation flag.
func (s *UserStore) SetPhoneNumberConfirmed(u *model.User, confirmed bool) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.PhoneNumberConfirmed = confirmed
	return nil
}

// SetTwoFactorEnabled sets the two-factor flag.
func (s *UserStore) SetTwoFactorEnabled(u *model.User, enabled bool) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.TwoFactorEnabled = enabled
	return nil
}

// GetTwoFactorEnabled reports whether two-factor auth is enabled.
func (s *UserStore) GetTwoFactorEnabled(u *model.User) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return u.TwoFactorEnabled, nil
}

// GetLockoutEnabled reports whether lockout applies to this user.
func (s *UserStore) GetLockoutEnabled(u *model.User) (bool, error) {
	if err := requireUser(u); err != nil {
		return false, err
	}
	return u.LockoutEnabled, nil
}

// SetLockoutEnabled sets the lockout flag.
func (s *UserStore) SetLockoutEnabled(u *model.User, enabled bool) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.LockoutEnabled = enabled
	return nil
}

// GetLockoutEndDate returns the lockout end in UTC. The zero time means no
// lockout is stored.
func (s *UserStore) GetLockoutEndDate(u *model.User) (time.Time, error) {
	if err := requireUser(u); err != nil {
		return time.Time{}, err
	}
	if u.LockoutEndUTC == nil {
		return time.Time{}, nil
	}
	return u.LockoutEndUTC.UTC(), nil
}

// SetLockoutEndDate sets the lockout end. The zero time is the "no lockout"
// sentinel and clears the stored value; anything else is stored as UTC.
func (s *UserStore) SetLockoutEndDate(u *model.User, end time.Time) error {
	if err := requireUser(u); err != nil {
		return err
	}
	if end.IsZero() {
		u.LockoutEndUTC = nil
		return nil
	}
	utc := end.UTC()
	u.LockoutEndUTC = &utc
	return nil
}

// GetAccessFailedCount returns the failed-access counter.
func (s *UserStore) GetAccessFailedCount(u *model.User) (int, error) {
	if err := requireUser(u); err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

// IncrementAccessFailedCount bumps the in-memory counter and returns the new
// value. Persisting it requires a separate Update call.
func (s *UserStore) IncrementAccessFailedCount(u *model.User) (int, error) {
	if err := requireUser(u); err != nil {
		return 0, err
	}
	u.AccessFailedCount++
	return u.AccessFailedCount, nil
}

// ResetAccessFailedCount zeroes the in-memory counter.
func (s *UserStore) ResetAccessFailedCount(u *model.User) error {
	if err := requireUser(u); err != nil {
		return err
	}
	u.AccessFailedCount = 0
	return nil
}
