package identity

import (
	"context"
	"time"

	"github.com/aseleznev/identity-store/model"
)

// The capability interfaces split the façade into the operation groups an
// identity framework consumes, so a caller needing only one group can depend
// on the narrowest type. *UserStore implements all of them.

// Store is the base lifecycle and lookup capability.
type Store interface {
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByName(ctx context.Context, userName string) (*model.User, error)
}

// LoginStore manages external logins and login-based lookup.
type LoginStore interface {
	AddLogin(ctx context.Context, u *model.User, login model.UserLogin) error
	RemoveLogin(ctx context.Context, u *model.User, login model.UserLogin) error
	GetLogins(u *model.User) ([]model.UserLogin, error)
	FindByLogin(ctx context.Context, login model.UserLogin) (*model.User, error)
}

// ClaimStore manages user claims.
type ClaimStore interface {
	GetClaims(u *model.User) ([]model.UserClaim, error)
	AddClaim(ctx context.Context, u *model.User, claim model.UserClaim) error
	RemoveClaim(ctx context.Context, u *model.User, claim model.UserClaim) error
}

// RoleStore manages role membership.
type RoleStore interface {
	AddToRole(ctx context.Context, u *model.User, roleName string) error
	RemoveFromRole(ctx context.Context, u *model.User, roleName string) error
	GetRoles(u *model.User) ([]string, error)
	IsInRole(u *model.User, roleName string) (bool, error)
}

// PasswordStore manages the opaque password hash.
type PasswordStore interface {
	SetPasswordHash(u *model.User, hash string) error
	GetPasswordHash(u *model.User) (string, error)
	HasPassword(u *model.User) (bool, error)
}

// SecurityStampStore manages the security stamp.
type SecurityStampStore interface {
	SetSecurityStamp(u *model.User, stamp string) error
	GetSecurityStamp(u *model.User) (string, error)
}

// EmailStore manages email fields and email-based lookup.
type EmailStore interface {
	SetEmail(u *model.User, email string) error
	GetEmail(u *model.User) (string, error)
	GetEmailConfirmed(u *model.User) (bool, error)
	SetEmailConfirmed(u *model.User, confirmed bool) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// LockoutStore manages lockout state and the failed-access counter.
type LockoutStore interface {
	GetLockoutEndDate(u *model.User) (time.Time, error)
	SetLockoutEndDate(u *model.User, end time.Time) error
	IncrementAccessFailedCount(u *model.User) (int, error)
	ResetAccessFailedCount(u *model.User) error
	GetAccessFailedCount(u *model.User) (int, error)
	GetLockoutEnabled(u *model.User) (bool, error)
	SetLockoutEnabled(u *model.User, enabled bool) error
}

// TwoFactorStore manages the two-factor flag.
type TwoFactorStore interface {
	SetTwoFactorEnabled(u *model.User, enabled bool) error
	GetTwoFactorEnabled(u *model.User) (bool, error)
}

// PhoneNumberStore manages phone fields.
type PhoneNumberStore interface {
	SetPhoneNumber(u *model.User, phone string) error
	GetPhoneNumber(u *model.User) (string, error)
	GetPhoneNumberConfirmed(u *model.User) (bool, error)
	SetPhoneNumberConfirmed(u *model.User, confirmed bool) error
}

// QueryableStore enumerates all users without populating child collections.
type QueryableStore interface {
	Users(ctx context.Context) ([]*model.User, error)
}

var (
	_ Store              = (*UserStore)(nil)
	_ LoginStore         = (*UserStore)(nil)
	_ ClaimStore         = (*UserStore)(nil)
	_ RoleStore          = (*UserStore)(nil)
	_ PasswordStore      = (*UserStore)(nil)
	_ SecurityStampStore = (*UserStore)(nil)
	_ EmailStore         = (*UserStore)(nil)
	_ LockoutStore       = (*UserStore)(nil)
	_ TwoFactorStore     = (*UserStore)(nil)
	_ PhoneNumberStore   = (*UserStore)(nil)
	_ QueryableStore     = (*UserStore)(nil)
)
