// Package model defines the identity entities shared by the store façade and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// UserLogin is an external login bound to a user, identified by the
// (Provider, ProviderKey) pair compared by exact string equality.
type UserLogin struct {
	Provider    string // e.g. "google", "github"
	ProviderKey string // provider-scoped subject identifier
}

// UserClaim is a (type, value) claim attached to a user.
type UserClaim struct {
	Type  string
	Value string
}

// User is the aggregate root for a single account.
//
// Logins, Claims and Roles start empty on a freshly constructed User and are
// populated by the lookup operations of the store (FindByID/FindByName/
// FindByEmail/FindByLogin). After population they are the single source of
// truth for reads; persisted writes happen as an explicit side effect of each
// mutation call on the store.
type User struct {
	ID             string // immutable once assigned; required before Create
	UserName       string // unique
	Email          string // unique when non-empty
	EmailConfirmed bool

	PasswordHash  string // opaque, produced elsewhere
	SecurityStamp string

	LockoutEndUTC     *time.Time // nil = no lockout
	LockoutEnabled    bool
	AccessFailedCount int

	PhoneNumber          string
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool

	Logins []UserLogin
	Claims []UserClaim
	Roles  []string // membership is case-insensitive
}

// NewUser constructs a user with a freshly assigned ID so that the Create
// precondition (non-empty ID) holds without the caller inventing one.
func NewUser(userName string) *User {
	return &User{
		ID:       uuid.Must(uuid.NewV4()).String(),
		UserName: userName,
	}
}
