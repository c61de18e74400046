// Package identity implements the user store façade: a single API over the
// four persisted record collections (users, logins, claims, roles) that
// keeps an in-memory user aggregate consistent with storage.
package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aseleznev/identity-store/errs"
	"github.com/aseleznev/identity-store/model"
	"github.com/aseleznev/identity-store/repository"
)

// Mutation idempotency policy. The asymmetry is part of the public contract
// observed by existing callers and must not be normalized:
//
//	collection | add                                     | remove
//	-----------+-----------------------------------------+--------------------------------
//	claims     | gated: no append, no insert when present | persisted delete always issued
//	logins     | ungated: always append, always insert    | delete only on in-memory match
//	roles      | gated, case-insensitive                  | persisted delete always issued
//
// In-memory mutation and its paired persisted write are not atomic: when the
// write fails the aggregate already changed. Callers must discard and
// re-fetch the aggregate on any mutator error instead of retrying on it.

// UserStore composes the four record repositories into the aggregate
// consistency façade. It keeps no state of its own between calls and does
// not coordinate concurrent callers mutating the same user.
type UserStore struct {
	users  repository.UserRepository
	logins repository.LoginRepository
	claims repository.ClaimRepository
	roles  repository.RoleRepository
	log    *zap.Logger
}

// Option configures a UserStore.
type Option func(*UserStore)

// WithLogger attaches a logger; divergence between the in-memory aggregate
// and storage (a failed paired write) is reported at warn level.
func WithLogger(log *zap.Logger) Option {
	return func(s *UserStore) { s.log = log }
}

// NewUserStore constructs the façade over the given record repositories.
func NewUserStore(
	users repository.UserRepository,
	logins repository.LoginRepository,
	claims repository.ClaimRepository,
	roles repository.RoleRepository,
	opts ...Option,
) *UserStore {
	s := &UserStore{
		users:  users,
		logins: logins,
		claims: claims,
		roles:  roles,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// requireUser guards every operation taking the aggregate as its primary argument.
func requireUser(u *model.User) error {
	if u == nil {
		return fmt.Errorf("user: %w", errs.ErrInvalidArgument)
	}
	return nil
}

// Create inserts the user row. The ID must be assigned beforehand (see
// model.NewUser). Child collections are not written here.
func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	if err := requireUser(u); err != nil {
		return err
	}
	if u.ID == "" {
		return errs.ErrMissingUserID
	}
	return s.users.Insert(ctx, u)
}

// Update rewrites the scalar fields of the user row. Child collections are
// neither diffed nor re-inserted; they are persisted per-mutation instead.
func (s *UserStore) Update(ctx context.Context, u *model.User) error {
	if err := requireUser(u); err != nil {
		return err
	}
	if u.ID == "" {
		return errs.ErrMissingUserID
	}
	return s.users.Update(ctx, u)
}

// Delete removes the user row only. Logins, claims and roles are not
// cascaded; callers wanting cleanup remove them first.
func (s *UserStore) Delete(ctx context.Context, u *model.User) error {
	if err := requireUser(u); err != nil {
		return err
	}
	return s.users.Delete(ctx, u.ID)
}

// FindByID returns the user with populated child collections, or (nil, nil)
// when no such row exists.
func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// FindByName returns the user with populated child collections. An empty
// name yields (nil, nil). A matched row whose email is empty is treated as
// not found: an account is only complete once it has an email.
func (s *UserStore) FindByName(ctx context.Context, userName string) (*model.User, error) {
	if userName == "" {
		return nil, nil
	}
	u, err := s.users.GetByName(ctx, userName)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if u.Email == "" {
		return nil, nil
	}
	if err := s.populate(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// FindByEmail returns the user with populated child collections. The email
// argument is required; the empty-email completeness gate of FindByName
// applies here as well.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email: %w", errs.ErrInvalidArgument)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if u.Email == "" {
		return nil, nil
	}
	if err := s.populate(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// FindByLogin resolves the (provider, key) pair to a user ID and delegates
// to FindByID, so the empty-email gate does not apply on this path.
func (s *UserStore) FindByLogin(ctx context.Context, login model.UserLogin) (*model.User, error) {
	userID, err := s.logins.FindUserID(ctx, login)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, userID)
}

// Users enumerates all user rows. Child collections are left unpopulated;
// use a Find* lookup to obtain a fully loaded aggregate.
func (s *UserStore) Users(ctx context.Context) ([]*model.User, error) {
	return s.users.All(ctx)
}

// populate loads the three child collections into the aggregate. Every
// lookup path goes through here so population is never a surprise of one
// specific entry point.
func (s *UserStore) populate(ctx context.Context, u *model.User) error {
	roles, err := s.roles.ListByUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("populate roles: %w", err)
	}
	claims, err := s.claims.ListByUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("populate claims: %w", err)
	}
	logins, err := s.logins.ListByUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("populate logins: %w", err)
	}
	u.Roles = roles
	u.Claims = claims
	u.Logins = logins
	return nil
}

// warnDiverged records that an in-memory mutation succeeded but its paired
// persisted write did not.
func (s *UserStore) warnDiverged(op, userID string, err error) {
	s.log.Warn("in-memory aggregate diverged from storage",
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Error(err),
	)
}
