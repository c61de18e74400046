package model

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestNewUser_AssignsID(t *testing.T) {
	t.Parallel()
	u := NewUser("alice")
	require.Equal(t, "alice", u.UserName)
	require.NotEmpty(t, u.ID)
	_, err := uuid.FromString(u.ID)
	require.NoError(t, err)

	require.Empty(t, u.Logins)
	require.Empty(t, u.Claims)
	require.Empty(t, u.Roles)

	other := NewUser("bob")
	require.NotEqual(t, u.ID, other.ID)
}
