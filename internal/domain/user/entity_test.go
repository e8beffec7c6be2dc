//go:build unit

package user_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		u, err := user.NewUser("Ravi Kumar", "Ravi@Example.com", "hashed", user.RoleUser, now)
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Ravi Kumar", u.Name())
		assert.Equal(t, "ravi@example.com", u.Email(), "email is normalized to lower case")
		assert.Equal(t, "hashed", u.PasswordHash())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Equal(t, now, u.CreatedAt())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser("   ", "ravi@example.com", "hashed", user.RoleUser, now)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := user.NewUser("Ravi", "not-an-email", "hashed", user.RoleUser, now)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewUser("Ravi", "ravi@example.com", "hashed", user.Role("moderator"), now)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestRole(t *testing.T) {
	t.Run("known roles parse", func(t *testing.T) {
		for _, s := range []string{"user", "owner", "super_admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := user.NewRole("moderator")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestReconstructUser(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC)

	u := user.ReconstructUser(id, "Priya", "priya@example.com", "hashed", user.RoleOwner, createdAt)
	assert.Equal(t, id, u.ID())
	assert.Equal(t, user.RoleOwner, u.Role())
	assert.Equal(t, createdAt, u.CreatedAt())
}
