package services_test

import (
	"testing"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/rider"
	"sendit/internal/core/domain/model/user"
	"sendit/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, role auth.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "rider@example.com", "Rider",
		nil, "$2a$10$hash", role, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func TestAssignmentResolver_Resolve(t *testing.T) {
	resolver := services.NewAssignmentResolver()
	now := time.Now().UTC()

	t.Run("creates rider record on first assignment", func(t *testing.T) {
		driver := newAccount(t, auth.RoleDriver)

		resolved, created, err := resolver.Resolve(driver, nil, now)

		require.NoError(t, err)
		assert.True(t, created)
		require.NoError(t, resolved.Validate())
		require.NotNil(t, resolved.UserID())
		assert.True(t, resolved.UserID().IsEqual(driver.ID()))
	})

	t.Run("copies name and phone from the driver account", func(t *testing.T) {
		phone := "+254711000002"
		driver, err := user.NewUser(kernel.NewUUID(), "ali@example.com", "Ali Driver",
			&phone, "$2a$10$hash", auth.RoleDriver, now)
		require.NoError(t, err)

		resolved, created, err := resolver.Resolve(driver, nil, now)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Ali Driver", resolved.Name())
		require.NotNil(t, resolved.Phone())
		assert.Equal(t, phone, *resolved.Phone())
	})

	t.Run("reuses existing rider record", func(t *testing.T) {
		driver := newAccount(t, auth.RoleDriver)
		existing, err := rider.NewRider(kernel.NewUUID(), driver.ID(), driver.Name(), driver.Phone(), now)
		require.NoError(t, err)

		resolved, created, err := resolver.Resolve(driver, existing, now)

		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, resolved.ID().IsEqual(existing.ID()))
	})

	t.Run("rejects non-driver accounts", func(t *testing.T) {
		for _, role := range []auth.Role{auth.RoleCustomer, auth.RoleAdmin} {
			t.Run(role.String(), func(t *testing.T) {
				_, _, err := resolver.Resolve(newAccount(t, role), nil, now)

				require.ErrorIs(t, err, services.ErrInvalidAssignee)
				assert.Contains(t, err.Error(), role.String())
			})
		}
	})

	t.Run("rejects unconstructed user", func(t *testing.T) {
		var u user.User

		_, _, err := resolver.Resolve(&u, nil, now)

		require.ErrorIs(t, err, user.ErrUserIsNotConstructed)
	})
}
