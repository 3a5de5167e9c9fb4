package rider_test

import (
	"testing"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/rider"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("should create rider for driver account", func(t *testing.T) {
		userID := kernel.NewUUID()
		phone := "+254700000001"
		now := time.Now().UTC()

		r, err := rider.NewRider(kernel.NewUUID(), userID, "Ali Driver", &phone, now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		require.NotNil(t, r.UserID())
		assert.True(t, r.UserID().IsEqual(userID))
		assert.Equal(t, "Ali Driver", r.Name())
		require.NotNil(t, r.Phone())
		assert.Equal(t, phone, *r.Phone())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("phone is optional", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), kernel.NewUUID(), "Ali Driver", nil, time.Now().UTC())

		require.NoError(t, err)
		assert.Nil(t, r.Phone())
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := rider.NewRider(invalidID, kernel.NewUUID(), "Ali Driver", nil, time.Now().UTC())
		require.Error(t, err)

		_, err = rider.NewRider(kernel.NewUUID(), invalidID, "Ali Driver", nil, time.Now().UTC())
		require.Error(t, err)
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), kernel.NewUUID(), "", nil, time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("restores a linked record", func(t *testing.T) {
		userID := kernel.NewUUID()

		r, err := rider.RestoreRider(kernel.NewUUID(), &userID, "Ali Driver", nil, time.Now().UTC())

		require.NoError(t, err)
		require.NotNil(t, r.UserID())
		assert.True(t, r.UserID().IsEqual(userID))
	})

	t.Run("restores a legacy record without account link", func(t *testing.T) {
		r, err := rider.RestoreRider(kernel.NewUUID(), nil, "Legacy Rider", nil, time.Now().UTC())

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Nil(t, r.UserID())
		assert.Equal(t, "Legacy Rider", r.Name())
	})

	t.Run("rejects invalid linked user id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := rider.RestoreRider(kernel.NewUUID(), &invalidID, "Ali Driver", nil, time.Now().UTC())

		require.Error(t, err)
	})
}

func TestRider_Validate(t *testing.T) {
	var r rider.Rider

	require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)
}
