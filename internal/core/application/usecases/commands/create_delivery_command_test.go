package commands_test

import (
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryCommand(t *testing.T) {
	principal := testPrincipal(t, auth.RoleCustomer)

	t.Run("should create command with valid params", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		cmd, err := commands.NewCreateDeliveryCommand(deliveryID, principal, "laptop",
			10, 2, 1, "pickup street 1", "dropoff street 2")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
		assert.Equal(t, "laptop", cmd.OrderName())
		assert.InDelta(t, 10, cmd.Distance(), 0)
	})

	t.Run("order name is optional", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), principal, "",
			10, 2, 1, "pickup street 1", "dropoff street 2")

		require.NoError(t, err)
	})

	t.Run("should fail with invalid delivery id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateDeliveryCommand(invalidID, principal, "",
			10, 2, 1, "pickup street 1", "dropoff street 2")

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed principal", func(t *testing.T) {
		var p auth.Principal

		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), p, "",
			10, 2, 1, "pickup street 1", "dropoff street 2")

		require.ErrorIs(t, err, auth.ErrPrincipalIsNotConstructed)
	})

	t.Run("should require both locations", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), principal, "",
			10, 2, 1, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "pickup_location")
		assert.Contains(t, err.Error(), "drop_off_location")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
