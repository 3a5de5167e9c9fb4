package commands_test

import (
	"testing"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func testPrincipal(t *testing.T, role auth.Role) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func testRateTable(t *testing.T) pricing.RateTable {
	t.Helper()
	rate, err := pricing.NewRateTable(kernel.NewUUID(), 50, 30, 5)
	require.NoError(t, err)
	return rate
}

func testPendingDelivery(t *testing.T, owner auth.Principal) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), owner.ID(), "parcel",
		10, 2, 1,
		"pickup street 1", "dropoff street 2",
		testRateTable(t), time.Now().UTC(),
	)
	require.NoError(t, err)
	return d
}

func testCustomerAccount(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "customer@example.com", "Customer",
		nil, "$2a$10$hash", auth.RoleCustomer, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func testDriverAccount(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "driver@example.com", "Driver",
		nil, "$2a$10$hash", auth.RoleDriver, time.Now().UTC())
	require.NoError(t, err)
	return u
}
