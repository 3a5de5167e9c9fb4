package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "sendit/internal/adapters/out/postgres"
	"sendit/internal/adapters/out/postgres/deliveryrepo"
	"sendit/internal/adapters/out/postgres/raterepo"
	"sendit/internal/adapters/out/postgres/riderrepo"
	"sendit/internal/adapters/out/postgres/userrepo"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/core/domain/model/rider"
	"sendit/internal/core/domain/model/user"
	"sendit/internal/core/ports"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&userrepo.UserDTO{},
		&riderrepo.RiderDTO{},
		&raterepo.RateTableDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, users, riders, rate_tables").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow2.RiderRepository())
	suite.NotNil(uow2.RateTableRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	now := time.Now().UTC()

	driverAccount, err := user.NewUser(
		kernel.NewUUID(),
		"driver@example.com", "Dara Driver",
		nil,
		"$2a$10$notarealhashnotarealhashnotareal",
		auth.RoleDriver,
		now,
	)
	suite.Require().NoError(err)

	driverRider, err := rider.NewRider(kernel.NewUUID(), driverAccount.ID(),
		driverAccount.Name(), driverAccount.Phone(), now)
	suite.Require().NoError(err)

	testDelivery := suite.createPendingDelivery(now)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.UserRepository().Add(ctx, driverAccount))
	suite.Require().NoError(uow.RiderRepository().Add(ctx, driverRider))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))

	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work reads outside any transaction.
	verify := suite.factory.Create()

	storedUser, err := verify.UserRepository().Get(ctx, driverAccount.ID())
	suite.Require().NoError(err)
	suite.Equal("driver@example.com", storedUser.Email())

	storedRider, err := verify.RiderRepository().GetByUserID(ctx, driverAccount.ID())
	suite.Require().NoError(err)
	suite.True(storedRider.ID().IsEqual(driverRider.ID()))
	suite.Equal("Dara Driver", storedRider.Name())
	suite.Require().NotNil(storedRider.UserID())
	suite.True(storedRider.UserID().IsEqual(driverAccount.ID()))

	storedDelivery, err := verify.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusPending, storedDelivery.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	now := time.Now().UTC()

	testDelivery := suite.createPendingDelivery(now)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RateTableCurrentPicksNewest() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.RateTableRepository().Current(ctx)
	suite.Require().ErrorIs(err, pricing.ErrRateTableUnconfigured)

	oldRate, err := pricing.NewRateTable(kernel.NewUUID(), 10, 10, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.RateTableRepository().Add(ctx, oldRate))

	// Creation timestamps are assigned by the adapter; a short pause keeps
	// the ordering unambiguous.
	time.Sleep(10 * time.Millisecond)

	newRate, err := pricing.NewRateTable(kernel.NewUUID(), 50, 30, 5)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.RateTableRepository().Add(ctx, newRate))

	current, err := uow.RateTableRepository().Current(ctx)
	suite.Require().NoError(err)
	suite.True(current.ID().IsEqual(newRate.ID()))
	suite.InDelta(50.0, current.PricePerKm(), 0.001)
}

func (suite *UnitOfWorkIntegrationTestSuite) createPendingDelivery(now time.Time) *delivery.Delivery {
	rate, err := pricing.NewRateTable(kernel.NewUUID(), 50, 30, 5)
	suite.Require().NoError(err)

	testDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"parcel",
		10, 2, 1,
		"pickup street 1", "dropoff street 2",
		rate,
		now,
	)
	suite.Require().NoError(err)
	return testDelivery
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
