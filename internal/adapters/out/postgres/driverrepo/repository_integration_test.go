package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/deliveryrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/truckrepo"
	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	driverRepository   *driverrepo.GormDriverRepository
	truckRepository    *truckrepo.GormTruckRepository
	deliveryRepository *deliveryrepo.GormDeliveryRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&truckrepo.TruckDTO{},
		&deliveryrepo.DeliveryDTO{},
	))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, trucks, drivers").Error)

	suite.driverRepository = driverrepo.NewGormDriverRepository(suite.db)
	suite.truckRepository = truckrepo.NewGormTruckRepository(suite.db)
	suite.deliveryRepository = deliveryrepo.NewGormDeliveryRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	stored := suite.createTestDriver("12345678901")

	suite.Require().NoError(suite.driverRepository.Add(ctx, stored))

	loaded, err := suite.driverRepository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(loaded))
	suite.Equal(stored.Name(), loaded.Name())
	suite.Equal(stored.License(), loaded.License())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateLicense() {
	ctx := context.Background()
	suite.Require().NoError(suite.driverRepository.Add(ctx, suite.createTestDriver("12345678901")))

	err := suite.driverRepository.Add(ctx, suite.createTestDriver("12345678901"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.driverRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestDelete_CascadesDeliveriesAndDetachesTrucks() {
	ctx := context.Background()
	storedDriver := suite.createTestDriver("12345678901")
	suite.Require().NoError(suite.driverRepository.Add(ctx, storedDriver))

	driverID := storedDriver.ID()
	assignedTruck, err := truck.NewTruck(kernel.NewUUID(), "ABC1D23", "Volvo FH16", nil, &driverID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.truckRepository.Add(ctx, assignedTruck))

	suite.Require().NoError(suite.deliveryRepository.Add(ctx,
		suite.createTestDelivery(assignedTruck.ID(), driverID, time.Now().Add(24*time.Hour))))

	suite.Require().NoError(suite.driverRepository.Delete(ctx, driverID))

	var deliveryCount int64
	suite.Require().NoError(suite.db.Table("deliveries").Count(&deliveryCount).Error)
	suite.Zero(deliveryCount)

	loadedTruck, err := suite.truckRepository.Get(ctx, assignedTruck.ID())
	suite.Require().NoError(err)
	suite.Nil(loadedTruck.DriverID())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestCountDeliveriesInPeriod() {
	ctx := context.Background()
	storedDriver := suite.createTestDriver("12345678901")
	storedTruck := suite.createTestTruck()
	suite.Require().NoError(suite.driverRepository.Add(ctx, storedDriver))
	suite.Require().NoError(suite.truckRepository.Add(ctx, storedTruck))

	inWindow := time.Now().Add(24 * time.Hour)
	outOfWindow := inWindow.AddDate(0, 1, 0)
	suite.Require().NoError(suite.deliveryRepository.Add(ctx,
		suite.createTestDelivery(storedTruck.ID(), storedDriver.ID(), inWindow)))
	suite.Require().NoError(suite.deliveryRepository.Add(ctx,
		suite.createTestDelivery(storedTruck.ID(), storedDriver.ID(), outOfWindow)))

	from, to := kernel.MonthWindow(inWindow)
	count, err := suite.driverRepository.CountDeliveriesInPeriod(ctx, storedDriver.ID(), from, to)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestCountDeliveriesToDestination_CaseInsensitive() {
	ctx := context.Background()
	storedDriver := suite.createTestDriver("12345678901")
	storedTruck := suite.createTestTruck()
	suite.Require().NoError(suite.driverRepository.Add(ctx, storedDriver))
	suite.Require().NoError(suite.truckRepository.Add(ctx, storedTruck))

	value, err := kernel.NewMoneyFromString("1000.00")
	suite.Require().NoError(err)
	stored, err := delivery.NewDelivery(
		kernel.NewUUID(), "Nordeste", time.Now().Add(24*time.Hour),
		delivery.CargoGeneral, value, storedTruck.ID(), storedDriver.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryRepository.Add(ctx, stored))

	count, err := suite.driverRepository.CountDeliveriesToDestination(
		ctx, storedDriver.ID(), "NORDESTE")
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(license string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), "Maria Souza", license)
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestTruck() *truck.Truck {
	t, err := truck.NewTruck(kernel.NewUUID(), "XYZ9A87", "Scania R450", nil, nil)
	suite.Require().NoError(err)
	return t
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDelivery(
	truckID, driverID kernel.UUID, scheduledAt time.Time,
) *delivery.Delivery {
	value, err := kernel.NewMoneyFromString("1000.00")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "SUL", scheduledAt, delivery.CargoGeneral, value, truckID, driverID)
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
