package truckrepo_test

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

// TruckRepositoryIntegrationTestSuite provides integration tests for TruckRepository
// using PostgreSQL containers to verify database persistence behavior.
type TruckRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	truckRepository    *truckrepo.GormTruckRepository
	driverRepository   *driverrepo.GormDriverRepository
	deliveryRepository *deliveryrepo.GormDeliveryRepository
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *TruckRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, trucks, drivers").Error)

	suite.truckRepository = truckrepo.NewGormTruckRepository(suite.db)
	suite.driverRepository = driverrepo.NewGormDriverRepository(suite.db)
	suite.deliveryRepository = deliveryrepo.NewGormDeliveryRepository(suite.db)
}

func (suite *TruckRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	year := 2018
	stored := suite.createTestTruck(&year)

	suite.Require().NoError(suite.truckRepository.Add(ctx, stored))

	loaded, err := suite.truckRepository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(loaded))
	suite.Equal(stored.Plate(), loaded.Plate())
	suite.Equal(stored.Model(), loaded.Model())
	suite.Equal(&year, loaded.ManufacturingYear())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.truckRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_ReplacesFields() {
	ctx := context.Background()
	stored := suite.createTestTruck(nil)
	suite.Require().NoError(suite.truckRepository.Add(ctx, stored))

	updated, err := truck.NewTruck(stored.ID(), "XYZ9A87", "Scania R450", nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.truckRepository.Update(ctx, updated))

	loaded, err := suite.truckRepository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal("XYZ9A87", loaded.Plate())
	suite.Equal("Scania R450", loaded.Model())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAll_PagesAndSorts() {
	ctx := context.Background()
	plates := []string{"AAA1B11", "BBB2C22", "CCC3D33"}
	for _, plate := range plates {
		t, err := truck.NewTruck(kernel.NewUUID(), plate, "Volvo FH16", nil, nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.truckRepository.Add(ctx, t))
	}

	page, err := kernel.NewPageRequest(0, 2, "plate", true, []string{"plate"})
	suite.Require().NoError(err)

	trucks, err := suite.truckRepository.GetAll(ctx, page)
	suite.Require().NoError(err)
	suite.Require().Len(trucks, 2)
	suite.Equal("AAA1B11", trucks[0].Plate())
	suite.Equal("BBB2C22", trucks[1].Plate())

	page2, err := kernel.NewPageRequest(1, 2, "plate", true, []string{"plate"})
	suite.Require().NoError(err)

	trucks, err = suite.truckRepository.GetAll(ctx, page2)
	suite.Require().NoError(err)
	suite.Require().Len(trucks, 1)
	suite.Equal("CCC3D33", trucks[0].Plate())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	stored := suite.createTestTruck(nil)
	suite.Require().NoError(suite.truckRepository.Add(ctx, stored))

	exists, err := suite.truckRepository.Exists(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.truckRepository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestDelete_CascadesDeliveries() {
	ctx := context.Background()
	storedTruck := suite.createTestTruck(nil)
	storedDriver := suite.createTestDriver()
	suite.Require().NoError(suite.truckRepository.Add(ctx, storedTruck))
	suite.Require().NoError(suite.driverRepository.Add(ctx, storedDriver))

	stored := suite.createTestDelivery(storedTruck.ID(), storedDriver.ID(), time.Now().Add(24*time.Hour))
	suite.Require().NoError(suite.deliveryRepository.Add(ctx, stored))

	suite.Require().NoError(suite.truckRepository.Delete(ctx, storedTruck.ID()))

	var deliveryCount int64
	suite.Require().NoError(suite.db.Table("deliveries").Count(&deliveryCount).Error)
	suite.Zero(deliveryCount)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestCountDeliveriesInPeriod() {
	ctx := context.Background()
	storedTruck := suite.createTestTruck(nil)
	storedDriver := suite.createTestDriver()
	suite.Require().NoError(suite.truckRepository.Add(ctx, storedTruck))
	suite.Require().NoError(suite.driverRepository.Add(ctx, storedDriver))

	inWindow := time.Now().Add(24 * time.Hour)
	outOfWindow := inWindow.AddDate(0, 2, 0)
	suite.Require().NoError(suite.deliveryRepository.Add(ctx,
		suite.createTestDelivery(storedTruck.ID(), storedDriver.ID(), inWindow)))
	suite.Require().NoError(suite.deliveryRepository.Add(ctx,
		suite.createTestDelivery(storedTruck.ID(), storedDriver.ID(), outOfWindow)))

	from, to := kernel.MonthWindow(inWindow)
	count, err := suite.truckRepository.CountDeliveriesInPeriod(ctx, storedTruck.ID(), from, to)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *TruckRepositoryIntegrationTestSuite) createTestTruck(year *int) *truck.Truck {
	t, err := truck.NewTruck(kernel.NewUUID(), "ABC1D23", "Volvo FH16", year, nil)
	suite.Require().NoError(err)
	return t
}

func (suite *TruckRepositoryIntegrationTestSuite) createTestDriver() *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), "Maria Souza", "12345678901")
	suite.Require().NoError(err)
	return d
}

func (suite *TruckRepositoryIntegrationTestSuite) createTestDelivery(
	truckID, driverID kernel.UUID, scheduledAt time.Time,
) *delivery.Delivery {
	value, err := kernel.NewMoneyFromString("1000.00")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "SUL", scheduledAt, delivery.CargoGeneral, value, truckID, driverID)
	suite.Require().NoError(err)
	return d
}

func TestTruckRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TruckRepositoryIntegrationTestSuite))
}
