package commands_test

import (
	"context"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// cachekeyMatcher matches a cache key argument by its rendered form.
func cachekeyMatcher(rendered string) any {
	return mock.MatchedBy(func(key ports.CacheKey) bool {
		return key.String() == rendered
	})
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}
func (m *MockTruckRepository) GetAll(ctx context.Context, page kernel.PageRequest) ([]*truck.Truck, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}
func (m *MockTruckRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTruckRepository) CountDeliveriesInPeriod(
	ctx context.Context, truckID kernel.UUID, from, to time.Time,
) (int, error) {
	args := m.Called(ctx, truckID, from, to)
	return args.Int(0), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetAll(ctx context.Context, page kernel.PageRequest) ([]*driver.Driver, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}
func (m *MockDriverRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDriverRepository) CountDeliveriesInPeriod(
	ctx context.Context, driverID kernel.UUID, from, to time.Time,
) (int, error) {
	args := m.Called(ctx, driverID, from, to)
	return args.Int(0), args.Error(1)
}
func (m *MockDriverRepository) CountDeliveriesToDestination(
	ctx context.Context, driverID kernel.UUID, destination string,
) (int, error) {
	args := m.Called(ctx, driverID, destination)
	return args.Int(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetAll(
	ctx context.Context, page kernel.PageRequest,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByPeriod(
	ctx context.Context, from, to time.Time, page kernel.PageRequest,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, from, to, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) SumValueForDay(ctx context.Context, day time.Time) (kernel.Money, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(kernel.Money), args.Error(1)
}
func (m *MockDeliveryRepository) GetIDsForTruck(ctx context.Context, truckID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}
func (m *MockDeliveryRepository) GetIDsForDriver(ctx context.Context, driverID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key ports.CacheKey, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key ports.CacheKey, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key ports.CacheKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockTruckUoW struct{ mock.Mock }

func (m *MockTruckUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTruckUoW) BeginSerializable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTruckUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTruckUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTruckUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}
func (m *MockTruckUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockDriverUoW struct{ mock.Mock }

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) BeginSerializable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}
func (m *MockDriverUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockAdmissionUoW struct{ mock.Mock }

func (m *MockAdmissionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdmissionUoW) BeginSerializable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdmissionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdmissionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdmissionUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}
func (m *MockAdmissionUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}
func (m *MockAdmissionUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockAdmissionUoWFactory struct{ mock.Mock }

func (m *MockAdmissionUoWFactory) Create() commands.AdmissionUoW {
	args := m.Called()
	return args.Get(0).(commands.AdmissionUoW)
}
