package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func admissionCommand(t *testing.T, destination, value string) (commands.CreateDeliveryCommand, kernel.UUID, kernel.UUID) {
	t.Helper()
	truckID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	money, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), destination, time.Now().Add(48*time.Hour),
		delivery.CargoGeneral, money, truckID, driverID)
	require.NoError(t, err)
	return cmd, truckID, driverID
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, driverID := admissionCommand(t, "ARGENTINA", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Once()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Once()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(0, nil).Once()
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, mock.Anything, mock.Anything).
		Return(0, nil).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), cache)
	admitted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "140.00", admitted.Value().String())
	// no restricted-destination lookup for an unrestricted destination
	driverRepo.AssertNotCalled(t, "CountDeliveriesToDestination")
	truckRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_TruckNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, _ := admissionCommand(t, "SUL", "100.00")

	truckRepo := new(MockTruckRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), new(MockCache))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateDeliveryCommandHandler_Handle_TruckCapacityExceeded(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, driverID := admissionCommand(t, "SUL", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Once()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Once()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(commands.TruckMonthlyDeliveryLimit, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), new(MockCache))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBusinessRule)

	var ruleErr *errs.BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, commands.RuleTruckCapacityExceeded, ruleErr.Rule)
	// truck capacity is checked first, so the driver count is never read
	driverRepo.AssertNotCalled(t, "CountDeliveriesInPeriod")
}

func TestCreateDeliveryCommandHandler_Handle_DriverCapacityExceeded(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, driverID := admissionCommand(t, "SUL", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Once()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Once()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(0, nil).Once()
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, mock.Anything, mock.Anything).
		Return(commands.DriverMonthlyDeliveryLimit, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), new(MockCache))
	_, err := h.Handle(ctx, cmd)

	var ruleErr *errs.BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, commands.RuleDriverCapacityExceeded, ruleErr.Rule)
}

func TestCreateDeliveryCommandHandler_Handle_RestrictedDestinationExceeded(t *testing.T) {
	ctx := t.Context()
	// lowercase on purpose, the rule matches case-insensitively
	cmd, truckID, driverID := admissionCommand(t, "nordeste", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Once()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Once()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(0, nil).Once()
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, mock.Anything, mock.Anything).
		Return(0, nil).Once()
	driverRepo.On("CountDeliveriesToDestination", mock.Anything, driverID, delivery.RestrictedRegion).
		Return(1, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), new(MockCache))
	_, err := h.Handle(ctx, cmd)

	var ruleErr *errs.BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, commands.RuleRestrictedDestination, ruleErr.Rule)
}

func TestCreateDeliveryCommandHandler_Handle_RetriesSerializationConflict(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, driverID := admissionCommand(t, "SUL", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Twice()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Twice()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Twice()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(0, nil).Twice()
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, mock.Anything, mock.Anything).
		Return(0, nil).Twice()
	deliveryRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
	uow.On("Commit", ctx).
		Return(fmt.Errorf("commit: %w", ports.ErrSerializationConflict)).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Twice()

	cache := new(MockCache)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), cache)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_PersistentConflictSurfaces(t *testing.T) {
	ctx := t.Context()
	cmd, truckID, driverID := admissionCommand(t, "SUL", "100.00")

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil)
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil)
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil)
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, mock.Anything, mock.Anything).
		Return(0, nil)
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, mock.Anything, mock.Anything).
		Return(0, nil)
	deliveryRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(fmt.Errorf("commit: %w", ports.ErrSerializationConflict))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), new(MockCache))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ports.ErrSerializationConflict)
	factory.AssertNumberOfCalls(t, "Create", 3)
}

func TestCreateDeliveryCommandHandler_Handle_CapacityWindowIsCurrentMonth(t *testing.T) {
	ctx := t.Context()
	truckID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	money, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)

	// Scheduled three months out; capacity still counts against the month
	// the admission happens in.
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), "SUL", time.Now().AddDate(0, 3, 0),
		delivery.CargoGeneral, money, truckID, driverID)
	require.NoError(t, err)

	wantStart, wantEnd := kernel.MonthWindow(time.Now())

	truckRepo := new(MockTruckRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockAdmissionUoW)
	uow.On("BeginSerializable", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(truckRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	truckRepo.On("Exists", mock.Anything, truckID).Return(true, nil).Once()
	driverRepo.On("Exists", mock.Anything, driverID).Return(true, nil).Once()
	truckRepo.On("CountDeliveriesInPeriod", mock.Anything, truckID, wantStart, wantEnd).
		Return(0, nil).Once()
	driverRepo.On("CountDeliveriesInPeriod", mock.Anything, driverID, wantStart, wantEnd).
		Return(0, nil).Once()
	deliveryRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, commands.NewEntityLocker(), cache)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	truckRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

// fakeAdmissionStore is a threadsafe in-memory backing store for the
// concurrency test. Its counts reflect committed deliveries only, so a lost
// check-then-insert race would show up as an overshoot.
type fakeAdmissionStore struct {
	mu         sync.Mutex
	deliveries []*delivery.Delivery
}

func (s *fakeAdmissionStore) countForDriver(driverID kernel.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.deliveries {
		if d.DriverID().IsEqual(driverID) {
			n++
		}
	}
	return n
}

type fakeAdmissionUoW struct {
	store   *fakeAdmissionStore
	pending []*delivery.Delivery
}

func (u *fakeAdmissionUoW) Begin(context.Context) error             { return nil }
func (u *fakeAdmissionUoW) BeginSerializable(context.Context) error { return nil }
func (u *fakeAdmissionUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.deliveries = append(u.store.deliveries, u.pending...)
	u.pending = nil
	return nil
}
func (u *fakeAdmissionUoW) Rollback(context.Context) error {
	u.pending = nil
	return nil
}
func (u *fakeAdmissionUoW) TruckRepository() ports.TruckRepository   { return &fakeTruckRepo{u} }
func (u *fakeAdmissionUoW) DriverRepository() ports.DriverRepository { return &fakeDriverRepo{u} }
func (u *fakeAdmissionUoW) DeliveryRepository() ports.DeliveryRepository {
	return &fakeDeliveryRepo{u}
}

type fakeTruckRepo struct{ uow *fakeAdmissionUoW }

func (r *fakeTruckRepo) Add(context.Context, *truck.Truck) error {
	return errors.New("not implemented")
}
func (r *fakeTruckRepo) Update(context.Context, *truck.Truck) error {
	return errors.New("not implemented")
}
func (r *fakeTruckRepo) Get(context.Context, kernel.UUID) (*truck.Truck, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTruckRepo) GetAll(context.Context, kernel.PageRequest) ([]*truck.Truck, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTruckRepo) Exists(context.Context, kernel.UUID) (bool, error) { return true, nil }
func (r *fakeTruckRepo) Delete(context.Context, kernel.UUID) error {
	return errors.New("not implemented")
}
func (r *fakeTruckRepo) CountDeliveriesInPeriod(
	_ context.Context, truckID kernel.UUID, _, _ time.Time,
) (int, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()
	n := 0
	for _, d := range r.uow.store.deliveries {
		if d.TruckID().IsEqual(truckID) {
			n++
		}
	}
	return n, nil
}

type fakeDriverRepo struct{ uow *fakeAdmissionUoW }

func (r *fakeDriverRepo) Add(context.Context, *driver.Driver) error {
	return errors.New("not implemented")
}
func (r *fakeDriverRepo) Update(context.Context, *driver.Driver) error {
	return errors.New("not implemented")
}
func (r *fakeDriverRepo) Get(context.Context, kernel.UUID) (*driver.Driver, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDriverRepo) GetAll(context.Context, kernel.PageRequest) ([]*driver.Driver, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDriverRepo) Exists(context.Context, kernel.UUID) (bool, error) { return true, nil }
func (r *fakeDriverRepo) Delete(context.Context, kernel.UUID) error {
	return errors.New("not implemented")
}
func (r *fakeDriverRepo) CountDeliveriesInPeriod(
	_ context.Context, driverID kernel.UUID, _, _ time.Time,
) (int, error) {
	return r.uow.store.countForDriver(driverID), nil
}
func (r *fakeDriverRepo) CountDeliveriesToDestination(
	_ context.Context, driverID kernel.UUID, destination string,
) (int, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()
	n := 0
	for _, d := range r.uow.store.deliveries {
		if d.DriverID().IsEqual(driverID) && d.Destination() == destination {
			n++
		}
	}
	return n, nil
}

type fakeDeliveryRepo struct{ uow *fakeAdmissionUoW }

func (r *fakeDeliveryRepo) Add(_ context.Context, d *delivery.Delivery) error {
	r.uow.pending = append(r.uow.pending, d)
	return nil
}
func (r *fakeDeliveryRepo) Get(context.Context, kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDeliveryRepo) GetAll(context.Context, kernel.PageRequest) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDeliveryRepo) GetByPeriod(
	context.Context, time.Time, time.Time, kernel.PageRequest,
) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDeliveryRepo) SumValueForDay(context.Context, time.Time) (kernel.Money, error) {
	return kernel.ZeroMoney(), errors.New("not implemented")
}
func (r *fakeDeliveryRepo) GetIDsForTruck(context.Context, kernel.UUID) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeDeliveryRepo) GetIDsForDriver(context.Context, kernel.UUID) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented")
}

type fakeAdmissionUoWFactory struct{ store *fakeAdmissionStore }

func (f *fakeAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return &fakeAdmissionUoW{store: f.store}
}

type noopCache struct{}

func (noopCache) Get(context.Context, ports.CacheKey, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, ports.CacheKey, any) error         { return nil }
func (noopCache) Delete(context.Context, ports.CacheKey) error           { return nil }

// Concurrent admissions for the same driver must never overshoot the monthly
// limit, regardless of interleaving.
func TestCreateDeliveryCommandHandler_Handle_ConcurrentAdmissionsRespectLimit(t *testing.T) {
	ctx := context.Background()
	store := &fakeAdmissionStore{}
	locker := commands.NewEntityLocker()
	driverID := kernel.NewUUID()

	const attempts = 8
	var wg sync.WaitGroup
	admitted := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			money, _ := kernel.NewMoneyFromString("500.00")
			cmd, err := commands.NewCreateDeliveryCommand(
				kernel.NewUUID(), "SUL", time.Now().Add(24*time.Hour),
				delivery.CargoGeneral, money, kernel.NewUUID(), driverID)
			if err != nil {
				t.Error(err)
				return
			}

			h := commands.NewCreateDeliveryCommandHandler(
				&fakeAdmissionUoWFactory{store: store}, locker, noopCache{})
			if _, err := h.Handle(ctx, cmd); err == nil {
				admitted <- struct{}{}
			} else if !errors.Is(err, errs.ErrBusinessRule) {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	close(admitted)

	require.Len(t, admitted, commands.DriverMonthlyDeliveryLimit)
	assert.Equal(t, commands.DriverMonthlyDeliveryLimit, store.countForDriver(driverID))
}
