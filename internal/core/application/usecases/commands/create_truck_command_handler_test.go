package commands_test

import (
	"errors"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTruckCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateTruckCommand(id, "ABC1D23", "Volvo FH16", nil, nil)

	repo := new(MockTruckRepository)
	uow := new(MockTruckUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*truck.Truck")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateTruckCommandHandler(factory, cache)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, created.ID().IsEqual(id))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_CachesReadModel(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateTruckCommand(id, "ABC1D23", "Volvo FH16", nil, nil)

	repo := new(MockTruckRepository)
	uow := new(MockTruckUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)
	cache.On("Set", ctx, cachekeyMatcher("truck:"+id.String()), mock.Anything).Return(nil).Once()

	h := commands.NewCreateTruckCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateTruckCommand // not constructed properly
	factory := new(MockTruckUoWFactory)
	cache := new(MockCache)
	h := commands.NewCreateTruckCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateTruckCommandHandler_Handle_InvalidPlate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTruckCommand(kernel.NewUUID(), "not-a-plate", "Volvo FH16", nil, nil)
	require.NoError(t, err)

	factory := new(MockTruckUoWFactory)
	cache := new(MockCache)
	h := commands.NewCreateTruckCommandHandler(factory, cache)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTruckCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTruckCommand(kernel.NewUUID(), "ABC1D23", "Volvo FH16", nil, nil)

	repo := new(MockTruckRepository)
	uow := new(MockTruckUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)

	h := commands.NewCreateTruckCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cache.AssertNotCalled(t, "Set")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_CacheErrorDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTruckCommand(kernel.NewUUID(), "ABC1D23", "Volvo FH16", nil, nil)

	repo := new(MockTruckRepository)
	uow := new(MockTruckUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TruckRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockCache)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	h := commands.NewCreateTruckCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}
