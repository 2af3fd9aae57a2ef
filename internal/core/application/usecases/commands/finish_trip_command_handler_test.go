package commands_test

import (
	"testing"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinishTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	driver := newOnRoadDriver(t, driverID)
	activeOrder := newInProgressOrder(t, driverID)

	cmd, err := commands.NewFinishTripCommand(newDriverActor(t, driverID))
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		accountRepo.On("Get", ctx, driverID).Return(driver, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		orderRepo.On("GetFirstByDriverInStatus", ctx, driverID, order.InProgress).
			Return(activeOrder, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, account.StatusReady, driver.Status())
	assert.Equal(t, order.Completed, activeOrder.Status())
	// The driver reference stays on the completed order for history.
	require.NotNil(t, activeOrder.Driver())
	assert.Equal(t, driverID, *activeOrder.Driver())

	accountRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFinishTripCommandHandler_Handle_NoActiveOrder(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	driver := newOnRoadDriver(t, driverID)

	cmd, err := commands.NewFinishTripCommand(newDriverActor(t, driverID))
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		accountRepo.On("Get", ctx, driverID).Return(driver, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		orderRepo.On("GetFirstByDriverInStatus", ctx, driverID, order.InProgress).
			Return(nil, errs.NewObjectNotFoundError("order", "first for driver")).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, account.StatusReady, driver.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestFinishTripCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewFinishTripCommand(newCustomerActor(t))
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewFinishTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestFinishTripCommandHandler_Handle_UpdateOrderError(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	driver := newOnRoadDriver(t, driverID)
	activeOrder := newInProgressOrder(t, driverID)

	cmd, err := commands.NewFinishTripCommand(newDriverActor(t, driverID))
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		accountRepo.On("Get", ctx, driverID).Return(driver, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		orderRepo.On("GetFirstByDriverInStatus", ctx, driverID, order.InProgress).
			Return(activeOrder, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(assert.AnError).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
	uow.AssertNotCalled(t, "Commit", ctx)
}
