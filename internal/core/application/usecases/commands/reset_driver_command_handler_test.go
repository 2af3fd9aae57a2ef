package commands_test

import (
	"testing"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	// Mid-trip reset: the driver is on the road, the admin pulls them back.
	// Any order the driver holds is deliberately left untouched.
	driver := newOnRoadDriver(t, driverID)

	cmd, err := commands.NewResetDriverCommand(newAdminActor(t), driverID)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverID).Return(driver, nil).Once(),
		accountRepo.On("Update", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResetDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, account.StatusReady, driver.Status())

	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResetDriverCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewResetDriverCommand(newCustomerActor(t), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)
	handler := commands.NewResetDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestResetDriverCommandHandler_Handle_TargetIsNotADriver(t *testing.T) {
	ctx := t.Context()

	targetID := kernel.NewUUID()
	admin, err := account.NewAccount(targetID, "Another Admin", account.RoleAdmin)
	require.NoError(t, err)

	cmd, err := commands.NewResetDriverCommand(newAdminActor(t), targetID)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, targetID).Return(admin, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResetDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrNotADriver)
	uow.AssertNotCalled(t, "Commit", ctx)
}
