package commands_test

import (
	"context"
	"testing"
	"time"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstByDriverInStatus(
	ctx context.Context,
	driverID kernel.UUID,
	status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, driverID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

// Test fixtures shared by the command handler tests.

func newAdminActor(t *testing.T) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(kernel.NewUUID(), account.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func newDriverActor(t *testing.T, id kernel.UUID) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(id, account.RoleDriver)
	require.NoError(t, err)
	return actor
}

func newCustomerActor(t *testing.T) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(kernel.NewUUID(), account.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func newReadyDriver(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	driver, err := account.NewAccount(id, "Test Driver", account.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, driver.MarkReady())
	return driver
}

func newOnRoadDriver(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	driver, err := account.NewAccount(id, "Test Driver", account.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, driver.GoOnRoad())
	return driver
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"John Doe",
		"Central Station",
		"Airport transfer",
		time.Now().Add(2*time.Hour),
		nil,
	)
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.Assign(driverID))
	return o
}

func newInProgressOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := newAssignedOrder(t, driverID)
	require.NoError(t, o.Start())
	return o
}
