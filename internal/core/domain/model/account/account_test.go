package account_test

import (
	"testing"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Success(t *testing.T) {
	accountID := kernel.NewUUID()

	a, err := account.NewAccount(accountID, "Alex Petrov", account.RoleDriver)

	require.NoError(t, err)
	assert.Equal(t, accountID, a.ID())
	assert.Equal(t, "Alex Petrov", a.Name())
	assert.Equal(t, account.RoleDriver, a.Role())
	assert.Equal(t, account.StatusOffline, a.Status())
	require.NoError(t, a.Validate())
}

func TestNewAccount_InvalidInput(t *testing.T) {
	_, err := account.NewAccount(kernel.UUID{}, "Alex Petrov", account.RoleDriver)
	require.Error(t, err)

	_, err = account.NewAccount(kernel.NewUUID(), "", account.RoleDriver)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = account.NewAccount(kernel.NewUUID(), "Alex Petrov", account.RoleUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreAccount(t *testing.T) {
	accountID := kernel.NewUUID()

	a, err := account.RestoreAccount(accountID, "Maria Ivanova", account.RoleDriver, account.StatusOnRoad)

	require.NoError(t, err)
	assert.Equal(t, account.StatusOnRoad, a.Status())
	require.NoError(t, a.Validate())
}

func TestRestoreAccount_InvalidStatus(t *testing.T) {
	_, err := account.RestoreAccount(
		kernel.NewUUID(), "Maria Ivanova", account.RoleDriver, account.StatusUnknown,
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAccount_Validate_NotConstructed(t *testing.T) {
	var a account.Account

	err := a.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrAccountIsNotConstructed)
}

func TestAccount_RolePredicates(t *testing.T) {
	admin, err := account.NewAccount(kernel.NewUUID(), "Dispatch Desk", account.RoleAdmin)
	require.NoError(t, err)
	driver, err := account.NewAccount(kernel.NewUUID(), "Alex Petrov", account.RoleDriver)
	require.NoError(t, err)
	customer, err := account.NewAccount(kernel.NewUUID(), "John Doe", account.RoleCustomer)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsDriver())
	assert.True(t, driver.IsDriver())
	assert.False(t, driver.IsAdmin())
	assert.False(t, customer.IsDriver())
	assert.False(t, customer.IsAdmin())
}

func TestAccount_GoOnRoad(t *testing.T) {
	driver, err := account.NewAccount(kernel.NewUUID(), "Alex Petrov", account.RoleDriver)
	require.NoError(t, err)

	require.NoError(t, driver.GoOnRoad())
	assert.Equal(t, account.StatusOnRoad, driver.Status())

	// Unconditional: setting the same status again succeeds.
	require.NoError(t, driver.GoOnRoad())
	assert.Equal(t, account.StatusOnRoad, driver.Status())
}

func TestAccount_MarkReady(t *testing.T) {
	driver, err := account.RestoreAccount(
		kernel.NewUUID(), "Alex Petrov", account.RoleDriver, account.StatusOnRoad,
	)
	require.NoError(t, err)

	require.NoError(t, driver.MarkReady())
	assert.Equal(t, account.StatusReady, driver.Status())
}

func TestAccount_AvailabilityRequiresDriverRole(t *testing.T) {
	admin, err := account.NewAccount(kernel.NewUUID(), "Dispatch Desk", account.RoleAdmin)
	require.NoError(t, err)
	customer, err := account.NewAccount(kernel.NewUUID(), "John Doe", account.RoleCustomer)
	require.NoError(t, err)

	require.ErrorIs(t, admin.GoOnRoad(), account.ErrNotADriver)
	require.ErrorIs(t, admin.MarkReady(), account.ErrNotADriver)
	require.ErrorIs(t, customer.GoOnRoad(), account.ErrNotADriver)
	require.ErrorIs(t, customer.MarkReady(), account.ErrNotADriver)

	assert.Equal(t, account.StatusOffline, admin.Status())
	assert.Equal(t, account.StatusOffline, customer.Status())
}

func TestAccount_IsEqual(t *testing.T) {
	a1, err := account.NewAccount(kernel.NewUUID(), "Alex Petrov", account.RoleDriver)
	require.NoError(t, err)
	a2, err := account.NewAccount(kernel.NewUUID(), "Alex Petrov", account.RoleDriver)
	require.NoError(t, err)

	assert.True(t, a1.IsEqual(a1))
	assert.False(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(nil))
}
