package commands_test

import (
	"testing"
	"time"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	orderTime := time.Now().Add(2 * time.Hour)

	cmd, err := commands.NewSubmitOrderCommand(
		orderID, "John Doe", "Central Station", "Airport transfer", orderTime, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "John Doe", cmd.CustomerName())
	assert.Equal(t, "Central Station", cmd.Destination())
	assert.Equal(t, "Airport transfer", cmd.Reason())
	assert.Equal(t, orderTime, cmd.OrderTime())
	assert.Nil(t, cmd.CustomerID())
	require.NoError(t, cmd.Validate())
}

func TestNewSubmitOrderCommand_WithCustomer(t *testing.T) {
	customerID := kernel.NewUUID()

	cmd, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(), "John Doe", "Central Station", "Airport transfer",
		time.Now().Add(time.Hour), &customerID,
	)

	require.NoError(t, err)
	require.NotNil(t, cmd.CustomerID())
	assert.Equal(t, customerID, *cmd.CustomerID())
}

func TestNewSubmitOrderCommand_MissingFields(t *testing.T) {
	orderTime := time.Now().Add(time.Hour)

	testCases := []struct {
		name         string
		customerName string
		destination  string
		reason       string
	}{
		{"Empty customer name", "", "Central Station", "Airport transfer"},
		{"Empty destination", "John Doe", "", "Airport transfer"},
		{"Empty reason", "John Doe", "Central Station", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewSubmitOrderCommand(
				kernel.NewUUID(), tc.customerName, tc.destination, tc.reason, orderTime, nil,
			)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewSubmitOrderCommand_PastOrderTime(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(), "John Doe", "Central Station", "Airport transfer",
		time.Now().Add(-time.Minute), nil,
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "order time must be in the future")
}

func TestNewSubmitOrderCommand_ZeroOrderTime(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(), "John Doe", "Central Station", "Airport transfer",
		time.Time{}, nil,
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSubmitOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(
		kernel.UUID{}, "John Doe", "Central Station", "Airport transfer",
		time.Now().Add(time.Hour), nil,
	)

	require.Error(t, err)
}

func TestSubmitOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.SubmitOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
}
