package order_test

import (
	"testing"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.Assigned, "assigned"},
		{order.InProgress, "in_progress"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected order.Status
	}{
		{"pending", order.Pending},
		{"assigned", order.Assigned},
		{"in_progress", order.InProgress},
		{"completed", order.Completed},
		{"cancelled", order.Cancelled},
	}

	for _, tc := range testCases {
		status, err := order.StatusFromString(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, status)
	}
}

func TestStatusFromString_Invalid(t *testing.T) {
	for _, input := range []string{"", "unknown", "PENDING", "done"} {
		_, err := order.StatusFromString(input)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{
		order.Pending, order.Assigned, order.InProgress, order.Completed, order.Cancelled,
	} {
		require.NoError(t, status.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"Pending to Assigned", order.Pending, order.Assigned, true},
		{"Pending to Cancelled", order.Pending, order.Cancelled, true},
		{"Pending to InProgress", order.Pending, order.InProgress, false},
		{"Pending to Completed", order.Pending, order.Completed, false},
		{"Assigned to Assigned (reassignment)", order.Assigned, order.Assigned, true},
		{"Assigned to InProgress", order.Assigned, order.InProgress, true},
		{"Assigned to Cancelled", order.Assigned, order.Cancelled, true},
		{"Assigned to Completed", order.Assigned, order.Completed, false},
		{"InProgress to Completed", order.InProgress, order.Completed, true},
		{"InProgress to Cancelled", order.InProgress, order.Cancelled, true},
		{"InProgress to Assigned", order.InProgress, order.Assigned, false},
		{"Completed to Assigned", order.Completed, order.Assigned, false},
		{"Completed to Completed", order.Completed, order.Completed, false},
		{"Cancelled to Pending", order.Cancelled, order.Pending, false},
		{"Cancelled to Cancelled", order.Cancelled, order.Cancelled, false},
		{"Pending to Pending (idempotent)", order.Pending, order.Pending, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_TransitionTo_TerminalState(t *testing.T) {
	_, err := order.Completed.TransitionTo(order.Assigned)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStatusTransitionNotAllowed)
	assert.Equal(t, "status transition is not allowed: completed -> assigned", err.Error())
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_ConvenienceTransitions(t *testing.T) {
	status, err := order.Pending.Assign()
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, status)

	status, err = status.Start()
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, status)

	status, err = status.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Completed, status)

	_, err = status.Cancel()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStatusTransitionNotAllowed)
}
