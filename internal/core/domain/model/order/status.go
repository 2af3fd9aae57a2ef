package order

import (
	"fmt"

	"taxidispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a ride order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct dispatch workflow.
//
// State transitions:
//
//	pending ──> assigned ──> in_progress ──> completed
//	   │           │  │           │
//	   │           └──┘           │
//	   │      (reassignment)      │
//	   └──────────┬───────────────┘
//	              v
//	          cancelled
//
// completed and cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is submitted.
	// Orders in this status are waiting for an admin to attach a driver.
	Pending

	// Assigned indicates the order has a driver attached.
	// Orders can be reassigned to another driver while in this status.
	Assigned

	// InProgress indicates the driver has started the trip.
	InProgress

	// Completed indicates the trip finished successfully.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates an administrative cancellation.
	// Reachable from any non-terminal state; terminal itself.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// transitions returns the lifecycle graph. An edge from A to B means an order
// in status A may move to status B. Assigned keeps a self-edge so an admin can
// attach a different driver without changing the lifecycle position.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Assigned, Cancelled},
		Assigned:   {Assigned, InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a wire/persistence representation into a Status.
// Returns a validation error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("pending", "assigned", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle graph has an edge from s to
// target. A same-status "transition" is permitted for non-terminal states so
// administrative updates stay idempotent.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target && !s.IsTerminal() {
		return true
	}
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along the lifecycle graph.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (0, *errs.ValueIsInvalidError) when target is not a defined status
//   - (0, *errs.StatusTransitionError) when the edge does not exist,
//     including any attempt to leave a terminal state
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewStatusTransitionError(s.String(), target.String())
	}

	return target, nil
}

// Assign transitions the status to Assigned.
//
// Valid from Pending (initial assignment) and Assigned (reassignment).
func (s Status) Assign() (Status, error) {
	return s.TransitionTo(Assigned)
}

// Start transitions the status to InProgress. Valid only from Assigned.
func (s Status) Start() (Status, error) {
	return s.TransitionTo(InProgress)
}

// Complete transitions the status to Completed. Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
