package order

import (
	"errors"
	"time"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a single ride request in the system. It is the aggregate
// root that manages the order lifecycle from submission through assignment to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name, destination and reason are required at submission
//   - Status transitions follow the lifecycle graph defined on Status
//   - A driver reference is attached on assignment and retained historically
//     after completion or cancellation
//
// The free-text fields (customer name, destination, reason) are opaque to the
// core: they are validated for presence only and never interpreted. The order
// time is checked against the clock once, at submission, and never
// re-validated afterwards.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the name supplied by the submitting customer
	customerName string

	// destination is the requested drop-off, opaque text
	destination string

	// reason is the stated purpose of the ride, opaque text
	reason string

	// orderTime is the requested pickup time
	orderTime time.Time

	// status represents the current state in the order lifecycle
	status Status

	// customerID is the owning account, if the order was submitted by a
	// registered customer (nil for anonymous submissions)
	customerID *kernel.UUID

	// driverID is the assigned driver's account ID (nil until assignment;
	// kept after terminal states for history)
	driverID *kernel.UUID

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerName, destination, reason: required opaque text
//   - orderTime: requested pickup time (must be set; the "strictly in the
//     future" rule is enforced by the submission command, not here, so that
//     restored historical orders stay loadable)
//   - customerID: optional owning account
//
// Returns a validation error naming the first offending field otherwise.
func NewOrder(
	id kernel.UUID,
	customerName string,
	destination string,
	reason string,
	orderTime time.Time,
	customerID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setDestination(destination),
		o.setReason(reason),
		o.setOrderTime(orderTime),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status and an already-attached driver,
// and skips the submission-time text checks: persisted state is trusted.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	destination string,
	reason string,
	orderTime time.Time,
	status Status,
	customerID *kernel.UUID,
	driverID *kernel.UUID,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		destination:   destination,
		reason:        reason,
		orderTime:     orderTime,
		status:        status,
		customerID:    customerID,
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name supplied at submission.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Destination returns the requested drop-off text.
func (o *Order) Destination() string {
	return o.destination
}

// Reason returns the stated purpose of the ride.
func (o *Order) Reason() string {
	return o.reason
}

// OrderTime returns the requested pickup time.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the owning account's ID, or nil for anonymous orders.
func (o *Order) Customer() *kernel.UUID {
	return o.customerID
}

// Driver returns the assigned driver's ID, or nil if no driver is assigned.
// The reference persists after the order reaches a terminal state.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Assign attaches a driver and moves the order to Assigned.
//
// Allowed from Pending (initial assignment) and from Assigned
// (reassignment to a different driver). The driver's own availability is
// deliberately not consulted here: order and driver are coupled loosely,
// and the driver-side mutation happens in the command layer.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Start moves the order to InProgress. Valid only from Assigned.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order to Completed, the successful terminal state.
// Valid only from InProgress. The driver reference is retained.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state.
// An already-attached driver reference is retained for history.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus applies an administrative status update through the lifecycle
// graph, optionally attaching a driver in the same step.
//
// The target must be reachable from the current status (same-status updates
// are allowed for non-terminal states, so repeated admin submissions stay
// idempotent). Attempts to leave a terminal state fail with a
// StatusTransitionError and leave the order unchanged.
func (o *Order) ChangeStatus(target Status, driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if driverID != nil {
		o.driverID = driverID
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	o.reason = reason
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = orderTime
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}
