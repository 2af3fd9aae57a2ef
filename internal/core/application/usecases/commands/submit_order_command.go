package commands

import (
	"errors"
	"time"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
	"taxidispatch/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a public request for a ride. It is the only
// command surface without a role requirement: anyone may place an order.
//
// The order time must lie strictly in the future at the moment the command is
// constructed. This is the single point where the clock is consulted; the
// core never re-validates the time afterwards.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(
//	    orderID, "John Doe", "123 Main Street", "Airport pickup",
//	    time.Now().Add(2*time.Hour), nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	destination  string
	reason       string
	orderTime    time.Time
	customerID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new ride order.
// Validates that the order ID is valid, the text fields are present, and the
// order time is strictly after the current time. customerID is optional and
// identifies the submitting account when the customer is logged in.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerName string,
	destination string,
	reason string,
	orderTime time.Time,
	customerID *kernel.UUID,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setDestination(destination),
		cmd.setReason(reason),
		cmd.setOrderTime(orderTime),
		cmd.setCustomerID(customerID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the submitted customer name.
func (c SubmitOrderCommand) CustomerName() string {
	return c.customerName
}

// Destination returns the requested drop-off text.
func (c SubmitOrderCommand) Destination() string {
	return c.destination
}

// Reason returns the stated purpose of the ride.
func (c SubmitOrderCommand) Reason() string {
	return c.reason
}

// OrderTime returns the requested pickup time.
func (c SubmitOrderCommand) OrderTime() time.Time {
	return c.orderTime
}

// CustomerID returns the submitting account's ID, or nil for anonymous orders.
func (c SubmitOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *SubmitOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *SubmitOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *SubmitOrderCommand) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}

	if !orderTime.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderTime",
			errors.New("order time must be in the future"),
		)
	}

	c.orderTime = orderTime
	return nil
}

func (c *SubmitOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}
