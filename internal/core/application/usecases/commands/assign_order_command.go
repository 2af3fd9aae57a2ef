package commands

import (
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand is the admin order update: it moves an order to a target
// status and optionally attaches a driver in the same step.
//
// When the target status is assigned and a driver is given, the command also
// forces that driver's availability to on_road as a second, independent
// mutation triggered from the order side. The driver's current state is not
// consulted first; whether the driver already holds another active order is
// deliberately not checked either (see the package-level notes on loose
// coupling).
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(actor, orderID, order.Assigned, &driverID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order: %w", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	actor        auth.Actor
	orderID      kernel.UUID
	targetStatus order.Status
	driverID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to update an order's status and
// driver, acting as the given identity. The target status must be one of the
// defined lifecycle states; the driver is optional.
func NewAssignOrderCommand(
	actor auth.Actor,
	orderID kernel.UUID,
	targetStatus order.Status,
	driverID *kernel.UUID,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c AssignOrderCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the targeted order's ID.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested lifecycle status.
func (c AssignOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// DriverID returns the driver to attach, or nil to leave the reference as is.
func (c AssignOrderCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *AssignOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *AssignOrderCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
