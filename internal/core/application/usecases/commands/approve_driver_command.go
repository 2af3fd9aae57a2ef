package commands

import (
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrApproveDriverCommandIsNotConstructed = errors.New(
	"ApproveDriverCommand must be created via NewApproveDriverCommand constructor",
)

// ApproveDriverCommand is the admin action that puts a driver on the road.
// The driver's availability is forced to on_road regardless of their current
// status or any order they may hold; no order is touched. This decoupling is
// intentional and mirrors the manual dispatch desk workflow.
type ApproveDriverCommand struct { //nolint:recvcheck //using for validation
	actor    auth.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveDriverCommand creates a command to approve the given driver,
// acting as the given identity.
func NewApproveDriverCommand(actor auth.Actor, driverID kernel.UUID) (ApproveDriverCommand, error) {
	cmd := ApproveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDriverID(driverID),
	); err != nil {
		return ApproveDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDriverCommand) Validate() error {
	return c.guard.Validate(ErrApproveDriverCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c ApproveDriverCommand) Actor() auth.Actor {
	return c.actor
}

// DriverID returns the targeted driver account's ID.
func (c ApproveDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ApproveDriverCommand) setActor(actor auth.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApproveDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
