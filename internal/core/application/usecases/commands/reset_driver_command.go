package commands

import (
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrResetDriverCommandIsNotConstructed = errors.New(
	"ResetDriverCommand must be created via NewResetDriverCommand constructor",
)

// ResetDriverCommand is the admin action that returns a driver to ready.
// Like approval, it sets availability unconditionally and has no order side
// effects; resetting a driver mid-trip is permitted.
type ResetDriverCommand struct { //nolint:recvcheck //using for validation
	actor    auth.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetDriverCommand creates a command to reset the given driver,
// acting as the given identity.
func NewResetDriverCommand(actor auth.Actor, driverID kernel.UUID) (ResetDriverCommand, error) {
	cmd := ResetDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDriverID(driverID),
	); err != nil {
		return ResetDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetDriverCommand) Validate() error {
	return c.guard.Validate(ErrResetDriverCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c ResetDriverCommand) Actor() auth.Actor {
	return c.actor
}

// DriverID returns the targeted driver account's ID.
func (c ResetDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ResetDriverCommand) setActor(actor auth.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ResetDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
