package commands

import (
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/pkg/guard"
)

var ErrFinishTripCommandIsNotConstructed = errors.New(
	"FinishTripCommand must be created via NewFinishTripCommand constructor",
)

// FinishTripCommand is the driver action that ends a trip. Always
// self-targeted, mirror image of StartTripCommand: availability returns to
// ready and the in-progress order, if one exists, completes.
type FinishTripCommand struct { //nolint:recvcheck //using for validation
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewFinishTripCommand creates a command for the acting driver to finish their trip.
func NewFinishTripCommand(actor auth.Actor) (FinishTripCommand, error) {
	cmd := FinishTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return FinishTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishTripCommand) Validate() error {
	return c.guard.Validate(ErrFinishTripCommandIsNotConstructed)
}

// Actor returns the acting identity, which is also the targeted driver.
func (c FinishTripCommand) Actor() auth.Actor {
	return c.actor
}

func (c *FinishTripCommand) setActor(actor auth.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
