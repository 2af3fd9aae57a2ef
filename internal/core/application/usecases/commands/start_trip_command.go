package commands

import (
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/pkg/guard"
)

var ErrStartTripCommandIsNotConstructed = errors.New(
	"StartTripCommand must be created via NewStartTripCommand constructor",
)

// StartTripCommand is the driver action that begins a trip. It is always
// self-targeted: the command carries no driver parameter, the acting
// identity is the driver. Driver availability flips to on_road and the
// driver's assigned order, if one exists, moves to in_progress.
//
// Example:
//
//	cmd, err := NewStartTripCommand(actor)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start trip: %w", err)
//	}
type StartTripCommand struct { //nolint:recvcheck //using for validation
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewStartTripCommand creates a command for the acting driver to start their trip.
func NewStartTripCommand(actor auth.Actor) (StartTripCommand, error) {
	cmd := StartTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return StartTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

// Actor returns the acting identity, which is also the targeted driver.
func (c StartTripCommand) Actor() auth.Actor {
	return c.actor
}

func (c *StartTripCommand) setActor(actor auth.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
