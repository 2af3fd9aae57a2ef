package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"
)

// StartTripCommandHandler advances the driver and their current order in one
// atomic step. The driver's availability is set first; the order lookup comes
// second, and finding no assigned order is a normal outcome; the driver
// status change still applies.
type StartTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartTripCommandHandler creates a handler for the start-trip command.
// Requires a UoWFactory since it may touch both the account and an order.
func NewStartTripCommandHandler(uowFactory UoWFactory) StartTripCommandHandler {
	return StartTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-trip command:
//  1. force the acting driver's availability to on_road
//  2. look up the driver's first order in assigned status; if present,
//     move it to in_progress
//
// Both mutations commit together or not at all.
func (h StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := auth.Authorize(cmd.Actor(), auth.CapStartTrip); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()
	orders := uow.OrderRepository()

	driver, err := accounts.Get(ctx, cmd.Actor().ID)
	if err != nil {
		return err
	}

	if err = driver.GoOnRoad(); err != nil {
		return err
	}

	if err = accounts.Update(ctx, driver); err != nil {
		return err
	}

	currentOrder, err := orders.GetFirstByDriverInStatus(ctx, driver.ID(), order.Assigned)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No assigned order: the availability change stands on its own.
	case err != nil:
		return err
	default:
		if err = currentOrder.Start(); err != nil {
			return err
		}
		if err = orders.Update(ctx, currentOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
