package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"
)

// FinishTripCommandHandler returns the driver to ready and completes their
// in-progress order in one atomic step. Absence of such an order is a normal
// outcome; the driver status change still applies.
type FinishTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinishTripCommandHandler creates a handler for the finish-trip command.
func NewFinishTripCommandHandler(uowFactory UoWFactory) FinishTripCommandHandler {
	return FinishTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish-trip command:
//  1. force the acting driver's availability to ready
//  2. look up the driver's first order in in_progress status; if present,
//     move it to completed
//
// Both mutations commit together or not at all.
func (h FinishTripCommandHandler) Handle(ctx context.Context, cmd FinishTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := auth.Authorize(cmd.Actor(), auth.CapFinishTrip); err != nil {
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

	if err = driver.MarkReady(); err != nil {
		return err
	}

	if err = accounts.Update(ctx, driver); err != nil {
		return err
	}

	currentOrder, err := orders.GetFirstByDriverInStatus(ctx, driver.ID(), order.InProgress)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No in-progress order: the availability change stands on its own.
	case err != nil:
		return err
	default:
		if err = currentOrder.Complete(); err != nil {
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
