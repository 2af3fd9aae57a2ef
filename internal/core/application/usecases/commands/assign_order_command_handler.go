package commands

import (
	"context"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/order"
)

// AssignOrderCommandHandler applies the admin order update. The order's
// status moves along the lifecycle graph; on assignment with a driver, the
// driver's availability is forced to on_road inside the same transaction so
// the two mutations are never observable separately.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for admin order updates.
// Requires a UoWFactory for coordinating updates across both aggregates.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command:
//  1. move the order to the target status, attaching the driver if given;
//     transitions out of terminal states are rejected with a domain error
//  2. if the target is assigned and a driver is given, force that driver's
//     availability to on_road
//
// A rejection at any step rolls back everything.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := auth.Authorize(cmd.Actor(), auth.CapAssignOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	target, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.ChangeStatus(cmd.TargetStatus(), cmd.DriverID()); err != nil {
		return err
	}

	if err = orders.Update(ctx, target); err != nil {
		return err
	}

	if cmd.TargetStatus() == order.Assigned && cmd.DriverID() != nil {
		accounts := uow.AccountRepository()

		driver, getErr := accounts.Get(ctx, *cmd.DriverID())
		if getErr != nil {
			return getErr
		}

		if err = driver.GoOnRoad(); err != nil {
			return err
		}

		if err = accounts.Update(ctx, driver); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
