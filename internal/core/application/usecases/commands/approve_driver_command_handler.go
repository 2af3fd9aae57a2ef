package commands

import (
	"context"

	"taxidispatch/internal/core/application/auth"
)

// ApproveDriverCommandHandler applies the admin approve action.
// Authorization is checked before any read or write; a rejected command
// leaves every entity untouched.
type ApproveDriverCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewApproveDriverCommandHandler creates a handler for driver approval.
func NewApproveDriverCommandHandler(uowFactory AccountUoWFactory) ApproveDriverCommandHandler {
	return ApproveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approve command: the target account must exist and
// hold the driver role; its availability is then forced to on_road.
func (h ApproveDriverCommandHandler) Handle(ctx context.Context, cmd ApproveDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := auth.Authorize(cmd.Actor(), auth.CapApproveDriver); err != nil {
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

	driver, err := accounts.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = driver.GoOnRoad(); err != nil {
		return err
	}

	if err = accounts.Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
