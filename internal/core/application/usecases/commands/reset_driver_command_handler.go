package commands

import (
	"context"

	"taxidispatch/internal/core/application/auth"
)

// ResetDriverCommandHandler applies the admin reset action.
type ResetDriverCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewResetDriverCommandHandler creates a handler for driver reset.
func NewResetDriverCommandHandler(uowFactory AccountUoWFactory) ResetDriverCommandHandler {
	return ResetDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command: the target account must exist and hold
// the driver role; its availability is then forced to ready.
func (h ResetDriverCommandHandler) Handle(ctx context.Context, cmd ResetDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := auth.Authorize(cmd.Actor(), auth.CapResetDriver); err != nil {
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

	if err = driver.MarkReady(); err != nil {
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
