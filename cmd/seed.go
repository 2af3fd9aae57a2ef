package cmd

import (
	"context"
	"fmt"
	"time"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
)

// SeedDemoData populates the database with a small fixture set for local
// development: a dispatcher, two ready drivers and a couple of pending
// orders. Enabled via the SEED_DEMO_DATA flag; never used in production.
func (c *CompositionRoot) SeedDemoData(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()

	admin, err := account.NewAccount(kernel.NewUUID(), "Dispatch Desk", account.RoleAdmin)
	if err != nil {
		return err
	}
	if err = accounts.Add(ctx, admin); err != nil {
		return err
	}

	for _, name := range []string{"Alex Petrov", "Maria Ivanova"} {
		driver, driverErr := account.NewAccount(kernel.NewUUID(), name, account.RoleDriver)
		if driverErr != nil {
			return driverErr
		}
		if driverErr = driver.MarkReady(); driverErr != nil {
			return driverErr
		}
		if driverErr = accounts.Add(ctx, driver); driverErr != nil {
			return driverErr
		}
	}

	orders := uow.OrderRepository()

	fixtures := []struct {
		customer    string
		destination string
		reason      string
	}{
		{"John Doe", "Central Station", "Airport transfer"},
		{"Jane Roe", "12 Harbor Street", "Business meeting"},
	}

	for i, f := range fixtures {
		o, orderErr := order.NewOrder(
			kernel.NewUUID(),
			f.customer,
			f.destination,
			f.reason,
			time.Now().Add(time.Duration(i+1)*time.Hour),
			nil,
		)
		if orderErr != nil {
			return orderErr
		}
		if orderErr = orders.Add(ctx, o); orderErr != nil {
			return orderErr
		}
	}

	return uow.Commit(ctx)
}
