// Package queries contains read-only projections over the dispatch store:
// dashboard counters, order listings and detail views. Handlers run raw SQL
// against the database connection and carry no business logic.
package queries

import (
	"errors"

	"taxidispatch/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the admin dashboard counters: order totals
// and driver availability breakdown.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse carries the dashboard counters.
type GetDashboardStatsQueryResponse struct {
	TotalOrders   int
	PendingOrders int
	ActiveDrivers int
	BusyDrivers   int
}
