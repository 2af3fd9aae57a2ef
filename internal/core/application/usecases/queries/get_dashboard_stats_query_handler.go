package queries

import (
	"context"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the admin dashboard counters in a
// single round trip: total and pending orders, plus drivers by availability.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the counters query. "Active" drivers are those in ready
// status, "busy" drivers are on the road.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var stats GetDashboardStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM users WHERE role = ? AND status = ?),
			(SELECT COUNT(*) FROM users WHERE role = ? AND status = ?)
	`,
		order.Pending,
		account.RoleDriver, account.StatusReady,
		account.RoleDriver, account.StatusOnRoad,
	).Row()

	if err := row.Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.ActiveDrivers,
		&stats.BusyDrivers,
	); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return stats, nil
}
