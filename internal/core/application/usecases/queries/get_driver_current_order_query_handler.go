package queries

import (
	"context"
	"database/sql"
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverCurrentOrderQueryHandler retrieves the order a driver is working.
type GetDriverCurrentOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverCurrentOrderQueryHandler creates a handler for current-order queries.
func NewGetDriverCurrentOrderQueryHandler(db *gorm.DB) GetDriverCurrentOrderQueryHandler {
	return GetDriverCurrentOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil when the driver has no active
// order; an idle driver is a normal state, not an error.
func (h GetDriverCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDriverCurrentOrderQuery,
) (*GetDriverCurrentOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderResp GetDriverCurrentOrderQueryResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			destination,
			reason,
			order_time,
			status,
			created_at
		FROM orders
		WHERE driver_id = ? AND status IN (?, ?)
		ORDER BY created_at, id
		LIMIT 1
	`, query.DriverID().String(), order.Assigned, order.InProgress).Row()

	err := row.Scan(
		&id,
		&orderResp.CustomerName,
		&orderResp.Destination,
		&orderResp.Reason,
		&orderResp.OrderTime,
		&status,
		&orderResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	orderResp.ID = orderID
	orderResp.Status = order.Status(status)

	return &orderResp, nil
}
