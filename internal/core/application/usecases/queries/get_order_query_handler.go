package queries

import (
	"context"
	"database/sql"
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single ride order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no order with
// the given ID exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var orderResp GetOrderQueryResponse
	var id uuid.UUID
	var status int
	var customerID, driverID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			destination,
			reason,
			order_time,
			status,
			customer_id,
			driver_id,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&orderResp.CustomerName,
		&orderResp.Destination,
		&orderResp.Reason,
		&orderResp.OrderTime,
		&status,
		&customerID,
		&driverID,
		&orderResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderResp.ID = orderID
	orderResp.Status = order.Status(status)

	orderResp.CustomerID, err = optionalUUID(customerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp.DriverID, err = optionalUUID(driverID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderResp, nil
}
