package queries

import (
	"errors"
	"time"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/guard"
)

var ErrGetDriverCurrentOrderQueryIsNotConstructed = errors.New(
	"GetDriverCurrentOrderQuery must be created via NewGetDriverCurrentOrderQuery constructor",
)

// GetDriverCurrentOrderQuery retrieves the order a driver is currently
// working, meaning the oldest order attached to the driver in assigned or
// in_progress status. Backs the driver's home screen.
type GetDriverCurrentOrderQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverCurrentOrderQuery creates a query for a driver's current order.
func NewGetDriverCurrentOrderQuery(driverID kernel.UUID) (GetDriverCurrentOrderQuery, error) {
	q := GetDriverCurrentOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDriverID(driverID); err != nil {
		return GetDriverCurrentOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverCurrentOrderQueryIsNotConstructed)
}

// DriverID returns the driver whose current order is requested.
func (q GetDriverCurrentOrderQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverCurrentOrderQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}

// GetDriverCurrentOrderQueryResponse represents the driver's active order.
type GetDriverCurrentOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Destination  string
	Reason       string
	OrderTime    time.Time
	Status       order.Status
	CreatedAt    time.Time
}
