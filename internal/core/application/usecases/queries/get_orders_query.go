package queries

import (
	"errors"
	"math"
	"time"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"
	"taxidispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// maxOrdersPageSize caps a single listing page.
const maxOrdersPageSize = 100

// GetOrdersQuery retrieves a page of ride orders, newest first. Used by the
// admin dispatch board, which shows recent submissions at the top.
//
// Example:
//
//	query, err := NewGetOrdersQuery(20, 0)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders. The limit must be
// between 1 and 100, the offset non-negative.
func NewGetOrdersQuery(limit, offset int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setLimit(limit),
		q.setOffset(offset),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders to skip.
func (q GetOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetOrdersQuery) setLimit(limit int) error {
	if limit < 1 || limit > maxOrdersPageSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxOrdersPageSize)
	}

	q.limit = limit
	return nil
}

func (q *GetOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt)
	}

	q.offset = offset
	return nil
}

// GetOrdersQueryResponse represents one order row in the listing read model.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Destination  string
	Reason       string
	OrderTime    time.Time
	Status       order.Status
	CustomerID   *kernel.UUID
	DriverID     *kernel.UUID
	CreatedAt    time.Time
}
