package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and driver assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstByDriverInStatus retrieves the driver's "first" order in the
	// given status. Used by the start/finish trip commands.
	//
	// "First" is defined as the oldest order by creation timestamp, with ties
	// broken by id ascending. Implementations must honor this ordering so the
	// pick is stable when a driver somehow holds several matching orders.
	// Returns an ObjectNotFoundError when the driver has no matching order;
	// callers treat that case as a no-op, not a failure.
	GetFirstByDriverInStatus(ctx context.Context, driverID kernel.UUID, status order.Status) (*order.Order, error)
}
