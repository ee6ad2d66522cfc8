// Package ports defines the contracts between the application core and its
// adapters: repositories, the menu catalog and the unit of work.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always stored and loaded together with their line entries.
type OrderRepository interface {
	// Add persists a new order and all of its line entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Lines and total are
	// immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the hydrated order: line entries in request order, each with
	// its menu item view. Absent orders yield errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns hydrated orders, newest first. A nil status means all orders.
	List(ctx context.Context, status *order.Status) ([]*order.Order, error)
}
