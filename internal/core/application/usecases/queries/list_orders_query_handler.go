package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// ListOrdersQueryHandler lists hydrated orders, newest first.
type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle never returns a nil slice on success.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx, query.Status())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
