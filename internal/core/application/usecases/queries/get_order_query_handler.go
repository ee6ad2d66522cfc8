package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// GetOrderQueryHandler loads single orders.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle returns errs.ObjectNotFoundError naming the id for unknown orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Get(ctx, query.OrderID())
}
