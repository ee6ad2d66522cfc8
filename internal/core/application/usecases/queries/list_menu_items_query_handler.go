package queries

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

type ListMenuItemsQueryHandler struct {
	repo ports.MenuItemRepository
}

func NewListMenuItemsQueryHandler(repo ports.MenuItemRepository) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{repo: repo}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]*menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]*menu.MenuItem, 0)
	}

	return items, nil
}
