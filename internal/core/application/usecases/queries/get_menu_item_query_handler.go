package queries

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

type GetMenuItemQueryHandler struct {
	repo ports.MenuItemRepository
}

func NewGetMenuItemQueryHandler(repo ports.MenuItemRepository) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{repo: repo}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (*menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Get(ctx, query.MenuItemID())
}
