package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler adds new dishes to the menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
	logger     *slog.Logger
}

func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory, logger *slog.Logger) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_menu_item_handler"),
	}
}

// Handle stores the item and returns it as persisted.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(kernel.NewUUID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()
	if err = repo.Add(ctx, item); err != nil {
		return nil, err
	}

	created, err := repo.Get(ctx, item.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "menu item created", "menu_item_id", created.ID().String(), "name", created.Name())

	return created, nil
}
