package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler applies partial updates to menu items. Price
// changes never affect orders already placed.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
	logger     *slog.Logger
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuItemUoWFactory, logger *slog.Logger) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_menu_item_handler"),
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()

	item, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = item.Apply(cmd.Changes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, item.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "menu item updated", "menu_item_id", updated.ID().String())

	return updated, nil
}
