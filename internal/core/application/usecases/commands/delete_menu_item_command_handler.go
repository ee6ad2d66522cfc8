package commands

import (
	"context"
	"log/slog"
)

// DeleteMenuItemCommandHandler removes menu items. Items still referenced by
// an order line are refused with errs.ObjectIsInUseError.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
	logger     *slog.Logger
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuItemUoWFactory, logger *slog.Logger) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_menu_item_handler"),
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()

	if _, err := repo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "menu item deleted", "menu_item_id", cmd.ID().String())

	return nil
}
