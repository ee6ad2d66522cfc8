package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// CreateOrderCommandHandler places new orders.
//
// Menu items are resolved through the catalog before the transaction starts,
// one goroutine per line. The first failed lookup cancels the others and
// nothing is persisted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // a requested menu item does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
	composer   services.OrderComposer
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MenuCatalog,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		composer:   services.NewOrderComposer(),
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle resolves the lines, composes the order and persists it with its line
// entries in one transaction. The returned order is read back inside that
// transaction, so it carries store-assigned timestamps and menu views.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items, err := h.resolve(ctx, lines)
	if err != nil {
		return nil, err
	}

	aggregate, err := h.composer.Compose(kernel.NewUUID(), lines, items)
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

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := orderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", created.ID().String(),
		"lines", len(created.LineEntries()),
		"total", created.TotalValue().String(),
	)

	return created, nil
}

func (h CreateOrderCommandHandler) resolve(ctx context.Context, lines []services.LineRequest) ([]*menu.MenuItem, error) {
	items := make([]*menu.MenuItem, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		g.Go(func() error {
			item, err := h.catalog.Resolve(gctx, line.MenuItemID)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}
