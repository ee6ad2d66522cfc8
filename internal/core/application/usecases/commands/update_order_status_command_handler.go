package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies explicit status changes. Any valid
// status may follow any other; concurrent updates resolve as last write wins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle loads the order, changes its status and returns the hydrated result.
// A missing order yields errs.ObjectNotFoundError before anything is written.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := orderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", updated.ID().String(),
		"from", previous.String(),
		"to", updated.Status().String(),
	)

	return updated, nil
}
