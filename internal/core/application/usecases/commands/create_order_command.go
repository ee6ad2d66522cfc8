package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one requested line as received from a client.
type OrderItem struct {
	MenuItemID string
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]OrderItem{
//	    {MenuItemID: pizzaID, Quantity: 2},
//	    {MenuItemID: saladID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	lines []services.LineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every line before any I/O takes place.
// Failures of all lines are joined into a single error.
func NewCreateOrderCommand(items []OrderItem) (CreateOrderCommand, error) {
	if len(items) == 0 {
		return CreateOrderCommand{}, order.ErrLineEntriesAreRequired
	}

	lines := make([]services.LineRequest, 0, len(items))
	var validationErrs []error
	for i, item := range items {
		line, err := parseOrderItem(item)
		if err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(validationErrs...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Lines returns the requested lines in request order.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	lines := make([]services.LineRequest, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func parseOrderItem(item OrderItem) (services.LineRequest, error) {
	var quantityErr error
	if item.Quantity < 1 || item.Quantity > order.MaxQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, order.MaxQuantity)
	}

	id, idErr := kernel.UUIDFromString(item.MenuItemID)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("menuItemId", idErr)
	}

	if err := errors.Join(idErr, quantityErr); err != nil {
		return services.LineRequest{}, err
	}

	return services.LineRequest{MenuItemID: id, Quantity: item.Quantity}, nil
}
