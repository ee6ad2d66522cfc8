package services

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// ErrResolvedItemsMismatch is returned when the resolved menu items do not line
// up one to one with the requested lines.
var ErrResolvedItemsMismatch = errors.New("resolved menu items do not match requested lines")

// LineRequest is one requested line: which menu item and how many.
type LineRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// OrderComposer builds orders from resolved menu items.
//
// Business rules:
//   - Line order follows request order
//   - The unit price of a line is the menu item price at composition time
//   - The total is computed by the Order aggregate with exact decimals
//
// Example usage:
//
//	composer := services.NewOrderComposer()
//	o, err := composer.Compose(kernel.NewUUID(), requests, resolved)
type OrderComposer struct{}

func NewOrderComposer() OrderComposer {
	return OrderComposer{}
}

// Compose creates a RECEIVED order. items[i] must be the menu item referenced
// by requests[i].
func (c OrderComposer) Compose(id kernel.UUID, requests []LineRequest, items []*menu.MenuItem) (*order.Order, error) {
	if len(requests) != len(items) {
		return nil, fmt.Errorf("%w: %d lines, %d items", ErrResolvedItemsMismatch, len(requests), len(items))
	}

	lines := make([]*order.LineEntry, 0, len(requests))
	for i, req := range requests {
		item := items[i]
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		if !item.ID().IsEqual(req.MenuItemID) {
			return nil, fmt.Errorf("%w: items[%d] is %s, expected %s",
				ErrResolvedItemsMismatch, i, item.ID(), req.MenuItemID)
		}

		line, err := order.NewLineEntry(kernel.NewUUID(), viewOf(item), req.Quantity, item.Price())
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		lines = append(lines, line)
	}

	return order.NewOrder(id, lines)
}

func viewOf(item *menu.MenuItem) order.MenuItemView {
	return order.MenuItemView{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
	}
}
