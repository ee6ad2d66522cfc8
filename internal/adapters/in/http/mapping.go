package http

import (
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/generated/servers"
)

func toOrder(o *order.Order) servers.Order {
	entries := o.LineEntries()
	lines := make([]servers.LineEntry, len(entries))
	for i, entry := range entries {
		lines[i] = toLineEntry(entry)
	}

	return servers.Order{
		Id:          o.ID().Bytes(),
		TotalValue:  o.TotalValue().Float64(),
		Status:      servers.OrderStatus(o.Status().String()),
		LineEntries: lines,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func toLineEntry(entry *order.LineEntry) servers.LineEntry {
	line := servers.LineEntry{
		Id:                   entry.ID().Bytes(),
		MenuItemId:           entry.MenuItemID().Bytes(),
		Quantity:             entry.Quantity(),
		UnitPriceAtOrderTime: entry.UnitPrice().Float64(),
	}

	// A view without a name was never hydrated from the catalog.
	if view := entry.MenuItem(); view.Name != "" {
		line.MenuItem = &servers.MenuItemView{
			Id:          view.ID.Bytes(),
			Name:        view.Name,
			Description: view.Description,
			Category:    view.Category,
		}
	}

	return line
}

func toMenuItem(item *menu.MenuItem) servers.MenuItem {
	return servers.MenuItem{
		Id:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price().Float64(),
		Category:    item.Category(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}
