package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists every attribute of an existing item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get yields errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// List returns all items, newest first.
	List(ctx context.Context) ([]*menu.MenuItem, error)

	// Delete removes the item. Items still referenced by an order line yield
	// errs.ObjectIsInUseError.
	Delete(ctx context.Context, id kernel.UUID) error
}

// MenuCatalog resolves menu item references for the order workflow. It must be
// safe for concurrent use.
type MenuCatalog interface {
	// Resolve yields errs.ObjectNotFoundError naming the id when no item exists.
	Resolve(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
