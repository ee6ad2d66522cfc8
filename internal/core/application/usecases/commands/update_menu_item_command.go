package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// MenuItemPatch carries the fields a client wants to change; nil means unchanged.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

// UpdateMenuItemCommand partially updates a menu item.
type UpdateMenuItemCommand struct {
	id      kernel.UUID
	changes menu.Changes

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand converts the patch into domain changes. A present
// price must be greater than 0; present texts are checked by the aggregate.
func NewUpdateMenuItemCommand(id kernel.UUID, patch MenuItemPatch) (UpdateMenuItemCommand, error) {
	var priceErr error
	changes := menu.Changes{
		Name:        patch.Name,
		Description: patch.Description,
		Category:    patch.Category,
	}
	if patch.Price != nil {
		price, err := positivePrice(*patch.Price)
		if err != nil {
			priceErr = err
		} else {
			changes.Price = &price
		}
	}

	if err := errors.Join(id.Validate(), priceErr); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		id:      id,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateMenuItemCommand) Changes() menu.Changes {
	return c.changes
}
