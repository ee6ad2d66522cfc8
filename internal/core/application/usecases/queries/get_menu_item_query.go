package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves one menu item.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
