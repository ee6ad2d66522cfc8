package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery lists the whole menu, newest first.
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}
