package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, optionally restricted to one status.
//
// Example:
//
//	all, _ := NewListOrdersQuery("")
//	ready, _ := NewListOrdersQuery("READY")
//	_, err := NewListOrdersQuery("CANCELLED") // errs.ErrValueIsInvalid
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery treats an empty status as no filter. Any other value must
// be an exact status name; unknown names are rejected instead of matching nothing.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status == "" {
		return query, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	query.status = &parsed

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, nil when every status is requested.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
