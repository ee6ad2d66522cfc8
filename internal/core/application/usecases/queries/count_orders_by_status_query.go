package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery reports how many orders sit in each status.
//
// Example:
//
//	resp, err := handler.Handle(ctx, NewCountOrdersByStatusQuery())
//	fmt.Printf("%d orders still open\n", resp.Open())
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// CountOrdersByStatusQueryResponse holds one count per valid status; statuses
// without orders are present with 0.
type CountOrdersByStatusQueryResponse struct {
	Counts map[order.Status]int64
}

// Total is the number of orders of any status.
func (r CountOrdersByStatusQueryResponse) Total() int64 {
	var total int64
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Open is the number of orders not yet delivered.
func (r CountOrdersByStatusQueryResponse) Open() int64 {
	return r.Total() - r.Counts[order.Delivered]
}
