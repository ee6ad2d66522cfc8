package queries

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountOrdersByStatusQueryHandler counts orders per status with a single
// grouped query; line entries are never loaded.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler requires a GORM database connection.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err = rows.Scan(&name, &count); err != nil {
			return CountOrdersByStatusQueryResponse{}, err
		}

		status, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return CountOrdersByStatusQueryResponse{}, fmt.Errorf("stored order status: %w", parseErr)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	return CountOrdersByStatusQueryResponse{Counts: counts}, nil
}
