package queries_test

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.MenuItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuItemRepository) List(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*menu.MenuItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
