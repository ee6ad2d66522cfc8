package commands_test

import (
	"context"
	"io"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// Get returns either a fixed order or the result of a func(kernel.UUID)
// registered as first return value.
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(kernel.UUID) *order.Order); ok {
		return fn(id), args.Error(1)
	}
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
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(kernel.UUID) *menu.MenuItem); ok {
		return fn(id), args.Error(1)
	}
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
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Resolve(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.MenuItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuItemUoW struct{ MockTx }

func (m *MockMenuItemUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockMenuItemUoWFactory struct{ mock.Mock }

func (m *MockMenuItemUoWFactory) Create() commands.MenuItemUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuItemUoW)
}

func newMenuItem(name, price, category string) *menu.MenuItem {
	p, err := kernel.MoneyFromString(price)
	if err != nil {
		panic(err)
	}
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, name+" description", p, category)
	if err != nil {
		panic(err)
	}
	return item
}

func newOrder(item *menu.MenuItem, quantity int) *order.Order {
	line, err := order.NewLineEntry(kernel.NewUUID(), order.MenuItemView{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
	}, quantity, item.Price())
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), []*order.LineEntry{line})
	if err != nil {
		panic(err)
	}
	return o
}
