package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockCreateMenuItemHandler struct{ mock.Mock }

func (m *MockCreateMenuItemHandler) Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockUpdateMenuItemHandler struct{ mock.Mock }

func (m *MockUpdateMenuItemHandler) Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockDeleteMenuItemHandler struct{ mock.Mock }

func (m *MockDeleteMenuItemHandler) Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetMenuItemHandler struct{ mock.Mock }

func (m *MockGetMenuItemHandler) Handle(ctx context.Context, query queries.GetMenuItemQuery) (*menu.MenuItem, error) {
	args := m.Called(ctx, query)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockListMenuItemsHandler struct{ mock.Mock }

func (m *MockListMenuItemsHandler) Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

type fixture struct {
	createOrder       *MockCreateOrderHandler
	updateOrderStatus *MockUpdateOrderStatusHandler
	getOrder          *MockGetOrderHandler
	listOrders        *MockListOrdersHandler
	createMenuItem    *MockCreateMenuItemHandler
	updateMenuItem    *MockUpdateMenuItemHandler
	deleteMenuItem    *MockDeleteMenuItemHandler
	getMenuItem       *MockGetMenuItemHandler
	listMenuItems     *MockListMenuItemsHandler
	router            *echo.Echo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		createOrder:       new(MockCreateOrderHandler),
		updateOrderStatus: new(MockUpdateOrderStatusHandler),
		getOrder:          new(MockGetOrderHandler),
		listOrders:        new(MockListOrdersHandler),
		createMenuItem:    new(MockCreateMenuItemHandler),
		updateMenuItem:    new(MockUpdateMenuItemHandler),
		deleteMenuItem:    new(MockDeleteMenuItemHandler),
		getMenuItem:       new(MockGetMenuItemHandler),
		listMenuItems:     new(MockListMenuItemsHandler),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       f.createOrder,
		UpdateOrderStatus: f.updateOrderStatus,
		GetOrder:          f.getOrder,
		ListOrders:        f.listOrders,
		CreateMenuItem:    f.createMenuItem,
		UpdateMenuItem:    f.updateMenuItem,
		DeleteMenuItem:    f.deleteMenuItem,
		GetMenuItem:       f.getMenuItem,
		ListMenuItems:     f.listMenuItems,
	}, logger)

	router, err := httpadapter.NewRouter(server, httpadapter.NewMetrics(prometheus.NewRegistry()), logger)
	require.NoError(t, err)
	f.router = router

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newMenuItem(t *testing.T, name, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, name+" description", money(t, price), "Main")
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, items []*menu.MenuItem, quantities []int) *order.Order {
	t.Helper()
	lines := make([]*order.LineEntry, len(items))
	for i, item := range items {
		view := order.MenuItemView{ID: item.ID(), Name: item.Name(), Description: item.Description(), Category: item.Category()}
		line, err := order.NewLineEntry(kernel.NewUUID(), view, quantities[i], item.Price())
		require.NoError(t, err)
		lines[i] = line
	}
	o, err := order.NewOrder(kernel.NewUUID(), lines)
	require.NoError(t, err)
	return o
}

func TestCreateOrder(t *testing.T) {
	pizza := newMenuItem(t, "Pizza", "35.90")
	salad := newMenuItem(t, "Salad", "28.50")

	t.Run("returns_201_with_the_hydrated_order", func(t *testing.T) {
		f := newFixture(t)
		created := newOrder(t, []*menu.MenuItem{pizza, salad}, []int{2, 1})
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			lines := cmd.Lines()
			return len(lines) == 2 &&
				lines[0].MenuItemID.IsEqual(pizza.ID()) && lines[0].Quantity == 2 &&
				lines[1].MenuItemID.IsEqual(salad.ID()) && lines[1].Quantity == 1
		})).Return(created, nil).Once()

		body := `{"items":[{"menuItemId":"` + pizza.ID().String() + `","quantity":2},` +
			`{"menuItemId":"` + salad.ID().String() + `","quantity":1}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created.ID().String(), got.Id.String())
		assert.InDelta(t, 100.30, got.TotalValue, 1e-9)
		assert.Equal(t, servers.RECEIVED, got.Status)
		require.Len(t, got.LineEntries, 2)
		assert.InDelta(t, 35.90, got.LineEntries[0].UnitPriceAtOrderTime, 1e-9)
		require.NotNil(t, got.LineEntries[0].MenuItem)
		assert.Equal(t, "Pizza", got.LineEntries[0].MenuItem.Name)
		f.createOrder.AssertExpectations(t)
	})

	t.Run("returns_400_for_invalid_input_without_calling_the_handler", func(t *testing.T) {
		cases := map[string]string{
			"empty_items":       `{"items":[]}`,
			"missing_items":     `{}`,
			"malformed_id":      `{"items":[{"menuItemId":"nope","quantity":1}]}`,
			"zero_quantity":     `{"items":[{"menuItemId":"` + pizza.ID().String() + `","quantity":0}]}`,
			"fractional_amount": `{"items":[{"menuItemId":"` + pizza.ID().String() + `","quantity":1.5}]}`,
			"quantity_too_high": `{"items":[{"menuItemId":"` + pizza.ID().String() + `","quantity":1001}]}`,
			"quantity_overflow": `{"items":[{"menuItemId":"` + pizza.ID().String() + `","quantity":3000000000}]}`,
			"not_json":          `{"items":`,
		}

		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				f := newFixture(t)

				rec := f.do(http.MethodPost, "/api/v1/orders", body)

				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
				f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("returns_404_for_an_unknown_menu_item", func(t *testing.T) {
		f := newFixture(t)
		missing := kernel.NewUUID()
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", missing.String())).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"items":[{"menuItemId":"`+missing.String()+`","quantity":1}]}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, missing.String())
	})

	t.Run("hides_store_failures_behind_500", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"items":[{"menuItemId":"`+pizza.ID().String()+`","quantity":1}]}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, int32(http.StatusInternalServerError), body.Code)
		assert.NotContains(t, body.Message, "connection refused")
	})
}

func TestListOrders(t *testing.T) {
	pizza := newMenuItem(t, "Pizza", "35.90")

	t.Run("passes_the_status_filter", func(t *testing.T) {
		f := newFixture(t)
		ready := newOrder(t, []*menu.MenuItem{pizza}, []int{1})
		require.NoError(t, ready.ChangeStatus(order.Ready))
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Status() != nil && *q.Status() == order.Ready
		})).Return([]*order.Order{ready}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders?status=READY", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, servers.READY, got[0].Status)
	})

	t.Run("returns_an_empty_array_when_nothing_matches", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Status() == nil
		})).Return([]*order.Order{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("rejects_an_unknown_status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders?status=CANCELLED", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.listOrders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("returns_the_order", func(t *testing.T) {
		f := newFixture(t)
		o := newOrder(t, []*menu.MenuItem{newMenuItem(t, "Soup", "12.00")}, []int{3})
		f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderID().IsEqual(o.ID())
		})).Return(o, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+o.ID().String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.InDelta(t, 36.00, got.TotalValue, 1e-9)
	})

	t.Run("returns_400_for_a_malformed_id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("returns_404_when_absent", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("returns_the_updated_order", func(t *testing.T) {
		f := newFixture(t)
		o := newOrder(t, []*menu.MenuItem{newMenuItem(t, "Soup", "12.00")}, []int{1})
		require.NoError(t, o.ChangeStatus(order.InPreparation))
		f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID().IsEqual(o.ID()) && cmd.Status() == order.InPreparation
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+o.ID().String()+"/status", `{"status":"IN_PREPARATION"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, servers.INPREPARATION, got.Status)
	})

	t.Run("returns_400_for_an_unknown_status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"cooking"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.updateOrderStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("returns_404_when_absent", func(t *testing.T) {
		f := newFixture(t)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("orderId", "x")).Once()

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"READY"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMenuItemEndpoints(t *testing.T) {
	t.Run("create_returns_201", func(t *testing.T) {
		f := newFixture(t)
		item := newMenuItem(t, "Lasagna", "42.00")
		f.createMenuItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateMenuItemCommand) bool {
			return cmd.Name() == "Lasagna" && cmd.Price().String() == "42.00"
		})).Return(item, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/menu-items",
			`{"name":"Lasagna","description":"Baked","price":42.0,"category":"Pasta"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got servers.MenuItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, item.ID().String(), got.Id.String())
		assert.InDelta(t, 42.0, got.Price, 1e-9)
	})

	t.Run("create_rejects_a_non_positive_price", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/menu-items",
			`{"name":"Lasagna","description":"Baked","price":0,"category":"Pasta"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "price")
	})

	t.Run("create_rejects_prices_that_cannot_be_stored", func(t *testing.T) {
		for _, price := range []string{"1000000000", "35.999"} {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/api/v1/menu-items",
				`{"name":"Lasagna","description":"Baked","price":`+price+`,"category":"Pasta"}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
			f.createMenuItem.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		}
	})

	t.Run("list_returns_items", func(t *testing.T) {
		f := newFixture(t)
		f.listMenuItems.On("Handle", mock.Anything, mock.Anything).
			Return([]*menu.MenuItem{newMenuItem(t, "A", "1.00"), newMenuItem(t, "B", "2.00")}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/menu-items", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.MenuItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("get_returns_404_when_absent", func(t *testing.T) {
		f := newFixture(t)
		f.getMenuItem.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", "x")).Once()

		rec := f.do(http.MethodGet, "/api/v1/menu-items/"+kernel.NewUUID().String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update_passes_only_present_fields", func(t *testing.T) {
		f := newFixture(t)
		item := newMenuItem(t, "Soup", "12.00")
		f.updateMenuItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateMenuItemCommand) bool {
			changes := cmd.Changes()
			return cmd.ID().IsEqual(item.ID()) &&
				changes.Name == nil && changes.Description == nil && changes.Category == nil &&
				changes.Price != nil && changes.Price.String() == "13.50"
		})).Return(item, nil).Once()

		rec := f.do(http.MethodPatch, "/api/v1/menu-items/"+item.ID().String(), `{"price":13.5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		f.updateMenuItem.AssertExpectations(t)
	})

	t.Run("delete_returns_204", func(t *testing.T) {
		f := newFixture(t)
		f.deleteMenuItem.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := f.do(http.MethodDelete, "/api/v1/menu-items/"+kernel.NewUUID().String(), "")

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("delete_returns_409_when_referenced", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.deleteMenuItem.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectIsInUseError("menuItemId", id.String())).Once()

		rec := f.do(http.MethodDelete, "/api/v1/menu-items/"+id.String(), "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, int32(http.StatusConflict), decodeError(t, rec).Code)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodGet, "/health", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("metrics_count_requests_by_route", func(t *testing.T) {
		f := newFixture(t)
		f.do(http.MethodGet, "/health", "")

		rec := f.do(http.MethodGet, "/metrics", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `restaurant_http_requests_total{method="GET",route="/health",status="200"} 1`)
	})

	t.Run("unknown_route_uses_the_error_body", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodGet, "/api/v1/nothing", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
	})

	t.Run("swagger_serves_the_openapi_document", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodGet, "/swagger/doc.json", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Restaurant"`)
		assert.Contains(t, rec.Body.String(), "/orders/{orderId}/status")
	})
}
