package http

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. The command and query handlers
// satisfy them as they are.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.MenuItem, error)
	}
	UpdateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) (*menu.MenuItem, error)
	}
	DeleteMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error
	}
	GetMenuItemHandler interface {
		Handle(ctx context.Context, query queries.GetMenuItemQuery) (*menu.MenuItem, error)
	}
	ListMenuItemsHandler interface {
		Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]*menu.MenuItem, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	GetOrder          GetOrderHandler
	ListOrders        ListOrdersHandler

	CreateMenuItem CreateMenuItemHandler
	UpdateMenuItem UpdateMenuItemHandler
	DeleteMenuItem DeleteMenuItemHandler
	GetMenuItem    GetMenuItemHandler
	ListMenuItems  ListMenuItemsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, len(body.Items))
	for i, item := range body.Items {
		items[i] = commands.OrderItem{MenuItemID: item.MenuItemId, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(items)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally by status.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body servers.NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(body.Name, body.Description, body.Price, body.Category)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuItem(created))
}

// ListMenuItems handles GET /api/v1/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	items, err := s.handlers.ListMenuItems.Handle(ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/v1/menu-items/{menuItemId}.
func (s *Server) GetMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	id, err := kernel.UUIDFromString(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// UpdateMenuItem handles PATCH /api/v1/menu-items/{menuItemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	id, err := kernel.UUIDFromString(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.MenuItemPatch
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, commands.MenuItemPatch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(updated))
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	id, err := kernel.UUIDFromString(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
