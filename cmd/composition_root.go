package cmd

import (
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, menurepo.NewGormMenuCatalog(c.gormDB), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.uowFactory.Create().MenuItemRepository())
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.uowFactory.Create().MenuItemRepository())
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		GetMenuItem:       c.CreateGetMenuItemQueryHandler(),
		ListMenuItems:     c.CreateListMenuItemsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStatusQueryHandler(), c.config.BacklogReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}
