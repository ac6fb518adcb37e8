package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/jsonfile"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
type CompositionRoot struct {
	store      *jsonfile.Store
	uowFactory *jsonfile.UnitOfWorkFactory
	dispatcher services.AgentDispatcher
	logger     zerolog.Logger
	slogger    *slog.Logger
}

// NewCompositionRoot builds the object graph on top of the state store.
func NewCompositionRoot(_ Config, store *jsonfile.Store, logger zerolog.Logger, slogger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		store:      store,
		uowFactory: jsonfile.NewUnitOfWorkFactory(store),
		dispatcher: services.NewAgentDispatcher(rand.New(rand.NewSource(time.Now().UnixNano()))),
		logger:     logger,
		slogger:    slogger,
	}
}

func (c *CompositionRoot) CreateAddRestaurantCommandHandler() commands.AddRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateAddAgentCommandHandler() commands.AddAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAgentCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.OrderRepository())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.store.CustomerRepository(), c.store.OrderRepository())
}

func (c *CompositionRoot) CreateSearchRestaurantsQueryHandler() queries.SearchRestaurantsQueryHandler {
	return queries.NewSearchRestaurantsQueryHandler(c.store.RestaurantRepository())
}

func (c *CompositionRoot) CreateGenerateReportQueryHandler() queries.GenerateReportQueryHandler {
	return queries.NewGenerateReportQueryHandler(
		c.store.RestaurantRepository(),
		c.store.CustomerRepository(),
		c.store.AgentRepository(),
		c.store.OrderRepository(),
	)
}

// CreateServer assembles the HTTP server with all handlers wired in.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddRestaurantCommandHandler(),
		c.CreateAddMenuItemCommandHandler(),
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateAddAgentCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateSearchRestaurantsQueryHandler(),
		c.CreateGenerateReportQueryHandler(),
		c.store,
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignAgentCommandHandler(), c.store, c.slogger)
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
