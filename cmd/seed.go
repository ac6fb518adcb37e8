package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/jaswdr/faker"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fooddelivery/internal/adapters/out/jsonfile"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the data file with demo data",
	Long: "Fills the data file with generated restaurants, customers, and " +
		"delivery agents, and places a few orders. Intended for trying out " +
		"the API locally.",
	Run: func(_ *cobra.Command, _ []string) {
		seed(LoadConfig())
	},
}

var cuisines = []string{"italian", "mexican", "indian", "chinese", "thai"}

var menuCategories = []string{"starters", "mains", "desserts", "drinks"}

func seed(config Config) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonfile.NewStore(jsonfile.NewFilePersistence(config.DataFile), logger)
	if err != nil {
		log.Fatalf("Failed to load state from %s: %v", config.DataFile, err)
	}

	root := NewCompositionRoot(config, store, logger, slogger)
	ctx := context.Background()
	fake := faker.New()

	restaurantIDs := seedRestaurants(ctx, &root, fake)
	customerIDs := seedCustomers(ctx, &root, fake)
	seedAgents(ctx, &root, fake)
	seedOrders(ctx, &root, fake, restaurantIDs, customerIDs)

	logger.Info().Str("data_file", config.DataFile).Msg("demo data seeded")
}

func seedRestaurants(ctx context.Context, root *CompositionRoot, fake faker.Faker) []kernel.ID {
	handler := root.CreateAddRestaurantCommandHandler()

	ids := make([]kernel.ID, 0, 3)
	for i := 0; i < 3; i++ {
		itemCount := fake.IntBetween(3, 6)
		items := make([]commands.MenuItemInput, itemCount)
		for j := range items {
			items[j] = commands.MenuItemInput{
				Name:        fake.Lorem().Word() + " " + fake.Lorem().Word(),
				Price:       fake.Float64(2, 5, 30),
				Description: fake.Lorem().Sentence(6),
				Category:    menuCategories[fake.IntBetween(0, len(menuCategories)-1)],
			}
		}

		cmd, err := commands.NewAddRestaurantCommand(
			fake.Company().Name(),
			cuisines[fake.IntBetween(0, len(cuisines)-1)],
			fake.Address().City(),
			items)
		if err != nil {
			log.Fatalf("Failed to build restaurant data: %v", err)
		}

		id, err := handler.Handle(ctx, cmd)
		if err != nil {
			log.Fatalf("Failed to seed restaurant: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}

func seedCustomers(ctx context.Context, root *CompositionRoot, fake faker.Faker) []kernel.ID {
	handler := root.CreateRegisterCustomerCommandHandler()

	ids := make([]kernel.ID, 0, 5)
	for i := 0; i < 5; i++ {
		cmd := commands.NewRegisterCustomerCommand(
			fake.Person().Name(),
			fake.Internet().Email(),
			fake.Phone().Number(),
			fake.Address().StreetAddress())

		id, err := handler.Handle(ctx, cmd)
		if err != nil {
			log.Fatalf("Failed to seed customer: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}

func seedAgents(ctx context.Context, root *CompositionRoot, fake faker.Faker) {
	handler := root.CreateAddAgentCommandHandler()
	vehicles := []string{"bike", "scooter", "car"}

	for i := 0; i < 3; i++ {
		cmd, err := commands.NewAddAgentCommand(
			fake.Person().Name(),
			fake.Phone().Number(),
			vehicles[fake.IntBetween(0, len(vehicles)-1)])
		if err != nil {
			log.Fatalf("Failed to build agent data: %v", err)
		}

		if _, err = handler.Handle(ctx, cmd); err != nil {
			log.Fatalf("Failed to seed agent: %v", err)
		}
	}
}

func seedOrders(
	ctx context.Context,
	root *CompositionRoot,
	fake faker.Faker,
	restaurantIDs, customerIDs []kernel.ID,
) {
	placeHandler := root.CreatePlaceOrderCommandHandler()
	assignHandler := root.CreateAssignAgentCommandHandler()

	for i := 0; i < 4; i++ {
		restaurantID := restaurantIDs[fake.IntBetween(0, len(restaurantIDs)-1)]
		customerID := customerIDs[fake.IntBetween(0, len(customerIDs)-1)]

		itemID, err := kernel.NewID(kernel.MenuItemPrefix, fake.IntBetween(1, 3))
		if err != nil {
			log.Fatalf("Failed to build menu item identifier: %v", err)
		}

		item, err := commands.NewOrderItem(itemID, fake.IntBetween(1, 3))
		if err != nil {
			log.Fatalf("Failed to build order item: %v", err)
		}

		cmd, err := commands.NewPlaceOrderCommand(customerID, restaurantID, []commands.OrderItem{item}, "")
		if err != nil {
			log.Fatalf("Failed to build order data: %v", err)
		}

		if _, err = placeHandler.Handle(ctx, cmd); err != nil {
			log.Fatalf("Failed to seed order: %v", err)
		}
	}

	// dispatch one order so the seeded state shows an assignment
	if err := assignHandler.Handle(ctx, commands.NewAssignNextOrderCommand()); err != nil {
		log.Fatalf("Failed to assign seeded order: %v", err)
	}
}
