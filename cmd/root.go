package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fooddelivery/internal/adapters/out/jsonfile"
)

var rootCmd = &cobra.Command{
	Use:   "fooddelivery",
	Short: "Food delivery order management service",
	Long: "A food delivery workflow service covering restaurants and menus, " +
		"customer registration, order placement, delivery agent dispatch, and " +
		"operational reporting. State is kept in a single JSON data file.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and background jobs",
	Run: func(_ *cobra.Command, _ []string) {
		serve(LoadConfig())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(config Config) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonfile.NewStore(jsonfile.NewFilePersistence(config.DataFile), logger)
	if err != nil {
		log.Fatalf("Failed to load state from %s: %v", config.DataFile, err)
	}

	root := NewCompositionRoot(config, store, logger, slogger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	root.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
