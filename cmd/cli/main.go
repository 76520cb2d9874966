package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/cmd/cli/commands"
	"github.com/lamnguyen-se/shiftreg/internal/config"
	"github.com/lamnguyen-se/shiftreg/pkg/postgres"
	"github.com/lamnguyen-se/shiftreg/pkg/utils/logging"
)

var (
	env      string
	verbose  bool
	app      *commands.AppContext
	database *postgres.DB
	logDone  func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftreg",
		Short: "Shiftreg CLI - Manage weekly shift registrations",
		Long:  `A CLI tool for managing weekly shift registration, allocation and publishing.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if logDone != nil {
				logDone()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.DefineWeekCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterCmd(appRef()))
	rootCmd.AddCommand(commands.ListRegistrationsCmd(appRef()))
	rootCmd.AddCommand(commands.AllocateCmd(appRef()))
	rootCmd.AddCommand(commands.ApproveCmd(appRef()))
	rootCmd.AddCommand(commands.PublishCmd(appRef()))
	rootCmd.AddCommand(commands.WarningsCmd(appRef()))
	rootCmd.AddCommand(commands.HistoryCmd(appRef()))
	rootCmd.AddCommand(commands.SetAllocationConfigCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context that initApp populates before any
// command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config and database
func initApp() error {
	var err error
	appCtx := appRef()
	appCtx.Ctx = context.Background()

	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	appCtx.Logger, logDone, err = logging.New(logging.Options{Env: env, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appCtx.Logger.Info("Starting application", zap.String("environment", env))

	appCtx.Logger.Info("Loading configuration")
	appCtx.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appCtx.Logger.Debug("Configuration loaded successfully")

	appCtx.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(appCtx.Ctx, appCtx.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	appCtx.Logger.Info("Running database migrations")
	if err := database.RunMigrations(appCtx.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	appCtx.Database = database
	appCtx.Logger.Info("Database initialized successfully")

	return nil
}
