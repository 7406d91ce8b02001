package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/infrastructure/config"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/logger"
	"github.com/arashoo/Katena-project-management/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile    = flag.String("config", "", "Path to a katena.toml configuration file")
		inventoryFile = flag.String("inventory", "", "Inventory CSV loaded on top of the seed stock")
		projectID     = flag.String("project", "", "Report a single project")
		format        = flag.String("format", "text", "Output format: text, json, csv")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	settings, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: settings.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), settings, log, commands.Config{
		Settings:      settings,
		InventoryFile: *inventoryFile,
		ProjectID:     *projectID,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	}); err != nil {
		log.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, settings *config.Config, log *zap.Logger, reportConfig commands.Config) error {
	switch name {
	case "", "report":
		// report output goes to stdout, so keep the log quiet
		return commands.NewReportCommand(reportConfig, log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))).Execute(ctx)
	case "serve":
		return commands.NewServeCommand(settings, log.Named("http")).Execute(ctx)
	default:
		return fmt.Errorf("unknown command %q: expected report or serve", name)
	}
}
