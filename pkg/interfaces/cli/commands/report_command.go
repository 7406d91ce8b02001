package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/config"
	"github.com/arashoo/Katena-project-management/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	Settings      *config.Config
	InventoryFile string
	ProjectID     string
	Format        string
	Verbose       bool
	Help          bool
	Out           io.Writer
}

// ReportCommand prints requirement availability, the order board and low stock
type ReportCommand struct {
	config Config
	logger *zap.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(cfg Config, logger *zap.Logger) *ReportCommand {
	if cfg.Settings == nil {
		cfg.Settings = config.Default()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportCommand{config: cfg, logger: logger}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	settings := *c.config.Settings
	if c.config.InventoryFile != "" {
		if _, err := os.Stat(c.config.InventoryFile); err != nil {
			return fmt.Errorf("inventory file not found: %s", c.config.InventoryFile)
		}
		settings.Inventory.SeedCSV = c.config.InventoryFile
	}

	shop, err := NewShop(&settings, c.logger, nil)
	if err != nil {
		return err
	}

	report, err := c.collect(shop)
	if err != nil {
		return err
	}

	return output.Generate(report, output.Config{
		Format:  c.config.Format,
		Writer:  c.config.Out,
		Verbose: c.config.Verbose,
	})
}

type reportSource interface {
	ListProjects() ([]dto.ProjectView, error)
	RequirementViews(projectID string) (*dto.RequirementsPage, error)
	OrderBoard() (*dto.BoardView, error)
	InventoryReport() (*dto.InventoryReport, error)
	AllocationSummary() (*dto.AllocationView, error)
}

func (c *ReportCommand) collect(shop reportSource) (*output.Report, error) {
	var ids []string
	if c.config.ProjectID != "" {
		ids = []string{c.config.ProjectID}
	} else {
		projects, err := shop.ListProjects()
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			ids = append(ids, p.ID)
		}
	}

	report := &output.Report{Projects: []dto.RequirementsPage{}}
	for _, id := range ids {
		page, err := shop.RequirementViews(id)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", id, err)
		}
		report.Projects = append(report.Projects, *page)
	}

	board, err := shop.OrderBoard()
	if err != nil {
		return nil, err
	}
	report.Board = board

	inventory, err := shop.InventoryReport()
	if err != nil {
		return nil, err
	}
	report.Inventory = inventory

	if c.config.Verbose {
		allocation, err := shop.AllocationSummary()
		if err != nil {
			return nil, err
		}
		report.Allocation = allocation
	}
	return report, nil
}

// showHelp displays the help message
func (c *ReportCommand) showHelp() {
	fmt.Fprintf(c.config.Out, `Katena - glass and hardware project management

USAGE:
    katena [options] report      # Print requirement availability, orders and low stock
    katena [options] serve       # Run the HTTP API

OPTIONS:
    -config <file>      Path to a katena.toml configuration file
    -inventory <file>   Inventory CSV loaded on top of the seed stock
    -project <id>       Report a single project
    -format <fmt>       Output format: text, json, csv (default: text)
    -verbose            Include notes and individual orders
    -help               Show this help message

inventory.csv:
    category,width,height,type,color,name,quantity,supplier
    glass,36,48,Tempered,Clear,,5,Clearview Glass
    hardware,,,,,Door Handle,15,Hinge & Co

ENVIRONMENT:
    KATENA_HTTP_ADDR, KATENA_LOG_LEVEL, KATENA_INVENTORY_SEED_CSV, ...
`)
}
