package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
)

// Report is everything the shop report prints
type Report struct {
	Projects   []dto.RequirementsPage `json:"projects"`
	Board      *dto.BoardView         `json:"orders"`
	Inventory  *dto.InventoryReport   `json:"inventory"`
	Allocation *dto.AllocationView    `json:"allocation,omitempty"`
}

// Config holds configuration for output generation
type Config struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// Generate writes the report in the configured format
func Generate(report *Report, config Config) error {
	w := config.Writer
	if w == nil {
		w = os.Stdout
	}
	switch config.Format {
	case "", "text":
		return generateTextOutput(w, report, config)
	case "json":
		return generateJSONOutput(w, report)
	case "csv":
		return generateCSVOutput(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, report *Report, config Config) error {
	fmt.Fprintf(w, "📊 Shop Report\n")
	fmt.Fprintf(w, "==============\n\n")

	for _, page := range report.Projects {
		fmt.Fprintf(w, "📋 %s: %d requirements, %d sufficient, %d need ordering\n",
			page.ProjectName, page.Total, page.Sufficient, page.NeedToOrder)
		if len(page.Requirements) == 0 {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%-28s %-8s %-8s %-10s %-8s %-10s\n",
			"Item", "Needed", "Stock", "Available", "Short", "Order")
		fmt.Fprintf(w, "%-28s %-8s %-8s %-10s %-8s %-10s\n",
			"----------------------------", "--------", "--------", "----------", "--------", "----------")
		for _, req := range page.Requirements {
			status := req.OrderStatus
			if status == "" {
				status = "-"
			}
			fmt.Fprintf(w, "%-28s %-8s %-8d %-10d %-8d %-10s\n",
				req.Label,
				req.Quantity,
				req.Availability.InStock,
				req.Availability.Available,
				req.Availability.Shortage,
				status)
			if config.Verbose && req.Notes != "" {
				fmt.Fprintf(w, "  Notes: %s\n", req.Notes)
			}
		}
		fmt.Fprintln(w)
	}

	if report.Board != nil {
		fmt.Fprintf(w, "🚚 Orders: %d\n", report.Board.Total)
		for _, col := range report.Board.Columns {
			fmt.Fprintf(w, "  %-10s %d\n", col.Status, col.Count)
			if !config.Verbose {
				continue
			}
			for _, order := range col.Orders {
				fmt.Fprintf(w, "    %-12s %-28s qty %-6d %s\n",
					order.ID, order.ItemName, order.Quantity, order.ProjectName)
			}
		}
		fmt.Fprintln(w)
	}

	if config.Verbose && report.Allocation != nil {
		a := report.Allocation
		fmt.Fprintf(w, "🔒 Claims: %d, claimed %d, locked %d\n", a.Claims, a.Claimed, a.Locked)
		for _, p := range a.Projects {
			fmt.Fprintf(w, "  %-28s %-4d claimed %-6d locked %d\n", p.ProjectName, p.Claims, p.Claimed, p.Locked)
		}
		fmt.Fprintln(w)
	}

	if report.Inventory != nil {
		fmt.Fprintf(w, "📦 Inventory: %d glass, %d hardware\n",
			len(report.Inventory.Glass), len(report.Inventory.Hardware))
		if len(report.Inventory.LowStock) > 0 {
			fmt.Fprintf(w, "⚠️  Low stock:\n")
			for _, item := range report.Inventory.LowStock {
				fmt.Fprintf(w, "  %-12s %-28s %s\n", item.ID, item.Name, item.Quantity)
			}
		}
	}
	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(w io.Writer, report *Report) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// generateCSVOutput writes one row per requirement
func generateCSVOutput(w io.Writer, report *Report) error {
	writer := csv.NewWriter(w)
	header := []string{"project", "requirement", "item", "needed", "in_stock", "allocated", "available", "shortage", "order_status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, page := range report.Projects {
		for _, req := range page.Requirements {
			a := req.Availability
			record := []string{
				page.ProjectName,
				req.ID,
				req.Label,
				req.Quantity,
				strconv.FormatInt(a.InStock, 10),
				strconv.FormatInt(a.Allocated, 10),
				strconv.FormatInt(a.Available, 10),
				strconv.FormatInt(a.Shortage, 10),
				req.OrderStatus,
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
