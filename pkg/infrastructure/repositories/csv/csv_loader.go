package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// Loader handles loading stock records from CSV files
type Loader struct {
	newID func() string
	now   func() time.Time
}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{newID: entities.NewID, now: time.Now}
}

var inventoryHeader = []string{"category", "width", "height", "type", "color", "name", "quantity", "supplier"}

// LoadInventory loads stock records from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryItem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadInventory(file)
}

// ReadInventory parses stock records. Glass rows need width and height;
// hardware rows use name as the item type.
func (l *Loader) ReadInventory(r io.Reader) ([]*entities.InventoryItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, inventoryHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", inventoryHeader, header)
	}

	var items []*entities.InventoryItem
	for i, record := range records[1:] {
		if len(record) != len(inventoryHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(inventoryHeader), len(record))
		}

		item, err := l.parseInventoryItem(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (l *Loader) parseInventoryItem(record []string) (*entities.InventoryItem, error) {
	category, err := entities.ParseCategory(strings.ToLower(strings.TrimSpace(record[0])))
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[6]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[6])
	}

	name := strings.TrimSpace(record[5])
	var spec entities.MaterialSpec
	switch category {
	case entities.CategoryGlass:
		glass := entities.GlassSpec{
			Width:  entities.Dimension(strings.TrimSpace(record[1])),
			Height: entities.Dimension(strings.TrimSpace(record[2])),
			Type:   strings.TrimSpace(record[3]),
			Color:  strings.TrimSpace(record[4]),
		}
		if !glass.Complete() {
			return nil, fmt.Errorf("glass row needs numeric width and height")
		}
		spec = glass
	case entities.CategoryHardware:
		if name == "" {
			return nil, fmt.Errorf("hardware row needs a name")
		}
		spec = entities.HardwareSpec{ItemType: name}
	}

	return entities.NewInventoryItem(l.newID(), spec, name, entities.Quantity(quantity), strings.TrimSpace(record[7]), l.now())
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(actual[i])) != col {
			return false
		}
	}
	return true
}
