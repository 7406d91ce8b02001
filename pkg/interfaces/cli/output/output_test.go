package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
)

func sampleReport() *Report {
	return &Report{
		Projects: []dto.RequirementsPage{{
			ProjectID:   "p1",
			ProjectName: "Storefront",
			Requirements: []dto.RequirementView{{
				ID:           "r1",
				Label:        "36\" x 48\" Clear Glass",
				Quantity:     "10",
				Notes:        "Front windows",
				Availability: dto.AvailabilityView{InStock: 5, Available: 5, Needed: 10, Shortage: 5},
				OrderStatus:  "pending",
			}},
			Total:       1,
			NeedToOrder: 1,
		}},
		Board: &dto.BoardView{
			Columns: []dto.BoardColumnView{
				{Status: "backlog"},
				{Status: "pending", Count: 1, Orders: []dto.OrderView{{ID: "o1", ItemName: "Clear Glass", Quantity: 5}}},
			},
			Total: 1,
		},
		Inventory: &dto.InventoryReport{
			Glass:    []dto.InventoryItemView{{ID: "glass-1", Quantity: "5"}},
			LowStock: []dto.InventoryItemView{{ID: "hardware-2", Name: "Window Lock", Quantity: "8"}},
		},
		Allocation: &dto.AllocationView{
			Claims:   1,
			Claimed:  10,
			Locked:   2,
			Projects: []dto.ProjectClaimsView{{ProjectID: "p1", ProjectName: "Storefront", Claims: 1, Claimed: 10, Locked: 2}},
		},
	}
}

func TestGenerate_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(sampleReport(), Config{Format: "text", Writer: &buf, Verbose: true}))

	out := buf.String()
	assert.Contains(t, out, "Storefront: 1 requirements, 0 sufficient, 1 need ordering")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "Notes: Front windows")
	assert.Contains(t, out, "Orders: 1")
	assert.Contains(t, out, "Window Lock")
	assert.Contains(t, out, "Claims: 1, claimed 10, locked 2")
}

func TestGenerate_TextHidesAllocationUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(sampleReport(), Config{Format: "text", Writer: &buf}))
	assert.NotContains(t, buf.String(), "Claims:")
}

func TestGenerate_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(sampleReport(), Config{Format: "json", Writer: &buf}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "projects")
	assert.Contains(t, decoded, "orders")
	assert.Contains(t, decoded, "inventory")
}

func TestGenerate_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(sampleReport(), Config{Format: "csv", Writer: &buf}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "project,requirement,item"))
	assert.Equal(t, `Storefront,r1,"36"" x 48"" Clear Glass",10,5,0,5,5,pending`, lines[1])
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := Generate(sampleReport(), Config{Format: "xml", Writer: &bytes.Buffer{}})
	assert.EqualError(t, err, "unsupported output format: xml")
}
