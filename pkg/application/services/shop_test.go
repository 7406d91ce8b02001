package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/events"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/metrics"
	testhelpers "github.com/arashoo/Katena-project-management/pkg/infrastructure/testing"
)

func newTestShop(otherProjectQty int) (*Shop, *testhelpers.ShopData) {
	data := testhelpers.BuildShortageScenario(otherProjectQty)
	shop := NewShop(data.Projects, data.Inventory, data.Orders,
		WithClock(testhelpers.Clock()),
		WithIDGenerator(testhelpers.SequentialIDs("id")),
		WithRecorder(metrics.NewRecorder()),
	)
	return shop, data
}

func glassInput(qty string) dto.RequirementInput {
	return dto.RequirementInput{
		SpecInput: dto.SpecInput{Category: "glass", Width: "36", Height: "48", Color: "Clear"},
		Quantity:  qty,
	}
}

func TestShop_ShortageLifecycle(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(0)

	availability, err := shop.CheckAvailability("project-x", "req-x")
	require.NoError(t, err)
	assert.Equal(t, int64(5), availability.InStock)
	assert.Equal(t, int64(5), availability.Shortage)
	assert.False(t, availability.Sufficient)

	order, err := shop.CreateOrder(ctx, "project-x", "req-x")
	require.NoError(t, err)
	assert.Equal(t, int64(5), order.Quantity)
	assert.Equal(t, "backlog", order.Status)
	assert.Equal(t, "0.00", order.UnitCost)

	page, err := shop.RequirementViews("project-x")
	require.NoError(t, err)
	require.Len(t, page.Requirements, 1)
	assert.Equal(t, "backlog", page.Requirements[0].OrderStatus)

	for _, status := range []string{"pending", "ordered", "delivered"} {
		moved, err := shop.AdvanceOrder(ctx, order.ID, dto.AdvanceInput{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, moved.Status)
	}

	availability, err = shop.CheckAvailability("project-x", "req-x")
	require.NoError(t, err)
	assert.Equal(t, int64(10), availability.InStock)
	assert.True(t, availability.Sufficient)

	board, err := shop.OrderBoard()
	require.NoError(t, err)
	assert.Equal(t, 1, board.Total)
	assert.Equal(t, "delivered", board.Columns[3].Status)
	assert.Equal(t, 1, board.Columns[3].Count)

	history, err := shop.History(0)
	require.NoError(t, err)
	var types []string
	for _, e := range history {
		types = append(types, e.Type())
	}
	assert.Equal(t, []string{
		events.OrderCreatedEvent,
		events.OrderAdvancedEvent,
		events.OrderAdvancedEvent,
		events.InventoryReceivedEvent,
		events.OrderAdvancedEvent,
	}, types)
}

func TestShop_AdvanceWithoutStatusStepsForward(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(3)

	order, err := shop.CreateOrder(ctx, "project-x", "req-x")
	require.NoError(t, err)
	assert.Equal(t, int64(8), order.Quantity)

	moved, err := shop.AdvanceOrder(ctx, order.ID, dto.AdvanceInput{})
	require.NoError(t, err)
	assert.Equal(t, "pending", moved.Status)

	_, err = shop.AdvanceOrder(ctx, order.ID, dto.AdvanceInput{Status: "delivered"})
	assert.ErrorIs(t, err, entities.ErrIllegalTransition)

	_, err = shop.AdvanceOrder(ctx, order.ID, dto.AdvanceInput{Status: "shipped"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	require.NoError(t, shop.DeleteOrder(ctx, order.ID))
	assert.ErrorIs(t, shop.DeleteOrder(ctx, order.ID), entities.ErrNotFound)
}

func TestShop_Requirements(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(0)

	added, err := shop.AddRequirement(ctx, "project-x", dto.RequirementInput{
		SpecInput: dto.SpecInput{Category: "hardware", ItemType: "Sliding Track"},
		Quantity:  "4",
		Notes:     "patio",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sliding Track", added.Label)
	assert.Equal(t, int64(4), added.Availability.Shortage)

	page, err := shop.RequirementViews("project-x")
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 0, page.Sufficient)
	assert.Equal(t, 2, page.NeedToOrder)

	require.NoError(t, shop.DeleteRequirement(ctx, "project-x", added.ID))
	assert.ErrorIs(t, shop.DeleteRequirement(ctx, "project-x", added.ID), entities.ErrNotFound)

	page, err = shop.RequirementViews("project-x")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestShop_RefusedRequirementLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	shop, data := newTestShop(0)

	tests := []struct {
		name  string
		input dto.RequirementInput
	}{
		{"missing quantity", glassInput("")},
		{"zero quantity", glassInput("0")},
		{"unparseable quantity", glassInput("lots")},
		{"missing height", dto.RequirementInput{SpecInput: dto.SpecInput{Category: "glass", Width: "36"}, Quantity: "1"}},
		{"missing item type", dto.RequirementInput{SpecInput: dto.SpecInput{Category: "hardware"}, Quantity: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shop.AddRequirement(ctx, "project-x", tt.input)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}

	project, err := data.Projects.Get("project-x")
	require.NoError(t, err)
	assert.Len(t, project.Requirements(), 1)

	_, err = shop.AddRequirement(ctx, "nope", glassInput("1"))
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestShop_LockAllocation(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(3)

	_, err := shop.LockAllocation(ctx, "project-x", "req-x", dto.LockInput{Quantity: 3})
	assert.ErrorIs(t, err, entities.ErrInsufficientStock, "only 2 are available")

	locked, err := shop.LockAllocation(ctx, "project-x", "req-x", dto.LockInput{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), locked.AllocatedQuantity)
	assert.NotNil(t, locked.AllocationDate)
	assert.Equal(t, int64(2), locked.Availability.Available, "a lock is not subtracted again")
	assert.Equal(t, int64(2), locked.Availability.Locked)

	other, err := shop.CheckAvailability("project-y", "req-y")
	require.NoError(t, err)
	assert.Equal(t, int64(10), other.Allocated, "project X claims its full need once")

	released, err := shop.ReleaseAllocation(ctx, "project-x", "req-x")
	require.NoError(t, err)
	assert.Equal(t, int64(0), released.AllocatedQuantity)
	assert.Nil(t, released.AllocationDate)

	history, err := shop.History(0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, events.AllocationLockedEvent, history[0].Type())
	assert.Equal(t, events.AllocationReleasedEvent, history[1].Type())

	_, err = shop.LockAllocation(ctx, "project-x", "req-x", dto.LockInput{})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestShop_AllocationSummary(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(3)

	_, err := shop.LockAllocation(ctx, "project-x", "req-x", dto.LockInput{Quantity: 2})
	require.NoError(t, err)

	summary, err := shop.AllocationSummary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Claims)
	assert.Equal(t, int64(13), summary.Claimed)
	assert.Equal(t, int64(2), summary.Locked)

	byProject := map[string]dto.ProjectClaimsView{}
	for _, row := range summary.Projects {
		byProject[row.ProjectID] = row
	}
	require.Len(t, byProject, 2)
	assert.Equal(t, 1, byProject["project-x"].Claims)
	assert.Equal(t, int64(10), byProject["project-x"].Claimed)
	assert.Equal(t, int64(2), byProject["project-x"].Locked)
	assert.Equal(t, int64(3), byProject["project-y"].Claimed)
	assert.Equal(t, int64(0), byProject["project-y"].Locked)
}

func TestShop_Projects(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(0)

	created, err := shop.CreateProject(ctx, dto.ProjectInput{Name: "  Lobby Renovation "})
	require.NoError(t, err)
	assert.Equal(t, "Lobby Renovation", created.Name)
	assert.Equal(t, "upcoming", created.Status)
	require.Len(t, created.Steps, 4)
	assert.Equal(t, "Requirements", created.Steps[3].Name)

	toggled, err := shop.ToggleStep(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Steps[0].Completed)
	assert.Equal(t, "current", toggled.Status)

	_, err = shop.ToggleStep(ctx, created.ID, 9)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	withFile, err := shop.AttachFile(ctx, created.ID, 2, dto.FileInput{Name: "measurements.pdf", URL: "https://files.example.com/m.pdf", IsCloud: true})
	require.NoError(t, err)
	require.Len(t, withFile.Steps[1].Files, 1)
	assert.Equal(t, "measurements.pdf", withFile.Steps[1].Files[0].Name)

	fileID := withFile.Steps[1].Files[0].ID
	withoutFile, err := shop.DeleteFile(ctx, created.ID, 2, fileID)
	require.NoError(t, err)
	assert.Empty(t, withoutFile.Steps[1].Files)
	_, err = shop.DeleteFile(ctx, created.ID, 2, fileID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	_, err = shop.DeleteFile(ctx, created.ID, 9, fileID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	renamed, err := shop.RenameProject(ctx, created.ID, dto.ProjectInput{Name: "Lobby"})
	require.NoError(t, err)
	assert.Equal(t, "Lobby", renamed.Name)

	_, err = shop.CreateProject(ctx, dto.ProjectInput{})
	assert.ErrorIs(t, err, entities.ErrValidation)

	list, err := shop.ListProjects()
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, shop.DeleteProject(ctx, created.ID))
	_, err = shop.GetProject(created.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestShop_Inventory(t *testing.T) {
	ctx := context.Background()
	shop, _ := newTestShop(0)

	handle, err := shop.AddInventory(ctx, dto.InventoryInput{
		SpecInput: dto.SpecInput{Category: "hardware", ItemType: "Door Handle"},
		Name:      "ignored",
		Quantity:  15,
	})
	require.NoError(t, err)
	assert.Equal(t, "Door Handle", handle.Name)
	assert.False(t, handle.LowStock)

	updated, err := shop.UpdateInventory(ctx, entities.CategoryHardware, handle.ID, dto.InventoryInput{
		SpecInput: dto.SpecInput{Category: "hardware", ItemType: "Door Handle"},
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.True(t, updated.LowStock)

	_, err = shop.UpdateInventory(ctx, entities.CategoryGlass, handle.ID, dto.InventoryInput{
		SpecInput: dto.SpecInput{Category: "hardware", ItemType: "Door Handle"},
	})
	assert.ErrorIs(t, err, entities.ErrValidation)

	report, err := shop.InventoryReport()
	require.NoError(t, err)
	assert.Len(t, report.Glass, 1)
	assert.Len(t, report.Hardware, 1)
	assert.Len(t, report.LowStock, 1, "glass at 5 is not below its threshold")

	require.NoError(t, shop.DeleteInventory(ctx, entities.CategoryHardware, handle.ID))
	assert.ErrorIs(t, shop.DeleteInventory(ctx, entities.CategoryHardware, handle.ID), entities.ErrNotFound)
}

func TestShop_ConcurrentCallersSeeWholeOperations(t *testing.T) {
	ctx := context.Background()
	shop, data := newTestShop(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = shop.CreateOrder(ctx, "project-x", "req-x")
			_, _ = shop.RequirementViews("project-x")
		}()
	}
	wg.Wait()

	all, err := data.Orders.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
