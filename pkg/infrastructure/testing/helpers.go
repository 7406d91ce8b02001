package testing

import (
	"fmt"
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/repositories/memory"
)

// FixedTime is the clock used by every fixture
var FixedTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// Clock returns a clock that advances one minute per call, starting at FixedTime
func Clock() func() time.Time {
	t := FixedTime
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// ClearGlass is the 36x48 Clear glass spec used across scenarios
func ClearGlass() entities.GlassSpec {
	return entities.GlassSpec{Width: "36", Height: "48", Color: "Clear"}
}

// ShopData holds repositories loaded with a scenario
type ShopData struct {
	Projects  *memory.ProjectRepository
	Inventory *memory.InventoryRepository
	Orders    *memory.OrderRepository
}

// BuildShortageScenario builds project X needing 10 of ClearGlass with 5 in stock.
// With otherProjectQty > 0, project Y also claims that many of the same spec.
func BuildShortageScenario(otherProjectQty int) *ShopData {
	data := &ShopData{
		Projects:  memory.NewProjectRepository(),
		Inventory: memory.NewInventoryRepository(memory.WithInventoryClock(Clock()), memory.WithInventoryIDs(SequentialIDs("inv"))),
		Orders:    memory.NewOrderRepository(),
	}

	mustAddItem(data.Inventory, "glass-1", ClearGlass(), 5)
	mustSaveProject(data.Projects, "project-x", "Project X", mustCreateRequirement("req-x", ClearGlass(), "10"))
	if otherProjectQty > 0 {
		mustSaveProject(data.Projects, "project-y", "Project Y",
			mustCreateRequirement("req-y", ClearGlass(), fmt.Sprint(otherProjectQty)))
	}
	return data
}

// mustCreateRequirement is a helper for tests - panics on validation error
func mustCreateRequirement(id string, spec entities.MaterialSpec, quantity string) entities.Requirement {
	req, err := entities.NewRequirement(id, spec, quantity, FixedTime)
	if err != nil {
		panic(err)
	}
	return *req
}

func mustSaveProject(repo *memory.ProjectRepository, id, name string, reqs ...entities.Requirement) {
	project, err := entities.NewProject(id, name, FixedTime)
	if err != nil {
		panic(err)
	}
	step := project.RequirementsStep()
	step.Requirements = append(step.Requirements, reqs...)
	if err := repo.Save(*project); err != nil {
		panic(err)
	}
}

func mustAddItem(repo *memory.InventoryRepository, id string, spec entities.MaterialSpec, qty entities.Quantity) {
	item, err := entities.NewInventoryItem(id, spec, "", qty, "", FixedTime)
	if err != nil {
		panic(err)
	}
	if err := repo.Add(*item); err != nil {
		panic(err)
	}
}
