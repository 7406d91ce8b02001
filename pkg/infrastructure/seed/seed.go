// Package seed provides the shop's starting data.
package seed

import (
	"fmt"
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
)

const (
	SampleProjectID     = "sample-project"
	SampleRequirementID = "sample-front-windows"
)

// Data is the seed content before it is loaded into repositories
type Data struct {
	Projects  []*entities.Project
	Inventory []*entities.InventoryItem
}

// Build returns the sample project and starting stock stamped at the given time
func Build(at time.Time) (*Data, error) {
	project, err := entities.NewProject(SampleProjectID, "Sample Project", at)
	if err != nil {
		return nil, err
	}
	req, err := entities.NewRequirement(SampleRequirementID,
		entities.GlassSpec{Width: "36", Height: "48", Color: "Clear"}, "10", at)
	if err != nil {
		return nil, err
	}
	req.Notes = "Front windows"
	step := project.RequirementsStep()
	step.Requirements = append(step.Requirements, *req)

	stock := []struct {
		id       string
		spec     entities.MaterialSpec
		quantity entities.Quantity
		supplier string
	}{
		{"glass-1", entities.GlassSpec{Width: "36", Height: "48", Type: "Tempered", Color: "Clear"}, 5, "Clearview Glass"},
		{"glass-2", entities.GlassSpec{Width: "24", Height: "36", Type: "Laminated", Color: "Bronze"}, 12, "Clearview Glass"},
		{"hardware-1", entities.HardwareSpec{ItemType: "Door Handle"}, 15, "Hinge & Co"},
		{"hardware-2", entities.HardwareSpec{ItemType: "Window Lock"}, 8, "Hinge & Co"},
	}

	data := &Data{Projects: []*entities.Project{project}}
	for _, s := range stock {
		item, err := entities.NewInventoryItem(s.id, s.spec, "", s.quantity, s.supplier, at)
		if err != nil {
			return nil, fmt.Errorf("seed item %s: %w", s.id, err)
		}
		data.Inventory = append(data.Inventory, item)
	}
	return data, nil
}

// Load writes the data into the repositories
func (d *Data) Load(projects repositories.ProjectRepository, inventory repositories.InventoryRepository) error {
	if err := projects.LoadProjects(d.Projects); err != nil {
		return fmt.Errorf("failed to load seed projects: %w", err)
	}
	if err := inventory.LoadItems(d.Inventory); err != nil {
		return fmt.Errorf("failed to load seed inventory: %w", err)
	}
	return nil
}
