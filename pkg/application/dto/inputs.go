package dto

import (
	"strings"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// SpecInput carries the category fields of a material as entered on a form
type SpecInput struct {
	Category string `json:"category" validate:"required,oneof=glass hardware"`
	Width    string `json:"width,omitempty" validate:"required_if=Category glass,dimension"`
	Height   string `json:"height,omitempty" validate:"required_if=Category glass,dimension"`
	Color    string `json:"color,omitempty"`
	Type     string `json:"type,omitempty"`
	ItemType string `json:"item_type,omitempty" validate:"required_if=Category hardware"`
}

// Spec converts the input to its MaterialSpec variant
func (in SpecInput) Spec() entities.MaterialSpec {
	switch entities.Category(in.Category) {
	case entities.CategoryGlass:
		return entities.GlassSpec{
			Width:  entities.Dimension(strings.TrimSpace(in.Width)),
			Height: entities.Dimension(strings.TrimSpace(in.Height)),
			Color:  strings.TrimSpace(in.Color),
			Type:   strings.TrimSpace(in.Type),
		}
	case entities.CategoryHardware:
		return entities.HardwareSpec{ItemType: strings.TrimSpace(in.ItemType)}
	}
	return nil
}

// SpecInputFrom flattens a MaterialSpec back into form fields
func SpecInputFrom(spec entities.MaterialSpec) SpecInput {
	switch s := spec.(type) {
	case entities.GlassSpec:
		return SpecInput{
			Category: string(entities.CategoryGlass),
			Width:    string(s.Width),
			Height:   string(s.Height),
			Color:    s.Color,
			Type:     s.Type,
		}
	case entities.HardwareSpec:
		return SpecInput{Category: string(entities.CategoryHardware), ItemType: s.ItemType}
	}
	return SpecInput{}
}

type ProjectInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

type FileInput struct {
	Name    string `json:"name" validate:"required"`
	URL     string `json:"url" validate:"omitempty,url"`
	IsCloud bool   `json:"is_cloud"`
}

// RequirementInput adds a requirement to a project's Requirements step
type RequirementInput struct {
	SpecInput
	Quantity string `json:"quantity" validate:"required"`
	Supplier string `json:"supplier,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// InventoryInput adds or replaces a stock record
type InventoryInput struct {
	SpecInput
	Name     string `json:"name,omitempty"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
	Supplier string `json:"supplier,omitempty"`
}

type LockInput struct {
	Quantity int64 `json:"quantity" validate:"gt=0"`
}

type AdvanceInput struct {
	Status string `json:"status" validate:"omitempty,oneof=backlog pending ordered delivered"`
}
