package entities

import (
	"fmt"
	"time"
)

// InventoryItem is a stock record. Several records may share a spec.
type InventoryItem struct {
	ID       string
	Spec     MaterialSpec
	Name     string
	Quantity string
	Supplier string
	// Area is the glass sheet area in square feet, empty for hardware.
	Area      string
	DateAdded time.Time
}

// NewInventoryItem creates a validated InventoryItem with its derived fields
func NewInventoryItem(id string, spec MaterialSpec, name string, quantity Quantity, supplier string, dateAdded time.Time) (*InventoryItem, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: inventory id cannot be empty", ErrValidation)
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: inventory spec cannot be empty", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative, got %d", ErrValidation, quantity)
	}

	item := &InventoryItem{
		ID:        id,
		Spec:      spec,
		Name:      name,
		Quantity:  quantity.String(),
		Supplier:  supplier,
		DateAdded: dateAdded,
	}
	switch s := spec.(type) {
	case GlassSpec:
		item.Area = s.Area()
		if item.Name == "" {
			item.Name = s.Label()
		}
	case HardwareSpec:
		if item.Name == "" {
			item.Name = s.ItemType
		}
	}
	return item, nil
}

// Qty returns the parsed on-hand quantity
func (i InventoryItem) Qty() Quantity {
	return ParseQuantity(i.Quantity)
}

// Category returns the spec category
func (i InventoryItem) Category() Category {
	if i.Spec == nil {
		return ""
	}
	return i.Spec.Category()
}

// LowStockThresholds holds the per-category reorder warning levels
type LowStockThresholds map[Category]Quantity

// DefaultLowStockThresholds mirrors the shop's inventory screens
func DefaultLowStockThresholds() LowStockThresholds {
	return LowStockThresholds{
		CategoryGlass:    5,
		CategoryHardware: 10,
	}
}

// IsLow reports whether the item is under its category threshold
func (t LowStockThresholds) IsLow(item InventoryItem) bool {
	limit, ok := t[item.Category()]
	return ok && item.Qty() < limit
}
