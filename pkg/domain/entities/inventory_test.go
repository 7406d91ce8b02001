package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewInventoryItem_DerivedFields(t *testing.T) {
	now := time.Now()

	glass, err := NewInventoryItem("G1", GlassSpec{Width: "36", Height: "48", Color: "Clear"}, "", 5, "Acme", now)
	if err != nil {
		t.Fatalf("Expected valid glass item: %v", err)
	}
	if glass.Area != "12.00" {
		t.Errorf("Expected area 12.00, got %s", glass.Area)
	}
	if glass.Quantity != "5" {
		t.Errorf("Expected quantity stored as '5', got '%s'", glass.Quantity)
	}
	if glass.Name != "36\" × 48\"" {
		t.Errorf("Expected dimension label as name, got %s", glass.Name)
	}

	hardware, err := NewInventoryItem("H1", HardwareSpec{ItemType: "Door Handle"}, "", 15, "", now)
	if err != nil {
		t.Fatalf("Expected valid hardware item: %v", err)
	}
	if hardware.Name != "Door Handle" || hardware.Area != "" {
		t.Errorf("Unexpected hardware item %+v", hardware)
	}

	_, err = NewInventoryItem("H2", HardwareSpec{ItemType: "Hinge"}, "", -1, "", now)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for negative quantity, got %v", err)
	}
}

func TestLowStockThresholds_IsLow(t *testing.T) {
	thresholds := DefaultLowStockThresholds()

	testCases := []struct {
		name     string
		item     InventoryItem
		expected bool
	}{
		{"glass under", InventoryItem{Spec: GlassSpec{Width: "1", Height: "1"}, Quantity: "4"}, true},
		{"glass at limit", InventoryItem{Spec: GlassSpec{Width: "1", Height: "1"}, Quantity: "5"}, false},
		{"hardware under", InventoryItem{Spec: HardwareSpec{ItemType: "Lock"}, Quantity: "8"}, true},
		{"hardware at limit", InventoryItem{Spec: HardwareSpec{ItemType: "Lock"}, Quantity: "10"}, false},
		{"unparseable counts as zero", InventoryItem{Spec: HardwareSpec{ItemType: "Lock"}, Quantity: "n/a"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := thresholds.IsLow(tc.item); got != tc.expected {
				t.Errorf("Expected %t, got %t", tc.expected, got)
			}
		})
	}
}
