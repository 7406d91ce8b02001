package entities

import (
	"errors"
	"testing"
	"time"
)

func TestDimension_Normalized(t *testing.T) {
	testCases := []struct {
		input    Dimension
		expected string
	}{
		{"36", "36"},
		{"36.0", "36"},
		{"36.50", "36.5"},
		{" 24.125 ", "24.125"},
		{"", ""},
		{"wide", "wide"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.input), func(t *testing.T) {
			if got := tc.input.Normalized(); got != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, got)
			}
		})
	}

	if Dimension("").Equal("") {
		t.Error("Expected empty dimensions never to be equal")
	}
}

func TestGlassSpec_Matches(t *testing.T) {
	demand := GlassSpec{Width: "36", Height: "48", Color: "Clear"}

	testCases := []struct {
		name      string
		demand    GlassSpec
		candidate MaterialSpec
		expected  bool
	}{
		{"exact", demand, GlassSpec{Width: "36", Height: "48", Color: "Clear", Type: "Tempered"}, true},
		{"normalized dimensions", demand, GlassSpec{Width: "36.0", Height: "48", Color: "Clear"}, true},
		{"wrong width", demand, GlassSpec{Width: "35", Height: "48", Color: "Clear"}, false},
		{"swapped dimensions", demand, GlassSpec{Width: "48", Height: "36", Color: "Clear"}, false},
		{"wrong colour", demand, GlassSpec{Width: "36", Height: "48", Color: "Bronze"}, false},
		{"any colour", GlassSpec{Width: "36", Height: "48"}, GlassSpec{Width: "36", Height: "48", Color: "Bronze"}, true},
		{"any keyword", GlassSpec{Width: "36", Height: "48", Color: "any"}, GlassSpec{Width: "36", Height: "48", Color: "Gray"}, true},
		{"missing height", GlassSpec{Width: "36"}, GlassSpec{Width: "36", Height: "48"}, false},
		{"hardware candidate", demand, HardwareSpec{ItemType: "36"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.demand.Matches(tc.candidate); got != tc.expected {
				t.Errorf("Expected %t, got %t", tc.expected, got)
			}
		})
	}
}

func TestHardwareSpec_Matches(t *testing.T) {
	testCases := []struct {
		name      string
		demand    HardwareSpec
		candidate MaterialSpec
		expected  bool
	}{
		{"exact", HardwareSpec{ItemType: "Door Handle"}, HardwareSpec{ItemType: "Door Handle"}, true},
		{"case insensitive", HardwareSpec{ItemType: "door handle"}, HardwareSpec{ItemType: "Door Handle"}, true},
		{"substring", HardwareSpec{ItemType: "Handle"}, HardwareSpec{ItemType: "Door Handle"}, true},
		{"superstring", HardwareSpec{ItemType: "Door Handle Set"}, HardwareSpec{ItemType: "Door Handle"}, false},
		{"empty demand", HardwareSpec{}, HardwareSpec{ItemType: "Door Handle"}, false},
		{"glass candidate", HardwareSpec{ItemType: "Clear"}, GlassSpec{Width: "1", Height: "1", Color: "Clear"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.demand.Matches(tc.candidate); got != tc.expected {
				t.Errorf("Expected %t, got %t", tc.expected, got)
			}
		})
	}
}

func TestSpec_SameOrderAndSameStock(t *testing.T) {
	noColour := GlassSpec{Width: "36", Height: "48"}
	clear := GlassSpec{Width: "36", Height: "48", Color: "Clear"}
	if !noColour.SameOrder(clear) {
		t.Error("Expected missing colour to default to Clear for order identity")
	}
	if noColour.SameStock(clear) {
		t.Error("Expected stock identity to compare colour exactly")
	}
	if clear.SameStock(GlassSpec{Width: "36", Height: "48", Color: "Clear", Type: "Tempered"}) {
		t.Error("Expected stock identity to compare type")
	}

	if !(HardwareSpec{}).SameStock(HardwareSpec{ItemType: DefaultHardwareItemType}) {
		t.Error("Expected empty item type to default for stock identity")
	}
	if (HardwareSpec{ItemType: "Handle"}).SameOrder(HardwareSpec{ItemType: "Door Handle"}) {
		t.Error("Expected order identity to require exact item type")
	}
}

func TestGlassSpec_LabelAndArea(t *testing.T) {
	g := GlassSpec{Width: "36", Height: "48"}
	if g.Label() != "36\" × 48\"" {
		t.Errorf("Unexpected label %s", g.Label())
	}
	if g.Area() != "12.00" {
		t.Errorf("Expected area 12.00, got %s", g.Area())
	}
	if (GlassSpec{Width: "24.5", Height: "36.25"}).Area() != "6.17" {
		t.Errorf("Expected area 6.17, got %s", (GlassSpec{Width: "24.5", Height: "36.25"}).Area())
	}
	if (GlassSpec{Width: "24"}).Area() != "0.00" {
		t.Error("Expected zero area for incomplete spec")
	}
}

func TestItemName(t *testing.T) {
	if got := ItemName(GlassSpec{Width: "36", Height: "48", Color: "Bronze"}); got != "36\" × 48\" Glass (Bronze)" {
		t.Errorf("Unexpected glass item name %s", got)
	}
	if got := ItemName(GlassSpec{Width: "36", Height: "48"}); got != "36\" × 48\" Glass" {
		t.Errorf("Unexpected glass item name %s", got)
	}
	if got := ItemName(HardwareSpec{ItemType: "Sliding Track"}); got != "Sliding Track" {
		t.Errorf("Unexpected hardware item name %s", got)
	}
}

func TestDimension_Valid(t *testing.T) {
	testCases := []struct {
		input    Dimension
		expected bool
	}{
		{"36", true},
		{" 24.125 ", true},
		{"", false},
		{"abc", false},
		{"0", false},
		{"-12", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.input), func(t *testing.T) {
			if got := tc.input.Valid(); got != tc.expected {
				t.Errorf("Expected Valid(%q) = %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestGlassSpec_NonNumericDimensions(t *testing.T) {
	spec := GlassSpec{Width: "abc", Height: "48"}

	if spec.Complete() {
		t.Error("Expected a non-numeric width to leave the spec incomplete")
	}
	if spec.Matches(GlassSpec{Width: "abc", Height: "48"}) {
		t.Error("Expected non-numeric widths never to match")
	}
	if Dimension("abc").Equal("abc") {
		t.Error("Expected non-numeric dimensions never to be equal")
	}
	if _, err := NewRequirement("R1", spec, "10", time.Now()); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}
