package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultOrderColor is assumed for glass orders raised without a colour
	DefaultOrderColor = "Clear"
	// DefaultHardwareItemType names hardware received without an item type
	DefaultHardwareItemType = "Hardware Item"
)

// MaterialSpec is the category-specific identity of a material.
//
// Matches is the demand-side relation: it reports whether candidate (a stock
// record or another requirement) satisfies the need described by the
// receiver. SameOrder is the identity used to link a requirement to its
// order, and SameStock is the identity used when a delivery is booked into
// inventory.
type MaterialSpec interface {
	Category() Category
	Complete() bool
	Matches(candidate MaterialSpec) bool
	SameOrder(other MaterialSpec) bool
	SameStock(other MaterialSpec) bool
	Label() string
}

// Dimension is a measurement in decimal inches, kept as entered
type Dimension string

// IsZero reports whether no value was entered
func (d Dimension) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Normalized returns the canonical numeric string ("36.0" and "36" compare equal).
// Values that are not numbers are returned trimmed.
func (d Dimension) Normalized() string {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return ""
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return v.String()
}

// Decimal returns the numeric value, zero when unparseable
func (d Dimension) Decimal() decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(string(d)))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// Valid reports whether the dimension is a positive number
func (d Dimension) Valid() bool {
	v, err := decimal.NewFromString(strings.TrimSpace(string(d)))
	return err == nil && v.IsPositive()
}

// Equal compares two entered dimensions numerically. Only valid dimensions
// are ever equal, so "abc" never matches "abc".
func (d Dimension) Equal(other Dimension) bool {
	if !d.Valid() || !other.Valid() {
		return false
	}
	return d.Normalized() == other.Normalized()
}

// GlassSpec identifies cut glass stock
type GlassSpec struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Color  string    `json:"color,omitempty"`
	Type   string    `json:"type,omitempty"`
}

// Category implements MaterialSpec
func (g GlassSpec) Category() Category { return CategoryGlass }

// Complete reports whether both dimensions are present and numeric
func (g GlassSpec) Complete() bool {
	return g.Width.Valid() && g.Height.Valid()
}

// AnyColor reports whether the spec accepts any colour
func (g GlassSpec) AnyColor() bool {
	c := strings.TrimSpace(g.Color)
	return c == "" || strings.EqualFold(c, "any")
}

// Matches requires exact dimensions; colour only constrains when set
func (g GlassSpec) Matches(candidate MaterialSpec) bool {
	other, ok := candidate.(GlassSpec)
	if !ok || !g.Complete() {
		return false
	}
	if !g.Width.Equal(other.Width) || !g.Height.Equal(other.Height) {
		return false
	}
	return g.AnyColor() || g.Color == other.Color
}

// OrderColor returns the colour an order for this spec carries
func (g GlassSpec) OrderColor() string {
	if g.AnyColor() {
		return DefaultOrderColor
	}
	return g.Color
}

// SameOrder compares dimensions and colour, defaulting colour to Clear
func (g GlassSpec) SameOrder(other MaterialSpec) bool {
	o, ok := other.(GlassSpec)
	if !ok {
		return false
	}
	return g.Width.Equal(o.Width) && g.Height.Equal(o.Height) && g.OrderColor() == o.OrderColor()
}

// SameStock compares dimensions, type and colour exactly
func (g GlassSpec) SameStock(other MaterialSpec) bool {
	o, ok := other.(GlassSpec)
	if !ok {
		return false
	}
	return g.Width.Equal(o.Width) && g.Height.Equal(o.Height) &&
		g.Type == o.Type && g.Color == o.Color
}

// Label returns the dimension label, e.g. 36" × 48"
func (g GlassSpec) Label() string {
	if !g.Complete() {
		return ""
	}
	return fmt.Sprintf("%s\" × %s\"", strings.TrimSpace(string(g.Width)), strings.TrimSpace(string(g.Height)))
}

// Area returns width×height/144 in square feet, two decimals
func (g GlassSpec) Area() string {
	if !g.Complete() {
		return "0.00"
	}
	return g.Width.Decimal().Mul(g.Height.Decimal()).Div(decimal.NewFromInt(144)).StringFixed(2)
}

// HardwareSpec identifies a hardware item by its free-text type
type HardwareSpec struct {
	ItemType string `json:"item_type"`
}

// Category implements MaterialSpec
func (h HardwareSpec) Category() Category { return CategoryHardware }

// Complete reports whether an item type was entered
func (h HardwareSpec) Complete() bool {
	return strings.TrimSpace(h.ItemType) != ""
}

// Matches is a case-insensitive substring test of the receiver's type in the candidate's
func (h HardwareSpec) Matches(candidate MaterialSpec) bool {
	other, ok := candidate.(HardwareSpec)
	if !ok || !h.Complete() {
		return false
	}
	return strings.Contains(strings.ToLower(other.ItemType), strings.ToLower(strings.TrimSpace(h.ItemType)))
}

// SameOrder compares item types exactly
func (h HardwareSpec) SameOrder(other MaterialSpec) bool {
	o, ok := other.(HardwareSpec)
	return ok && h.ItemType == o.ItemType
}

// StockItemType returns the item type used on inventory records
func (h HardwareSpec) StockItemType() string {
	if !h.Complete() {
		return DefaultHardwareItemType
	}
	return h.ItemType
}

// SameStock compares item types, defaulting an empty type
func (h HardwareSpec) SameStock(other MaterialSpec) bool {
	o, ok := other.(HardwareSpec)
	return ok && h.StockItemType() == o.StockItemType()
}

// Label returns the item type
func (h HardwareSpec) Label() string {
	return h.ItemType
}

// ItemName builds the order line label shown on the board
func ItemName(spec MaterialSpec) string {
	switch s := spec.(type) {
	case GlassSpec:
		name := s.Label() + " Glass"
		if !s.AnyColor() {
			name += fmt.Sprintf(" (%s)", s.Color)
		}
		return name
	case HardwareSpec:
		return s.ItemType
	}
	return ""
}
