package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quantity represents an integer quantity value for discrete shop units
type Quantity int64

// String renders the quantity the way it is stored on records
func (q Quantity) String() string {
	return strconv.FormatInt(int64(q), 10)
}

// ParseQuantity converts a stored quantity string to a Quantity.
// Decimal input is truncated to its integer part; anything unparseable is 0.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Quantity(n)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return Quantity(d.IntPart())
}

// Category represents the material family a record belongs to
type Category string

const (
	CategoryGlass    Category = "glass"
	CategoryHardware Category = "hardware"
)

// Categories lists every known category in display order
var Categories = []Category{CategoryGlass, CategoryHardware}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryGlass, CategoryHardware:
		return true
	}
	return false
}

// String method for Category
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts user input to a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
	return c, nil
}

// NewID returns a fresh record identifier
func NewID() string {
	return uuid.NewString()
}
