package entities

import (
	"fmt"
	"time"
)

// Requirement is a project's stated need for a quantity of a material spec
type Requirement struct {
	ID       string
	Spec     MaterialSpec
	Quantity string
	Supplier string
	Notes    string

	// AllocatedQuantity and AllocationDate record a manual lock against stock.
	AllocatedQuantity Quantity
	AllocationDate    *time.Time

	DateAdded time.Time
}

// NewRequirement creates a validated Requirement
func NewRequirement(id string, spec MaterialSpec, quantity string, dateAdded time.Time) (*Requirement, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: requirement id cannot be empty", ErrValidation)
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: requirement spec cannot be empty", ErrValidation)
	}
	if !spec.Complete() {
		return nil, fmt.Errorf("%w: %s requirement spec is incomplete", ErrValidation, spec.Category())
	}
	if q := ParseQuantity(quantity); q <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %q", ErrValidation, quantity)
	}
	return &Requirement{
		ID:        id,
		Spec:      spec,
		Quantity:  quantity,
		DateAdded: dateAdded,
	}, nil
}

// Needed returns the parsed quantity
func (r Requirement) Needed() Quantity {
	return ParseQuantity(r.Quantity)
}

// Category returns the spec category, "" when no spec is set
func (r Requirement) Category() Category {
	if r.Spec == nil {
		return ""
	}
	return r.Spec.Category()
}

// IsLocked reports whether a manual allocation lock is recorded
func (r Requirement) IsLocked() bool {
	return r.AllocatedQuantity > 0
}

// Clone copies the requirement including the lock timestamp
func (r Requirement) Clone() Requirement {
	if r.AllocationDate != nil {
		at := *r.AllocationDate
		r.AllocationDate = &at
	}
	return r
}
