package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the stage of a purchase order
type OrderStatus string

const (
	OrderBacklog   OrderStatus = "backlog"
	OrderPending   OrderStatus = "pending"
	OrderOrdered   OrderStatus = "ordered"
	OrderDelivered OrderStatus = "delivered"
)

// OrderStatuses lists statuses in pipeline order, which is also the badge priority
var OrderStatuses = []OrderStatus{OrderBacklog, OrderPending, OrderOrdered, OrderDelivered}

// IsValid checks if the status is known
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderBacklog, OrderPending, OrderOrdered, OrderDelivered:
		return true
	}
	return false
}

// String method for OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Next returns the single forward stage, false for delivered
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderBacklog:
		return OrderPending, true
	case OrderPending:
		return OrderOrdered, true
	case OrderOrdered:
		return OrderDelivered, true
	}
	return "", false
}

// CanTransitionTo checks the legal transition table
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

// IsTerminal reports whether no further transition exists
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered
}

// Order is a purchase order raised to cover a requirement shortage
type Order struct {
	ID          string
	ProjectID   string
	ProjectName string
	Spec        MaterialSpec
	Quantity    Quantity
	Status      OrderStatus
	ItemName    string
	Supplier    string
	UnitCost    decimal.Decimal
	Urgency     string
	DateCreated time.Time
	UpdatedAt   time.Time
}

// NewOrder creates a validated Order in the backlog
func NewOrder(id, projectID, projectName string, spec MaterialSpec, quantity Quantity, createdAt time.Time) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: order id cannot be empty", ErrValidation)
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id cannot be empty", ErrValidation)
	}
	if spec == nil || !spec.Complete() {
		return nil, fmt.Errorf("%w: order spec is incomplete", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
	}

	name := ItemName(spec)
	if g, ok := spec.(GlassSpec); ok {
		g.Color = g.OrderColor()
		spec = g
	}

	return &Order{
		ID:          id,
		ProjectID:   projectID,
		ProjectName: projectName,
		Spec:        spec,
		Quantity:    quantity,
		Status:      OrderBacklog,
		ItemName:    name,
		UnitCost:    decimal.Zero,
		Urgency:     "normal",
		DateCreated: createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// TransitionTo returns a copy of the order in the target status.
// Only single forward steps are legal.
func (o Order) TransitionTo(target OrderStatus, at time.Time) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return o, &TransitionError{OrderID: o.ID, From: o.Status, To: target}
	}
	o.Status = target
	o.UpdatedAt = at
	return o, nil
}

// Category returns the spec category
func (o Order) Category() Category {
	if o.Spec == nil {
		return ""
	}
	return o.Spec.Category()
}

// IsFor reports whether the order covers the given project's requirement spec
func (o Order) IsFor(projectID string, spec MaterialSpec) bool {
	if o.ProjectID != projectID || o.Spec == nil || spec == nil {
		return false
	}
	return o.Category() == spec.Category() && spec.SameOrder(o.Spec)
}
