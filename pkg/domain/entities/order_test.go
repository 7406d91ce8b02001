package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewOrder_Validation(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	glass := GlassSpec{Width: "36", Height: "48"}

	order, err := NewOrder("ORD1", "P1", "Sample Project", glass, 5, created)
	if err != nil {
		t.Fatalf("Expected valid order creation to succeed: %v", err)
	}
	if order.Status != OrderBacklog {
		t.Errorf("Expected backlog status, got %s", order.Status)
	}
	if order.Spec.(GlassSpec).Color != DefaultOrderColor {
		t.Errorf("Expected colour to default to %s, got %s", DefaultOrderColor, order.Spec.(GlassSpec).Color)
	}
	if order.ItemName != "36\" × 48\" Glass" {
		t.Errorf("Unexpected item name %s", order.ItemName)
	}

	testCases := []struct {
		name      string
		id        string
		projectID string
		spec      MaterialSpec
		quantity  Quantity
	}{
		{"empty id", "", "P1", glass, 5},
		{"empty project", "ORD1", "", glass, 5},
		{"nil spec", "ORD1", "P1", nil, 5},
		{"incomplete spec", "ORD1", "P1", GlassSpec{Width: "36"}, 5},
		{"zero quantity", "ORD1", "P1", glass, 0},
		{"negative quantity", "ORD1", "P1", glass, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(tc.id, tc.projectID, "X", tc.spec, tc.quantity, created)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{OrderBacklog, OrderPending, true},
		{OrderPending, OrderOrdered, true},
		{OrderOrdered, OrderDelivered, true},
		{OrderBacklog, OrderOrdered, false},
		{OrderBacklog, OrderDelivered, false},
		{OrderPending, OrderBacklog, false},
		{OrderPending, OrderDelivered, false},
		{OrderDelivered, OrderDelivered, false},
		{OrderDelivered, OrderBacklog, false},
		{OrderBacklog, OrderBacklog, false},
		{OrderBacklog, OrderStatus("cancelled"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.expected {
				t.Errorf("Expected %t, got %t", tc.expected, got)
			}
		})
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	order, err := NewOrder("ORD1", "P1", "Sample", HardwareSpec{ItemType: "Hinge"}, 3, created)
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	later := created.Add(time.Hour)
	moved, err := order.TransitionTo(OrderPending, later)
	if err != nil {
		t.Fatalf("Expected backlog -> pending to succeed: %v", err)
	}
	if moved.Status != OrderPending || !moved.UpdatedAt.Equal(later) {
		t.Errorf("Unexpected order after transition: %+v", moved)
	}
	if order.Status != OrderBacklog {
		t.Error("Expected original order to be unchanged")
	}

	_, err = moved.TransitionTo(OrderDelivered, later)
	if err == nil {
		t.Fatal("Expected pending -> delivered to fail")
	}
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Expected illegal transition error, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.From != OrderPending || te.To != OrderDelivered {
		t.Errorf("Expected transition error details, got %v", err)
	}
	if CodeOf(err) != "ILLEGAL_TRANSITION" {
		t.Errorf("Expected ILLEGAL_TRANSITION code, got %s", CodeOf(err))
	}
}

func TestOrder_IsFor(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	order, _ := NewOrder("ORD1", "P1", "Sample", GlassSpec{Width: "36", Height: "48"}, 5, created)

	if !order.IsFor("P1", GlassSpec{Width: "36", Height: "48"}) {
		t.Error("Expected order to match requirement without colour")
	}
	if !order.IsFor("P1", GlassSpec{Width: "36.0", Height: "48", Color: "Clear"}) {
		t.Error("Expected order to match Clear requirement")
	}
	if order.IsFor("P2", GlassSpec{Width: "36", Height: "48"}) {
		t.Error("Expected order not to match another project")
	}
	if order.IsFor("P1", HardwareSpec{ItemType: "36"}) {
		t.Error("Expected order not to match another category")
	}
}
