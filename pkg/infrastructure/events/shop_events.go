package events

import (
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

const (
	OrderCreatedEvent  = "order.created"
	OrderAdvancedEvent = "order.advanced"
	OrderDeletedEvent  = "order.deleted"

	InventoryReceivedEvent = "inventory.received"

	AllocationLockedEvent   = "allocation.locked"
	AllocationReleasedEvent = "allocation.released"
)

// AllEventTypes lists every event the shop emits
var AllEventTypes = []string{
	OrderCreatedEvent,
	OrderAdvancedEvent,
	OrderDeletedEvent,
	InventoryReceivedEvent,
	AllocationLockedEvent,
	AllocationReleasedEvent,
}

type OrderCreated struct {
	Order         entities.Order `json:"order"`
	RequirementID string         `json:"requirement_id"`
}

type OrderAdvanced struct {
	OrderID string               `json:"order_id"`
	From    entities.OrderStatus `json:"from"`
	To      entities.OrderStatus `json:"to"`
}

type OrderDeleted struct {
	Order entities.Order `json:"order"`
}

type InventoryReceived struct {
	OrderID  string                 `json:"order_id"`
	Item     entities.InventoryItem `json:"item"`
	Quantity entities.Quantity      `json:"quantity"`
	Created  bool                   `json:"created"`
	// StockTotal is the on-hand total of the delivered stock identity after booking
	StockTotal entities.Quantity `json:"stock_total"`
}

type AllocationLocked struct {
	ProjectID     string            `json:"project_id"`
	RequirementID string            `json:"requirement_id"`
	Quantity      entities.Quantity `json:"quantity"`
}

type AllocationReleased struct {
	ProjectID     string `json:"project_id"`
	RequirementID string `json:"requirement_id"`
}

// OrderStream names the stream holding one order's events
func OrderStream(orderID string) string {
	return "order-" + orderID
}

// InventoryStream names the stream holding one category's stock events
func InventoryStream(category entities.Category) string {
	return "inventory-" + string(category)
}

// ProjectStream names the stream holding one project's allocation events
func ProjectStream(projectID string) string {
	return "project-" + projectID
}
