package orders

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
	"github.com/arashoo/Katena-project-management/pkg/domain/services"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/events"
)

// Recorder receives order and delivery activity for metrics
type Recorder interface {
	OrderCreated()
	OrderTransitioned(to entities.OrderStatus)
	OrderDeleted()
	SetOrderCounts(counts map[entities.OrderStatus]int)
	DeliveryReceived(category entities.Category, quantity entities.Quantity, created bool)
}

type noopRecorder struct{}

func (noopRecorder) OrderCreated()                                               {}
func (noopRecorder) OrderTransitioned(entities.OrderStatus)                      {}
func (noopRecorder) OrderDeleted()                                               {}
func (noopRecorder) SetOrderCounts(map[entities.OrderStatus]int)                 {}
func (noopRecorder) DeliveryReceived(entities.Category, entities.Quantity, bool) {}

// Manager runs the order pipeline backlog -> pending -> ordered -> delivered.
// It is not safe for concurrent use; callers serialize access.
type Manager struct {
	orders    repositories.OrderRepository
	projects  repositories.ProjectRepository
	inventory repositories.InventoryRepository

	logger   *zap.Logger
	events   events.EventStore
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

// Option configures a Manager
type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func WithEventStore(store events.EventStore) Option {
	return func(m *Manager) { m.events = store }
}

func WithRecorder(recorder Recorder) Option {
	return func(m *Manager) { m.recorder = recorder }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// NewManager creates an order manager over the shared repositories
func NewManager(
	orders repositories.OrderRepository,
	projects repositories.ProjectRepository,
	inventory repositories.InventoryRepository,
	opts ...Option,
) *Manager {
	m := &Manager{
		orders:    orders,
		projects:  projects,
		inventory: inventory,
		logger:    zap.NewNop(),
		recorder:  noopRecorder{},
		now:       time.Now,
		newID:     entities.NewID,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.recorder == nil {
		m.recorder = noopRecorder{}
	}
	return m
}

// CreateOrder raises a backlog order for the requirement's current shortage.
// The quantity is fixed at creation and never recomputed.
func (m *Manager) CreateOrder(ctx context.Context, projectID, requirementID string) (*entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := m.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	req, ok := project.Requirement(requirementID)
	if !ok {
		return nil, fmt.Errorf("%w: requirement %s in project %s", entities.ErrNotFound, requirementID, projectID)
	}

	if existing, found, err := m.findOrder(projectID, req.Spec); err != nil {
		return nil, err
	} else if found {
		return nil, fmt.Errorf("%w: order %s already covers requirement %s (%s)",
			entities.ErrAlreadyExists, existing.ID, requirementID, existing.Status)
	}

	inventory, err := m.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	projects, err := m.projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	availability := services.CheckAvailability(*req, inventory, projects, projectID)
	if availability.Shortage <= 0 {
		m.logger.Info("order refused, requirement is covered",
			zap.String("project_id", projectID),
			zap.String("requirement_id", requirementID),
		)
		return nil, fmt.Errorf("%w: requirement %s has no shortage", entities.ErrValidation, requirementID)
	}

	order, err := entities.NewOrder(m.newID(), project.ID, project.Name, req.Spec, availability.Shortage, m.now())
	if err != nil {
		return nil, err
	}
	order.Supplier = req.Supplier
	if err := m.orders.Add(*order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	m.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("project_id", project.ID),
		zap.String("item", order.ItemName),
		zap.Int64("quantity", int64(order.Quantity)),
	)
	m.publish(events.OrderStream(order.ID), events.OrderCreatedEvent,
		events.OrderCreated{Order: *order, RequirementID: requirementID})
	m.recorder.OrderCreated()
	m.refreshCounts()
	return order, nil
}

// Advance moves an order to the target status. Entering delivered books the
// order quantity into inventory exactly once, before the order is updated.
func (m *Manager) Advance(ctx context.Context, orderID string, to entities.OrderStatus) (*entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current, err := m.orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	next, err := current.TransitionTo(to, m.now())
	if err != nil {
		m.logger.Warn("order transition refused",
			zap.String("order_id", orderID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(to)),
		)
		return nil, err
	}

	if next.Status == entities.OrderDelivered {
		if err := m.receive(next); err != nil {
			return nil, err
		}
	}

	if err := m.orders.Update(next); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	m.logger.Info("order advanced",
		zap.String("order_id", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next.Status)),
	)
	m.publish(events.OrderStream(orderID), events.OrderAdvancedEvent,
		events.OrderAdvanced{OrderID: orderID, From: current.Status, To: next.Status})
	m.recorder.OrderTransitioned(next.Status)
	m.refreshCounts()
	return &next, nil
}

// AdvanceNext moves an order one stage forward
func (m *Manager) AdvanceNext(ctx context.Context, orderID string) (*entities.Order, error) {
	current, err := m.orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	next, ok := current.Status.Next()
	if !ok {
		return nil, &entities.TransitionError{OrderID: orderID, From: current.Status}
	}
	return m.Advance(ctx, orderID, next)
}

// Delete removes an order from any status without touching inventory
func (m *Manager) Delete(ctx context.Context, orderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	order, err := m.orders.Get(orderID)
	if err != nil {
		return err
	}
	if err := m.orders.Delete(orderID); err != nil {
		return err
	}

	m.logger.Info("order deleted",
		zap.String("order_id", orderID),
		zap.String("status", string(order.Status)),
	)
	m.publish(events.OrderStream(orderID), events.OrderDeletedEvent, events.OrderDeleted{Order: *order})
	m.recorder.OrderDeleted()
	m.refreshCounts()
	return nil
}

// StatusFor returns the badge status of the order covering a requirement,
// scanning statuses in pipeline order. ok is false when no order exists.
func (m *Manager) StatusFor(projectID string, spec entities.MaterialSpec) (entities.OrderStatus, bool, error) {
	order, found, err := m.findOrder(projectID, spec)
	if err != nil || !found {
		return "", false, err
	}
	return order.Status, true, nil
}

// Board groups orders by status in pipeline order
func (m *Manager) Board() (*Board, error) {
	all, err := m.orders.List()
	if err != nil {
		return nil, err
	}
	return NewBoard(all), nil
}

func (m *Manager) findOrder(projectID string, spec entities.MaterialSpec) (entities.Order, bool, error) {
	for _, status := range entities.OrderStatuses {
		bucket, err := m.orders.ByStatus(status)
		if err != nil {
			return entities.Order{}, false, err
		}
		for _, order := range bucket {
			if order.IsFor(projectID, spec) {
				return order, true, nil
			}
		}
	}
	return entities.Order{}, false, nil
}

func (m *Manager) receive(order entities.Order) error {
	item, created, err := m.inventory.ReceiveDelivery(order.Spec, order.Quantity, order.Supplier)
	if err != nil {
		return fmt.Errorf("failed to receive delivery for order %s: %w", order.ID, err)
	}

	total := m.inventory.TotalFor(order.Spec)
	m.logger.Info("delivery received",
		zap.String("order_id", order.ID),
		zap.String("inventory_id", item.ID),
		zap.String("category", string(item.Category())),
		zap.Int64("quantity", int64(order.Quantity)),
		zap.Bool("created", created),
		zap.String("on_hand", item.Quantity),
		zap.Int64("stock_total", int64(total)),
	)
	m.publish(events.InventoryStream(item.Category()), events.InventoryReceivedEvent, events.InventoryReceived{
		OrderID:    order.ID,
		Item:       *item,
		Quantity:   order.Quantity,
		Created:    created,
		StockTotal: total,
	})
	m.recorder.DeliveryReceived(item.Category(), order.Quantity, created)
	return nil
}

func (m *Manager) refreshCounts() {
	all, err := m.orders.List()
	if err != nil {
		return
	}
	m.recorder.SetOrderCounts(NewBoard(all).Counts())
}

func (m *Manager) publish(stream, eventType string, data any) {
	if m.events == nil {
		return
	}
	if err := m.events.AppendEvent(stream, events.NewEvent(eventType, stream, data, m.now())); err != nil {
		m.logger.Warn("failed to publish event", zap.String("event_type", eventType), zap.Error(err))
	}
}
