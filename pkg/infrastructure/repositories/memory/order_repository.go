package memory

import (
	"fmt"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage.
// All orders live in one collection; status is a field on each.
type OrderRepository struct {
	orders []entities.Order
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: []entities.Order{},
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// Add stores a new order
func (r *OrderRepository) Add(order entities.Order) error {
	if order.ID == "" {
		return fmt.Errorf("%w: order id cannot be empty", entities.ErrValidation)
	}
	if r.indexOf(order.ID) >= 0 {
		return fmt.Errorf("%w: order %s", entities.ErrAlreadyExists, order.ID)
	}
	r.orders = append(r.orders, order)
	return nil
}

// Get returns a copy of the order
func (r *OrderRepository) Get(id string) (*entities.Order, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: order %s", entities.ErrNotFound, id)
	}
	order := r.orders[idx]
	return &order, nil
}

// Update replaces an existing order in place
func (r *OrderRepository) Update(order entities.Order) error {
	idx := r.indexOf(order.ID)
	if idx < 0 {
		return fmt.Errorf("%w: order %s", entities.ErrNotFound, order.ID)
	}
	r.orders[idx] = order
	return nil
}

// Delete removes an order
func (r *OrderRepository) Delete(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: order %s", entities.ErrNotFound, id)
	}
	r.orders = append(r.orders[:idx], r.orders[idx+1:]...)
	return nil
}

// List returns every order in creation order
func (r *OrderRepository) List() ([]entities.Order, error) {
	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// ByStatus returns the orders currently in one status
func (r *OrderRepository) ByStatus(status entities.OrderStatus) ([]entities.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", entities.ErrValidation, status)
	}
	var out []entities.Order
	for _, order := range r.orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *OrderRepository) indexOf(id string) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}
