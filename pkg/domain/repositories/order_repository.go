package repositories

import "github.com/arashoo/Katena-project-management/pkg/domain/entities"

// OrderRepository provides access to purchase orders
type OrderRepository interface {
	Add(order entities.Order) error
	Get(id string) (*entities.Order, error)
	Update(order entities.Order) error
	Delete(id string) error
	List() ([]entities.Order, error)
	ByStatus(status entities.OrderStatus) ([]entities.Order, error)
}
