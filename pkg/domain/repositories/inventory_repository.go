package repositories

import "github.com/arashoo/Katena-project-management/pkg/domain/entities"

// InventoryRepository provides access to category-partitioned stock records
type InventoryRepository interface {
	List(category entities.Category) ([]entities.InventoryItem, error)
	All() ([]entities.InventoryItem, error)
	Get(category entities.Category, id string) (*entities.InventoryItem, error)
	Add(item entities.InventoryItem) error
	Update(item entities.InventoryItem) error
	Delete(category entities.Category, id string) error
	LoadItems(items []*entities.InventoryItem) error

	// ReceiveDelivery books delivered stock: it increments the record whose
	// spec is identical, or creates one. created reports which happened.
	ReceiveDelivery(
		spec entities.MaterialSpec,
		quantity entities.Quantity,
		supplier string,
	) (item *entities.InventoryItem, created bool, err error)

	// LowStock returns the records under their category threshold
	LowStock(thresholds entities.LowStockThresholds) []entities.InventoryItem
	// TotalFor sums the records whose stock identity equals spec
	TotalFor(spec entities.MaterialSpec) entities.Quantity
}
