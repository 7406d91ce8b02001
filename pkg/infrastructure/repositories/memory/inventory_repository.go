package memory

import (
	"fmt"
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory storage partitioned by category
type InventoryRepository struct {
	items map[entities.Category][]entities.InventoryItem
	now   func() time.Time
	newID func() string
}

// InventoryOption configures an InventoryRepository
type InventoryOption func(*InventoryRepository)

// WithInventoryClock sets the clock used to stamp delivered records
func WithInventoryClock(now func() time.Time) InventoryOption {
	return func(r *InventoryRepository) { r.now = now }
}

// WithInventoryIDs sets the id generator used for delivered records
func WithInventoryIDs(newID func() string) InventoryOption {
	return func(r *InventoryRepository) { r.newID = newID }
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository(opts ...InventoryOption) *InventoryRepository {
	r := &InventoryRepository{
		items: make(map[entities.Category][]entities.InventoryItem),
		now:   time.Now,
		newID: entities.NewID,
	}
	for _, category := range entities.Categories {
		r.items[category] = []entities.InventoryItem{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadItems loads stock records into the repository
func (r *InventoryRepository) LoadItems(items []*entities.InventoryItem) error {
	for _, item := range items {
		if err := r.Add(*item); err != nil {
			return err
		}
	}
	return nil
}

// List returns the records of one category in insertion order
func (r *InventoryRepository) List(category entities.Category) ([]entities.InventoryItem, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", entities.ErrValidation, category)
	}
	out := make([]entities.InventoryItem, len(r.items[category]))
	copy(out, r.items[category])
	return out, nil
}

// All returns every record, glass first
func (r *InventoryRepository) All() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	for _, category := range entities.Categories {
		out = append(out, r.items[category]...)
	}
	return out, nil
}

// Get returns a copy of the record with the given id
func (r *InventoryRepository) Get(category entities.Category, id string) (*entities.InventoryItem, error) {
	idx := r.indexOf(category, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: inventory item %s/%s", entities.ErrNotFound, category, id)
	}
	item := r.items[category][idx]
	return &item, nil
}

// Add stores a new record
func (r *InventoryRepository) Add(item entities.InventoryItem) error {
	category := item.Category()
	if !category.IsValid() {
		return fmt.Errorf("%w: inventory item %s has no category", entities.ErrValidation, item.ID)
	}
	if r.indexOf(category, item.ID) >= 0 {
		return fmt.Errorf("%w: inventory item %s/%s", entities.ErrAlreadyExists, category, item.ID)
	}
	r.items[category] = append(r.items[category], item)
	return nil
}

// Update replaces an existing record
func (r *InventoryRepository) Update(item entities.InventoryItem) error {
	category := item.Category()
	idx := r.indexOf(category, item.ID)
	if idx < 0 {
		return fmt.Errorf("%w: inventory item %s/%s", entities.ErrNotFound, category, item.ID)
	}
	r.items[category][idx] = item
	return nil
}

// Delete removes a record
func (r *InventoryRepository) Delete(category entities.Category, id string) error {
	idx := r.indexOf(category, id)
	if idx < 0 {
		return fmt.Errorf("%w: inventory item %s/%s", entities.ErrNotFound, category, id)
	}
	r.items[category] = append(r.items[category][:idx], r.items[category][idx+1:]...)
	return nil
}

// ReceiveDelivery increments the first record whose spec is identical to
// spec, or creates a new record holding the delivered quantity.
func (r *InventoryRepository) ReceiveDelivery(
	spec entities.MaterialSpec,
	quantity entities.Quantity,
	supplier string,
) (*entities.InventoryItem, bool, error) {
	if spec == nil {
		return nil, false, fmt.Errorf("%w: delivery without a spec", entities.ErrValidation)
	}
	if quantity < 0 {
		return nil, false, fmt.Errorf("%w: delivered quantity cannot be negative, got %d", entities.ErrValidation, quantity)
	}

	category := spec.Category()
	for i := range r.items[category] {
		existing := &r.items[category][i]
		if existing.Spec != nil && spec.SameStock(existing.Spec) {
			existing.Quantity = (existing.Qty() + quantity).String()
			item := *existing
			return &item, false, nil
		}
	}

	if hw, ok := spec.(entities.HardwareSpec); ok {
		spec = entities.HardwareSpec{ItemType: hw.StockItemType()}
	}
	item, err := entities.NewInventoryItem(r.newID(), spec, "", quantity, supplier, r.now())
	if err != nil {
		return nil, false, fmt.Errorf("failed to create delivered record: %w", err)
	}
	r.items[category] = append(r.items[category], *item)
	return item, true, nil
}

// LowStock returns the records under their category threshold
func (r *InventoryRepository) LowStock(thresholds entities.LowStockThresholds) []entities.InventoryItem {
	var low []entities.InventoryItem
	for _, category := range entities.Categories {
		for _, item := range r.items[category] {
			if thresholds.IsLow(item) {
				low = append(low, item)
			}
		}
	}
	return low
}

// TotalFor sums the on-hand quantity of records with a stock identity equal to spec
func (r *InventoryRepository) TotalFor(spec entities.MaterialSpec) entities.Quantity {
	var total entities.Quantity
	for _, item := range r.items[spec.Category()] {
		if item.Spec != nil && spec.SameStock(item.Spec) {
			total += item.Qty()
		}
	}
	return total
}

func (r *InventoryRepository) indexOf(category entities.Category, id string) int {
	for i, item := range r.items[category] {
		if item.ID == id {
			return i
		}
	}
	return -1
}
