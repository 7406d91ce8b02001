package services

import (
	"fmt"
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// MatchInventory returns the stock records that satisfy spec
func MatchInventory(spec entities.MaterialSpec, inventory []entities.InventoryItem) []entities.InventoryItem {
	if spec == nil || !spec.Complete() {
		return nil
	}
	var matched []entities.InventoryItem
	for _, item := range inventory {
		if item.Spec != nil && spec.Matches(item.Spec) {
			matched = append(matched, item)
		}
	}
	return matched
}

// CheckAvailability matches a requirement against on-hand stock, net of what
// other projects' requirements already claim. It only reads its inputs.
func CheckAvailability(
	requirement entities.Requirement,
	inventory []entities.InventoryItem,
	projects []entities.Project,
	ownerProjectID string,
) entities.AvailabilityResult {
	needed := requirement.Needed()
	result := entities.AvailabilityResult{
		Needed: needed,
		Locked: requirement.AllocatedQuantity,
	}

	// Without a complete spec nothing can match, so the whole need is short.
	if requirement.Spec == nil || !requirement.Spec.Complete() {
		result.Shortage = max(0, needed)
		return result
	}

	result.Matched = MatchInventory(requirement.Spec, inventory)
	for _, item := range result.Matched {
		result.InStock += item.Qty()
	}

	ledger := NewAllocationLedgerFromProjects(projects)
	result.Allocated = ledger.ClaimedBy(requirement.Spec, ownerProjectID)

	result.Available = max(0, result.InStock-result.Allocated)
	result.Sufficient = result.Available >= needed
	result.Shortage = max(0, needed-result.Available)
	result.CanAllocate = result.Available > 0 && needed > 0
	return result
}

// SummarizeRequirements counts a project's requirements by sufficiency
func SummarizeRequirements(
	project entities.Project,
	inventory []entities.InventoryItem,
	projects []entities.Project,
) entities.RequirementSummary {
	var summary entities.RequirementSummary
	for _, req := range project.Requirements() {
		summary.Total++
		if CheckAvailability(req, inventory, projects, project.ID).Sufficient {
			summary.Sufficient++
		} else {
			summary.NeedToOrder++
		}
	}
	return summary
}

// LockAllocation records a manual lock of quantity on the requirement.
// The lock is bookkeeping only: stock is not decremented and the lock is
// not subtracted from availability a second time.
func LockAllocation(
	requirement *entities.Requirement,
	availability entities.AvailabilityResult,
	quantity entities.Quantity,
	at time.Time,
) error {
	if !availability.CanAllocate {
		return fmt.Errorf("%w: nothing available to lock for requirement %s", entities.ErrInsufficientStock, requirement.ID)
	}
	limit := min(availability.Available, availability.Needed)
	if quantity <= 0 {
		return fmt.Errorf("%w: lock quantity must be positive, got %d", entities.ErrValidation, quantity)
	}
	if quantity > limit {
		return fmt.Errorf("%w: cannot lock %d, at most %d available", entities.ErrInsufficientStock, quantity, limit)
	}
	requirement.AllocatedQuantity = quantity
	requirement.AllocationDate = &at
	return nil
}

// ReleaseAllocation clears a manual lock
func ReleaseAllocation(requirement *entities.Requirement) {
	requirement.AllocatedQuantity = 0
	requirement.AllocationDate = nil
}
