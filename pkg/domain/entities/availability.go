package entities

// AvailabilityResult represents the outcome of matching a requirement against stock
type AvailabilityResult struct {
	InStock     Quantity
	Allocated   Quantity
	Available   Quantity
	Needed      Quantity
	Shortage    Quantity
	Sufficient  bool
	CanAllocate bool
	// Locked is the advisory manual lock recorded on the requirement
	Locked  Quantity
	Matched []InventoryItem
}

// RequirementSummary counts a project's requirements by sufficiency
type RequirementSummary struct {
	Total       int
	Sufficient  int
	NeedToOrder int
}
