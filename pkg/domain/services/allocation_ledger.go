package services

import (
	"fmt"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// Claim is the quantity one requirement holds against stock of its spec.
// Locked is the part of the claim a shop user pinned manually; it is
// informational and never counted on top of Quantity.
type Claim struct {
	ProjectID     string
	RequirementID string
	Spec          entities.MaterialSpec
	Quantity      entities.Quantity
	Locked        entities.Quantity
}

// AllocationLedger is the single record of claimed quantity per requirement
type AllocationLedger struct {
	claims []Claim
}

// NewAllocationLedger creates a new empty ledger
func NewAllocationLedger() *AllocationLedger {
	return &AllocationLedger{}
}

// NewAllocationLedgerFromProjects builds the ledger from every project's Requirements step
func NewAllocationLedgerFromProjects(projects []entities.Project) *AllocationLedger {
	ledger := NewAllocationLedger()
	for i := range projects {
		for _, req := range projects[i].Requirements() {
			ledger.Add(Claim{
				ProjectID:     projects[i].ID,
				RequirementID: req.ID,
				Spec:          req.Spec,
				Quantity:      req.Needed(),
				Locked:        req.AllocatedQuantity,
			})
		}
	}
	return ledger
}

// Add records a claim. Negative quantities are stored as zero.
func (l *AllocationLedger) Add(claim Claim) {
	if claim.Quantity < 0 {
		claim.Quantity = 0
	}
	if claim.Locked < 0 {
		claim.Locked = 0
	}
	l.claims = append(l.claims, claim)
}

// ClaimedBy sums the claims matching spec held by projects other than excludeProjectID
func (l *AllocationLedger) ClaimedBy(spec entities.MaterialSpec, excludeProjectID string) entities.Quantity {
	if spec == nil {
		return 0
	}
	var total entities.Quantity
	for _, claim := range l.claims {
		if claim.ProjectID == excludeProjectID || claim.Spec == nil {
			continue
		}
		if spec.Matches(claim.Spec) {
			total += claim.Quantity
		}
	}
	return total
}

// Claims returns the claims held by a project
func (l *AllocationLedger) Claims(projectID string) []Claim {
	var claims []Claim
	for _, claim := range l.claims {
		if claim.ProjectID == projectID {
			claims = append(claims, claim)
		}
	}
	return claims
}

// Size returns the number of claims recorded
func (l *AllocationLedger) Size() int {
	return len(l.claims)
}

// GetTotalClaimed returns the claimed quantity across all claims
func (l *AllocationLedger) GetTotalClaimed() entities.Quantity {
	var total entities.Quantity
	for _, claim := range l.claims {
		total += claim.Quantity
	}
	return total
}

// GetTotalLocked returns the manually locked quantity across all claims
func (l *AllocationLedger) GetTotalLocked() entities.Quantity {
	var total entities.Quantity
	for _, claim := range l.claims {
		total += claim.Locked
	}
	return total
}

// String returns a string representation of the ledger for debugging
func (l *AllocationLedger) String() string {
	if len(l.claims) == 0 {
		return "AllocationLedger{empty}"
	}

	result := fmt.Sprintf("AllocationLedger{%d claims:\n", len(l.claims))
	for _, claim := range l.claims {
		label := ""
		if claim.Spec != nil {
			label = fmt.Sprintf("%s %s", claim.Spec.Category(), claim.Spec.Label())
		}
		result += fmt.Sprintf(
			"  %s/%s: %s claimed=%d, locked=%d\n",
			claim.ProjectID,
			claim.RequirementID,
			label,
			claim.Quantity,
			claim.Locked,
		)
	}
	result += "}"
	return result
}
