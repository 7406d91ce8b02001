package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

func TestAllocationLedger_BasicOperations(t *testing.T) {
	ledger := NewAllocationLedger()
	assert.Equal(t, 0, ledger.Size())
	assert.Equal(t, "AllocationLedger{empty}", ledger.String())

	ledger.Add(Claim{ProjectID: "a", RequirementID: "r1", Spec: glass("36", "48", "Clear"), Quantity: 5, Locked: 2})
	ledger.Add(Claim{ProjectID: "b", RequirementID: "r2", Spec: glass("36", "48", "Clear"), Quantity: -3})
	ledger.Add(Claim{ProjectID: "b", RequirementID: "r3", Spec: entities.HardwareSpec{ItemType: "Door Handle"}, Quantity: 4})

	assert.Equal(t, 3, ledger.Size())
	assert.Equal(t, entities.Quantity(9), ledger.GetTotalClaimed())
	assert.Equal(t, entities.Quantity(2), ledger.GetTotalLocked())
	assert.Len(t, ledger.Claims("b"), 2)
	assert.Contains(t, ledger.String(), "a/r1")
}

func TestAllocationLedger_ClaimedBy(t *testing.T) {
	ledger := NewAllocationLedger()
	ledger.Add(Claim{ProjectID: "a", Spec: glass("36", "48", "Clear"), Quantity: 5})
	ledger.Add(Claim{ProjectID: "b", Spec: glass("36", "48", "Bronze"), Quantity: 3})
	ledger.Add(Claim{ProjectID: "c", Spec: entities.HardwareSpec{ItemType: "Door Handle"}, Quantity: 7})

	assert.Equal(t, entities.Quantity(8), ledger.ClaimedBy(glass("36", "48", ""), "x"))
	assert.Equal(t, entities.Quantity(3), ledger.ClaimedBy(glass("36", "48", ""), "a"))
	assert.Equal(t, entities.Quantity(5), ledger.ClaimedBy(glass("36", "48", "Clear"), "x"))
	assert.Equal(t, entities.Quantity(7), ledger.ClaimedBy(entities.HardwareSpec{ItemType: "handle"}, "x"))
	assert.Equal(t, entities.Quantity(0), ledger.ClaimedBy(nil, "x"))
}

func TestNewAllocationLedgerFromProjects(t *testing.T) {
	req := mustRequirement(t, "r1", glass("36", "48", "Clear"), "6")
	req.AllocatedQuantity = 2
	p := mustProject(t, "a", req)
	// Files on other steps never carry requirements.
	p.Steps[0].Files = []entities.FileRef{{ID: "f1", Name: "contract.pdf"}}

	ledger := NewAllocationLedgerFromProjects([]entities.Project{p})

	require.Equal(t, 1, ledger.Size())
	claim := ledger.Claims("a")[0]
	assert.Equal(t, "r1", claim.RequirementID)
	assert.Equal(t, entities.Quantity(6), claim.Quantity)
	assert.Equal(t, entities.Quantity(2), claim.Locked)
}

func TestLockAllocation(t *testing.T) {
	at := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	availability := entities.AvailabilityResult{Available: 5, Needed: 3, CanAllocate: true}

	tests := []struct {
		name      string
		result    entities.AvailabilityResult
		quantity  entities.Quantity
		wantErr   error
		wantAlloc entities.Quantity
	}{
		{"within limit", availability, 3, nil, 3},
		{"above needed", availability, 4, entities.ErrInsufficientStock, 0},
		{"zero", availability, 0, entities.ErrValidation, 0},
		{"nothing available", entities.AvailabilityResult{Needed: 3}, 1, entities.ErrInsufficientStock, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mustRequirement(t, "r1", glass("36", "48", "Clear"), "3")
			err := LockAllocation(&req, tt.result, tt.quantity, at)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, req.IsLocked())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlloc, req.AllocatedQuantity)
			require.NotNil(t, req.AllocationDate)
			assert.Equal(t, at, *req.AllocationDate)
		})
	}
}

func TestReleaseAllocation(t *testing.T) {
	req := mustRequirement(t, "r1", glass("36", "48", "Clear"), "3")
	at := time.Now()
	req.AllocatedQuantity = 2
	req.AllocationDate = &at

	ReleaseAllocation(&req)

	assert.False(t, req.IsLocked())
	assert.Nil(t, req.AllocationDate)
}
