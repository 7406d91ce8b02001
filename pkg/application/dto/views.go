package dto

import (
	"time"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/events"
)

// AvailabilityView is the JSON form of an availability check
type AvailabilityView struct {
	InStock     int64    `json:"in_stock"`
	Allocated   int64    `json:"allocated"`
	Available   int64    `json:"available"`
	Needed      int64    `json:"needed"`
	Shortage    int64    `json:"shortage"`
	Sufficient  bool     `json:"sufficient"`
	CanAllocate bool     `json:"can_allocate"`
	Locked      int64    `json:"locked"`
	MatchedIDs  []string `json:"matched_ids"`
}

func NewAvailabilityView(r entities.AvailabilityResult) AvailabilityView {
	ids := make([]string, 0, len(r.Matched))
	for _, item := range r.Matched {
		ids = append(ids, item.ID)
	}
	return AvailabilityView{
		InStock:     int64(r.InStock),
		Allocated:   int64(r.Allocated),
		Available:   int64(r.Available),
		Needed:      int64(r.Needed),
		Shortage:    int64(r.Shortage),
		Sufficient:  r.Sufficient,
		CanAllocate: r.CanAllocate,
		Locked:      int64(r.Locked),
		MatchedIDs:  ids,
	}
}

type RequirementView struct {
	ID                string           `json:"id"`
	Spec              SpecInput        `json:"spec"`
	Label             string           `json:"label"`
	Quantity          string           `json:"quantity"`
	Supplier          string           `json:"supplier,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	AllocatedQuantity int64            `json:"allocated_quantity"`
	AllocationDate    *time.Time       `json:"allocation_date,omitempty"`
	Availability      AvailabilityView `json:"availability"`
	// OrderStatus is empty when no order covers the requirement
	OrderStatus string `json:"order_status,omitempty"`
}

// RequirementsPage is a project's requirement list with its footer summary
type RequirementsPage struct {
	ProjectID    string            `json:"project_id"`
	ProjectName  string            `json:"project_name"`
	Requirements []RequirementView `json:"requirements"`
	Total        int               `json:"total"`
	Sufficient   int               `json:"sufficient"`
	NeedToOrder  int               `json:"need_to_order"`
}

type StepView struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Completed        bool               `json:"completed"`
	Files            []entities.FileRef `json:"files"`
	RequirementCount int                `json:"requirement_count"`
}

type ProjectView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Steps     []StepView `json:"steps"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewProjectView(p entities.Project) ProjectView {
	view := ProjectView{
		ID:        p.ID,
		Name:      p.Name,
		Status:    string(p.Status()),
		CreatedAt: p.CreatedAt,
		Steps:     make([]StepView, 0, len(p.Steps)),
	}
	for _, step := range p.Steps {
		files := step.Files
		if files == nil {
			files = []entities.FileRef{}
		}
		view.Steps = append(view.Steps, StepView{
			ID:               step.ID,
			Name:             string(step.Name),
			Completed:        step.Completed,
			Files:            files,
			RequirementCount: len(step.Requirements),
		})
	}
	return view
}

type OrderView struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Spec        SpecInput `json:"spec"`
	ItemName    string    `json:"item_name"`
	Quantity    int64     `json:"quantity"`
	Status      string    `json:"status"`
	Supplier    string    `json:"supplier,omitempty"`
	UnitCost    string    `json:"unit_cost"`
	Urgency     string    `json:"urgency"`
	DateCreated time.Time `json:"date_created"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewOrderView(o entities.Order) OrderView {
	return OrderView{
		ID:          o.ID,
		ProjectID:   o.ProjectID,
		ProjectName: o.ProjectName,
		Spec:        SpecInputFrom(o.Spec),
		ItemName:    o.ItemName,
		Quantity:    int64(o.Quantity),
		Status:      string(o.Status),
		Supplier:    o.Supplier,
		UnitCost:    o.UnitCost.StringFixed(2),
		Urgency:     o.Urgency,
		DateCreated: o.DateCreated,
		UpdatedAt:   o.UpdatedAt,
	}
}

type BoardColumnView struct {
	Status string      `json:"status"`
	Count  int         `json:"count"`
	Orders []OrderView `json:"orders"`
}

type BoardView struct {
	Columns []BoardColumnView `json:"columns"`
	Total   int               `json:"total"`
}

type InventoryItemView struct {
	ID        string    `json:"id"`
	Spec      SpecInput `json:"spec"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Supplier  string    `json:"supplier,omitempty"`
	Area      string    `json:"area,omitempty"`
	DateAdded time.Time `json:"date_added"`
	LowStock  bool      `json:"low_stock"`
}

func NewInventoryItemView(item entities.InventoryItem, thresholds entities.LowStockThresholds) InventoryItemView {
	return InventoryItemView{
		ID:        item.ID,
		Spec:      SpecInputFrom(item.Spec),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Supplier:  item.Supplier,
		Area:      item.Area,
		DateAdded: item.DateAdded,
		LowStock:  thresholds.IsLow(item),
	}
}

// InventoryReport lists stock per category plus what is running low
type InventoryReport struct {
	Glass    []InventoryItemView `json:"glass"`
	Hardware []InventoryItemView `json:"hardware"`
	LowStock []InventoryItemView `json:"low_stock"`
}

// EventView is one entry of the shop history with its position in the log
type EventView struct {
	Position  int       `json:"position"`
	Type      string    `json:"type"`
	Stream    string    `json:"stream"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// NewEventViews numbers events starting at from, the position of the first one
func NewEventViews(from int, history []events.Event) []EventView {
	views := make([]EventView, 0, len(history))
	for i, e := range history {
		views = append(views, EventView{
			Position:  from + i,
			Type:      e.Type(),
			Stream:    e.StreamID(),
			Version:   e.Version(),
			Timestamp: e.Timestamp(),
			Data:      e.Data(),
		})
	}
	return views
}

// ProjectClaimsView is one project's share of the allocation ledger
type ProjectClaimsView struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Claims      int    `json:"claims"`
	Claimed     int64  `json:"claimed"`
	Locked      int64  `json:"locked"`
}

// AllocationView totals every requirement's claim on stock
type AllocationView struct {
	Claims   int                 `json:"claims"`
	Claimed  int64               `json:"claimed"`
	Locked   int64               `json:"locked"`
	Projects []ProjectClaimsView `json:"projects"`
}
