package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/application/services/orders"
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
	domainservices "github.com/arashoo/Katena-project-management/pkg/domain/services"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/events"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/metrics"
)

// Shop owns the project, inventory and order collections. Every operation
// holds one lock, so each either fully applies or leaves nothing behind.
type Shop struct {
	mu sync.Mutex

	projects  repositories.ProjectRepository
	inventory repositories.InventoryRepository
	orders    *orders.Manager

	events     *events.InMemoryEventStore
	logger     *zap.Logger
	recorder   *metrics.Recorder
	thresholds entities.LowStockThresholds
	now        func() time.Time
	newID      func() string
}

// ShopOption configures a Shop
type ShopOption func(*Shop)

func WithLogger(logger *zap.Logger) ShopOption {
	return func(s *Shop) { s.logger = logger }
}

func WithRecorder(recorder *metrics.Recorder) ShopOption {
	return func(s *Shop) { s.recorder = recorder }
}

func WithThresholds(thresholds entities.LowStockThresholds) ShopOption {
	return func(s *Shop) { s.thresholds = thresholds }
}

func WithClock(now func() time.Time) ShopOption {
	return func(s *Shop) { s.now = now }
}

func WithIDGenerator(newID func() string) ShopOption {
	return func(s *Shop) { s.newID = newID }
}

// NewShop creates the application shell over the given repositories
func NewShop(
	projects repositories.ProjectRepository,
	inventory repositories.InventoryRepository,
	orderRepo repositories.OrderRepository,
	opts ...ShopOption,
) *Shop {
	s := &Shop{
		projects:   projects,
		inventory:  inventory,
		logger:     zap.NewNop(),
		thresholds: entities.DefaultLowStockThresholds(),
		now:        time.Now,
		newID:      entities.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.events = events.NewInMemoryEventStore(s.logger.Named("events"))

	managerOpts := []orders.Option{
		orders.WithLogger(s.logger.Named("orders")),
		orders.WithEventStore(s.events),
		orders.WithClock(s.now),
		orders.WithIDGenerator(s.newID),
	}
	if s.recorder != nil {
		managerOpts = append(managerOpts, orders.WithRecorder(s.recorder))
	}
	s.orders = orders.NewManager(orderRepo, projects, inventory, managerOpts...)
	return s
}

// Events exposes the shop event store for subscribers
func (s *Shop) Events() events.EventStore {
	return s.events
}

// History returns every event from position on
func (s *Shop) History(from int) ([]events.Event, error) {
	return s.events.ReadAllEvents(from)
}

// Projects

func (s *Shop) ListProjects() ([]dto.ProjectView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.projects.List()
	if err != nil {
		return nil, err
	}
	views := make([]dto.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, dto.NewProjectView(p))
	}
	return views, nil
}

func (s *Shop) GetProject(id string) (*dto.ProjectView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.Get(id)
	if err != nil {
		return nil, err
	}
	view := dto.NewProjectView(*project)
	return &view, nil
}

func (s *Shop) CreateProject(ctx context.Context, input dto.ProjectInput) (*dto.ProjectView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := entities.NewProject(s.newID(), input.Name, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.projects.Save(*project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	s.logger.Info("project created", zap.String("project_id", project.ID), zap.String("name", project.Name))
	view := dto.NewProjectView(*project)
	return &view, nil
}

func (s *Shop) RenameProject(ctx context.Context, id string, input dto.ProjectInput) (*dto.ProjectView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	return s.updateProject(ctx, id, func(p *entities.Project) error {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return fmt.Errorf("%w: project name cannot be empty", entities.ErrValidation)
		}
		p.Name = name
		return nil
	})
}

func (s *Shop) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.projects.Delete(id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

// ToggleStep flips a step's completion flag
func (s *Shop) ToggleStep(ctx context.Context, projectID string, stepID int) (*dto.ProjectView, error) {
	return s.updateProject(ctx, projectID, func(p *entities.Project) error {
		step, ok := p.Step(stepID)
		if !ok {
			return fmt.Errorf("%w: step %d in project %s", entities.ErrNotFound, stepID, projectID)
		}
		step.Completed = !step.Completed
		return nil
	})
}

// AttachFile records a file reference on a step; no file content is stored
func (s *Shop) AttachFile(ctx context.Context, projectID string, stepID int, input dto.FileInput) (*dto.ProjectView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	return s.updateProject(ctx, projectID, func(p *entities.Project) error {
		step, ok := p.Step(stepID)
		if !ok {
			return fmt.Errorf("%w: step %d in project %s", entities.ErrNotFound, stepID, projectID)
		}
		step.Files = append(step.Files, entities.FileRef{
			ID:      s.newID(),
			Name:    input.Name,
			URL:     input.URL,
			IsCloud: input.IsCloud,
		})
		return nil
	})
}

// DeleteFile removes a file reference from a step
func (s *Shop) DeleteFile(ctx context.Context, projectID string, stepID int, fileID string) (*dto.ProjectView, error) {
	return s.updateProject(ctx, projectID, func(p *entities.Project) error {
		step, ok := p.Step(stepID)
		if !ok {
			return fmt.Errorf("%w: step %d in project %s", entities.ErrNotFound, stepID, projectID)
		}
		if !step.RemoveFile(fileID) {
			return fmt.Errorf("%w: file %s on step %d", entities.ErrNotFound, fileID, stepID)
		}
		return nil
	})
}

func (s *Shop) updateProject(ctx context.Context, id string, apply func(*entities.Project) error) (*dto.ProjectView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := s.projects.Get(id)
	if err != nil {
		return nil, err
	}
	if err := apply(project); err != nil {
		return nil, err
	}
	if err := s.projects.Save(*project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	view := dto.NewProjectView(*project)
	return &view, nil
}

// Requirements

// AddRequirement appends a requirement to the project's Requirements step
func (s *Shop) AddRequirement(ctx context.Context, projectID string, input dto.RequirementInput) (*dto.RequirementView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := s.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	step := project.RequirementsStep()
	if step == nil {
		return nil, fmt.Errorf("%w: project %s has no requirements step", entities.ErrNotFound, projectID)
	}

	req, err := entities.NewRequirement(s.newID(), input.Spec(), strings.TrimSpace(input.Quantity), s.now())
	if err != nil {
		return nil, err
	}
	req.Supplier = input.Supplier
	req.Notes = input.Notes
	step.Requirements = append(step.Requirements, *req)

	if err := s.projects.Save(*project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	s.logger.Info("requirement added",
		zap.String("project_id", projectID),
		zap.String("requirement_id", req.ID),
		zap.String("category", string(req.Category())),
	)
	return s.requirementView(projectID, *req)
}

func (s *Shop) DeleteRequirement(ctx context.Context, projectID, requirementID string) error {
	_, err := s.updateProject(ctx, projectID, func(p *entities.Project) error {
		step := p.RequirementsStep()
		if step == nil {
			return fmt.Errorf("%w: requirement %s", entities.ErrNotFound, requirementID)
		}
		for i, req := range step.Requirements {
			if req.ID == requirementID {
				step.Requirements = append(step.Requirements[:i], step.Requirements[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: requirement %s in project %s", entities.ErrNotFound, requirementID, projectID)
	})
	return err
}

// RequirementViews recomputes availability and order badges for every requirement of a project
func (s *Shop) RequirementViews(projectID string) (*dto.RequirementsPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	page := &dto.RequirementsPage{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		Requirements: []dto.RequirementView{},
	}
	for _, req := range project.Requirements() {
		view, err := s.requirementView(projectID, req)
		if err != nil {
			return nil, err
		}
		page.Requirements = append(page.Requirements, *view)
	}

	inventory, err := s.inventory.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	projects, err := s.projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	summary := domainservices.SummarizeRequirements(*project, inventory, projects)
	page.Total = summary.Total
	page.Sufficient = summary.Sufficient
	page.NeedToOrder = summary.NeedToOrder
	return page, nil
}

// AllocationSummary totals the claims every project holds on stock
func (s *Shop) AllocationSummary() (*dto.AllocationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	ledger := domainservices.NewAllocationLedgerFromProjects(projects)
	s.logger.Debug("allocation ledger", zap.Stringer("ledger", ledger))

	view := &dto.AllocationView{
		Claims:   ledger.Size(),
		Claimed:  int64(ledger.GetTotalClaimed()),
		Locked:   int64(ledger.GetTotalLocked()),
		Projects: []dto.ProjectClaimsView{},
	}
	for _, p := range projects {
		row := dto.ProjectClaimsView{ProjectID: p.ID, ProjectName: p.Name}
		for _, claim := range ledger.Claims(p.ID) {
			row.Claims++
			row.Claimed += int64(claim.Quantity)
			row.Locked += int64(claim.Locked)
		}
		view.Projects = append(view.Projects, row)
	}
	return view, nil
}

// CheckAvailability runs the allocation engine for one requirement
func (s *Shop) CheckAvailability(projectID, requirementID string) (*dto.AvailabilityView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	req, ok := project.Requirement(requirementID)
	if !ok {
		return nil, fmt.Errorf("%w: requirement %s in project %s", entities.ErrNotFound, requirementID, projectID)
	}
	result, err := s.availability(projectID, *req)
	if err != nil {
		return nil, err
	}
	view := dto.NewAvailabilityView(result)
	return &view, nil
}

// LockAllocation pins part of the available stock to a requirement
func (s *Shop) LockAllocation(ctx context.Context, projectID, requirementID string, input dto.LockInput) (*dto.RequirementView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := s.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	req, ok := project.Requirement(requirementID)
	if !ok {
		return nil, fmt.Errorf("%w: requirement %s in project %s", entities.ErrNotFound, requirementID, projectID)
	}
	result, err := s.availability(projectID, *req)
	if err != nil {
		return nil, err
	}
	if err := domainservices.LockAllocation(req, result, entities.Quantity(input.Quantity), s.now()); err != nil {
		return nil, err
	}
	if err := s.projects.Save(*project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("allocation locked",
		zap.String("project_id", projectID),
		zap.String("requirement_id", requirementID),
		zap.Int64("quantity", input.Quantity),
	)
	s.publish(events.ProjectStream(projectID), events.AllocationLockedEvent, events.AllocationLocked{
		ProjectID: projectID, RequirementID: requirementID, Quantity: req.AllocatedQuantity,
	})
	return s.requirementView(projectID, *req)
}

// ReleaseAllocation clears a requirement's manual lock
func (s *Shop) ReleaseAllocation(ctx context.Context, projectID, requirementID string) (*dto.RequirementView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := s.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	req, ok := project.Requirement(requirementID)
	if !ok {
		return nil, fmt.Errorf("%w: requirement %s in project %s", entities.ErrNotFound, requirementID, projectID)
	}
	domainservices.ReleaseAllocation(req)
	if err := s.projects.Save(*project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("allocation released", zap.String("project_id", projectID), zap.String("requirement_id", requirementID))
	s.publish(events.ProjectStream(projectID), events.AllocationReleasedEvent, events.AllocationReleased{
		ProjectID: projectID, RequirementID: requirementID,
	})
	return s.requirementView(projectID, *req)
}

func (s *Shop) availability(projectID string, req entities.Requirement) (entities.AvailabilityResult, error) {
	inventory, err := s.inventory.All()
	if err != nil {
		return entities.AvailabilityResult{}, fmt.Errorf("failed to read inventory: %w", err)
	}
	projects, err := s.projects.List()
	if err != nil {
		return entities.AvailabilityResult{}, fmt.Errorf("failed to read projects: %w", err)
	}
	result := domainservices.CheckAvailability(req, inventory, projects, projectID)
	if s.recorder != nil {
		s.recorder.AvailabilityChecked(result.Sufficient)
	}
	return result, nil
}

func (s *Shop) requirementView(projectID string, req entities.Requirement) (*dto.RequirementView, error) {
	result, err := s.availability(projectID, req)
	if err != nil {
		return nil, err
	}
	status, found, err := s.orders.StatusFor(projectID, req.Spec)
	if err != nil {
		return nil, err
	}
	view := &dto.RequirementView{
		ID:                req.ID,
		Spec:              dto.SpecInputFrom(req.Spec),
		Label:             entities.ItemName(req.Spec),
		Quantity:          req.Quantity,
		Supplier:          req.Supplier,
		Notes:             req.Notes,
		AllocatedQuantity: int64(req.AllocatedQuantity),
		AllocationDate:    req.AllocationDate,
		Availability:      dto.NewAvailabilityView(result),
	}
	if found {
		view.OrderStatus = string(status)
	}
	return view, nil
}

// Orders

// CreateOrder raises an order for the requirement's current shortage
func (s *Shop) CreateOrder(ctx context.Context, projectID, requirementID string) (*dto.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.CreateOrder(ctx, projectID, requirementID)
	if err != nil {
		return nil, err
	}
	view := dto.NewOrderView(*order)
	return &view, nil
}

// AdvanceOrder moves an order to input.Status, or one stage forward when it is empty
func (s *Shop) AdvanceOrder(ctx context.Context, orderID string, input dto.AdvanceInput) (*dto.OrderView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		order *entities.Order
		err   error
	)
	if input.Status == "" {
		order, err = s.orders.AdvanceNext(ctx, orderID)
	} else {
		order, err = s.orders.Advance(ctx, orderID, entities.OrderStatus(input.Status))
	}
	if err != nil {
		return nil, err
	}
	if order.Status == entities.OrderDelivered {
		s.refreshLowStock()
	}
	view := dto.NewOrderView(*order)
	return &view, nil
}

func (s *Shop) DeleteOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orders.Delete(ctx, orderID)
}

// OrderBoard groups all orders by status with per-column counts
func (s *Shop) OrderBoard() (*dto.BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.orders.Board()
	if err != nil {
		return nil, err
	}
	view := &dto.BoardView{Total: board.Total()}
	for _, col := range board.Columns {
		column := dto.BoardColumnView{Status: string(col.Status), Count: len(col.Orders), Orders: []dto.OrderView{}}
		for _, order := range col.Orders {
			column.Orders = append(column.Orders, dto.NewOrderView(order))
		}
		view.Columns = append(view.Columns, column)
	}
	return view, nil
}

// Inventory

// InventoryReport lists stock per category and the records under threshold
func (s *Shop) InventoryReport() (*dto.InventoryReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &dto.InventoryReport{
		Glass:    []dto.InventoryItemView{},
		Hardware: []dto.InventoryItemView{},
		LowStock: []dto.InventoryItemView{},
	}
	all, err := s.inventory.All()
	if err != nil {
		return nil, err
	}
	for _, item := range all {
		view := dto.NewInventoryItemView(item, s.thresholds)
		switch item.Category() {
		case entities.CategoryGlass:
			report.Glass = append(report.Glass, view)
		case entities.CategoryHardware:
			report.Hardware = append(report.Hardware, view)
		}
	}
	low := s.inventory.LowStock(s.thresholds)
	for _, item := range low {
		report.LowStock = append(report.LowStock, dto.NewInventoryItemView(item, s.thresholds))
	}
	if s.recorder != nil {
		s.recorder.SetLowStock(low)
	}
	return report, nil
}

func (s *Shop) AddInventory(ctx context.Context, input dto.InventoryInput) (*dto.InventoryItemView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, err := entities.NewInventoryItem(s.newID(), input.Spec(), inventoryName(input), entities.Quantity(input.Quantity), input.Supplier, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.inventory.Add(*item); err != nil {
		return nil, err
	}
	s.logger.Info("inventory added", zap.String("inventory_id", item.ID), zap.String("category", string(item.Category())))
	s.refreshLowStock()
	view := dto.NewInventoryItemView(*item, s.thresholds)
	return &view, nil
}

// UpdateInventory replaces a record's fields, keeping its id and date added
func (s *Shop) UpdateInventory(ctx context.Context, category entities.Category, id string, input dto.InventoryInput) (*dto.InventoryItemView, error) {
	if err := dto.Validate(input); err != nil {
		return nil, err
	}
	if entities.Category(input.Category) != category {
		return nil, fmt.Errorf("%w: cannot move a %s record to %s", entities.ErrValidation, category, input.Category)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	existing, err := s.inventory.Get(category, id)
	if err != nil {
		return nil, err
	}
	item, err := entities.NewInventoryItem(id, input.Spec(), inventoryName(input), entities.Quantity(input.Quantity), input.Supplier, existing.DateAdded)
	if err != nil {
		return nil, err
	}
	if err := s.inventory.Update(*item); err != nil {
		return nil, err
	}
	s.refreshLowStock()
	view := dto.NewInventoryItemView(*item, s.thresholds)
	return &view, nil
}

func (s *Shop) DeleteInventory(ctx context.Context, category entities.Category, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.inventory.Delete(category, id); err != nil {
		return err
	}
	s.logger.Info("inventory deleted", zap.String("inventory_id", id), zap.String("category", string(category)))
	s.refreshLowStock()
	return nil
}

// Hardware records are matched by name, so the name always equals the item type.
func inventoryName(input dto.InventoryInput) string {
	if entities.Category(input.Category) == entities.CategoryHardware {
		return strings.TrimSpace(input.ItemType)
	}
	return strings.TrimSpace(input.Name)
}

func (s *Shop) refreshLowStock() {
	if s.recorder == nil {
		return
	}
	s.recorder.SetLowStock(s.inventory.LowStock(s.thresholds))
}

func (s *Shop) publish(stream, eventType string, data any) {
	if err := s.events.AppendEvent(stream, events.NewEvent(eventType, stream, data, s.now())); err != nil {
		s.logger.Warn("failed to publish event", zap.String("event_type", eventType), zap.Error(err))
	}
}
