package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrInvalidAmount         = errors.New("amount must be > 0")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrChangeOrderNotFound   = errors.New("change order not found")
	ErrInvalidChangeOrderID  = errors.New("invalid change order id")
	ErrChangeOrderNotPending = errors.New("change order is not pending")
)

// RecordActualCostInput records a spend against a project. ComponentID and
// EstimateLineID are optional drill-down references.

type RecordActualCostInput struct {
	ProjectID      string
	ComponentID    string
	EstimateLineID string
	Amount         float64
	Category       entities.Category
	IncurredAt     time.Time
}

// IProjectUseCase exposes project bookkeeping for variance reporting:
// projects, recorded actual costs, and change orders.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, name, region string) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	RecordActualCost(ctx context.Context, input RecordActualCostInput) (entities.ActualCost, error)
	AddChangeOrder(ctx context.Context, projectID, description string, amount float64) (entities.ChangeOrder, error)
	ApproveChangeOrder(ctx context.Context, id string) (entities.ChangeOrder, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, name, region string) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Region:    strings.TrimSpace(region),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.CreateProject(ctx, p)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.repo.ListProjects(ctx)
}

func (u *ProjectUseCase) RecordActualCost(ctx context.Context, input RecordActualCostInput) (entities.ActualCost, error) {
	if input.Amount <= 0 {
		return entities.ActualCost{}, ErrInvalidAmount
	}
	p, err := u.GetProject(ctx, input.ProjectID)
	if err != nil {
		return entities.ActualCost{}, err
	}

	incurred := input.IncurredAt
	if incurred.IsZero() {
		incurred = time.Now().UTC()
	}
	ac := entities.ActualCost{
		ID:             uuid.NewString(),
		ProjectID:      p.ID,
		ComponentID:    strings.TrimSpace(input.ComponentID),
		EstimateLineID: strings.TrimSpace(input.EstimateLineID),
		Amount:         input.Amount,
		Category:       input.Category,
		IncurredAt:     incurred.UTC(),
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.CreateActualCost(ctx, ac)
}

func (u *ProjectUseCase) AddChangeOrder(ctx context.Context, projectID, description string, amount float64) (entities.ChangeOrder, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.ChangeOrder{}, ErrInvalidDescription
	}
	// amount may be negative for descoping, but never zero
	if amount == 0 {
		return entities.ChangeOrder{}, ErrInvalidAmount
	}
	p, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	co := entities.ChangeOrder{
		ID:          uuid.NewString(),
		ProjectID:   p.ID,
		Description: description,
		Amount:      amount,
		Status:      entities.ChangeOrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.CreateChangeOrder(ctx, co)
}

func (u *ProjectUseCase) ApproveChangeOrder(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetChangeOrderByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	if co.Status != entities.ChangeOrderStatusPending {
		return entities.ChangeOrder{}, ErrChangeOrderNotPending
	}

	updated, err := u.repo.UpdateChangeOrderStatus(ctx, id, entities.ChangeOrderStatusApproved)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if updated.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return updated, nil
}
