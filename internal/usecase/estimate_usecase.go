package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidEstimateName = errors.New("invalid estimate name")
	ErrInvalidEstimateKind = errors.New("invalid estimate kind")
	ErrProjectNotFound     = errors.New("project not found")
)

// EstimateLineInput is one candidate flat line.

type EstimateLineInput struct {
	ComponentID string
	TierID      string
	Quantity    float64
	Unit        string
}

// EstimateAssemblyLineInput is one candidate assembly reference line.

type EstimateAssemblyLineInput struct {
	AssemblyID string
	Quantity   int
}

// CreateEstimateInput creates an estimate with its first batch of lines.
// Exactly one of Lines/AssemblyLines may be set, matching Kind. LaborRate is
// required for hierarchical estimates (there is no implicit default).

type CreateEstimateInput struct {
	Name          string
	ProjectID     string
	Kind          entities.EstimateKind
	Lines         []EstimateLineInput
	AssemblyLines []EstimateAssemblyLineInput
	LaborRate     *float64
	Atomic        bool
}

// AppendOutcome reports an estimate mutation: the persisted estimate with a
// reconciled total, how many candidate lines were accepted, and every
// rejected line with its reason.

type AppendOutcome struct {
	Estimate entities.Estimate
	Accepted int
	Rejected []costing.LineIssue
}

// IEstimateUseCase exposes estimate lifecycle operations.
//
// Every mutation recomputes the grand total from line data before
// persisting, so "estimate exists" implies "stored total reconciles".

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, input CreateEstimateInput) (AppendOutcome, error)
	AppendLines(ctx context.Context, estimateID string, lines []EstimateLineInput, atomic bool) (AppendOutcome, error)
	AppendAssemblyLines(ctx context.Context, estimateID string, lines []EstimateAssemblyLineInput, laborRate *float64, atomic bool) (AppendOutcome, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo          interfaces.IEstimateRepository
	componentRepo interfaces.IComponentRepository
	assemblyRepo  interfaces.IAssemblyRepository
	projectRepo   interfaces.IProjectRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	componentRepo interfaces.IComponentRepository,
	assemblyRepo interfaces.IAssemblyRepository,
	projectRepo interfaces.IProjectRepository,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:          repo,
		componentRepo: componentRepo,
		assemblyRepo:  assemblyRepo,
		projectRepo:   projectRepo,
	}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, input CreateEstimateInput) (AppendOutcome, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return AppendOutcome{}, ErrInvalidEstimateName
	}

	switch input.Kind {
	case entities.EstimateKindFlat:
		if len(input.AssemblyLines) > 0 {
			return AppendOutcome{}, costing.ErrKindMismatch
		}
	case entities.EstimateKindHierarchical:
		if len(input.Lines) > 0 {
			return AppendOutcome{}, costing.ErrKindMismatch
		}
	default:
		return AppendOutcome{}, ErrInvalidEstimateKind
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID != "" {
		p, err := u.projectRepo.GetProjectByID(ctx, projectID)
		if err != nil {
			return AppendOutcome{}, err
		}
		if p.ID == "" {
			return AppendOutcome{}, ErrProjectNotFound
		}
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Kind:      input.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var (
		res costing.AppendResult
		err error
	)
	if input.Kind == entities.EstimateKindFlat {
		res, err = u.appendFlat(ctx, e, input.Lines, input.Atomic)
	} else {
		res, err = u.appendHierarchical(ctx, e, input.AssemblyLines, input.LaborRate, input.Atomic)
	}
	if err != nil {
		return AppendOutcome{Rejected: res.Issues}, err
	}

	created, err := u.repo.Create(ctx, res.Estimate)
	if err != nil {
		return AppendOutcome{}, err
	}
	return AppendOutcome{Estimate: created, Accepted: res.Accepted, Rejected: res.Issues}, nil
}

func (u *EstimateUseCase) AppendLines(ctx context.Context, estimateID string, lines []EstimateLineInput, atomic bool) (AppendOutcome, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return AppendOutcome{}, err
	}

	res, err := u.appendFlat(ctx, e, lines, atomic)
	if err != nil {
		return AppendOutcome{Rejected: res.Issues}, err
	}
	return u.save(ctx, res)
}

func (u *EstimateUseCase) AppendAssemblyLines(ctx context.Context, estimateID string, lines []EstimateAssemblyLineInput, laborRate *float64, atomic bool) (AppendOutcome, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return AppendOutcome{}, err
	}

	res, err := u.appendHierarchical(ctx, e, lines, laborRate, atomic)
	if err != nil {
		return AppendOutcome{Rejected: res.Issues}, err
	}
	return u.save(ctx, res)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectNotFound
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Delete removes the estimate and, because lines are embedded in the item,
// cascades to them atomically.
func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, e.ID)
}

func (u *EstimateUseCase) appendFlat(ctx context.Context, e entities.Estimate, lines []EstimateLineInput, atomic bool) (costing.AppendResult, error) {
	cat, err := loadCatalog(ctx, u.componentRepo)
	if err != nil {
		return costing.AppendResult{}, err
	}

	candidates := make([]entities.EstimateLine, 0, len(lines))
	for _, in := range lines {
		candidates = append(candidates, entities.EstimateLine{
			ID:          uuid.NewString(),
			ComponentID: strings.TrimSpace(in.ComponentID),
			TierID:      strings.TrimSpace(in.TierID),
			Quantity:    in.Quantity,
			Unit:        strings.TrimSpace(in.Unit),
		})
	}
	return costing.AppendLines(e, candidates, cat, costing.AppendOptions{Atomic: atomic})
}

func (u *EstimateUseCase) appendHierarchical(ctx context.Context, e entities.Estimate, lines []EstimateAssemblyLineInput, laborRate *float64, atomic bool) (costing.AppendResult, error) {
	cat, err := loadCatalog(ctx, u.componentRepo)
	if err != nil {
		return costing.AppendResult{}, err
	}
	stored, err := u.assemblyRepo.List(ctx)
	if err != nil {
		return costing.AppendResult{}, err
	}
	assemblies := make(map[string]entities.Assembly, len(stored))
	for _, a := range stored {
		assemblies[a.ID] = a
	}

	candidates := make([]entities.EstimateAssemblyLine, 0, len(lines))
	for _, in := range lines {
		candidates = append(candidates, entities.EstimateAssemblyLine{
			ID:         uuid.NewString(),
			AssemblyID: strings.TrimSpace(in.AssemblyID),
			Quantity:   in.Quantity,
		})
	}
	cfg := costing.Config{LaborRate: laborRate}
	return costing.AppendAssemblyLines(e, candidates, assemblies, cat, cfg, costing.AppendOptions{Atomic: atomic})
}

func (u *EstimateUseCase) save(ctx context.Context, res costing.AppendResult) (AppendOutcome, error) {
	e := res.Estimate
	e.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return AppendOutcome{}, err
	}
	return AppendOutcome{Estimate: saved, Accepted: res.Accepted, Rejected: res.Issues}, nil
}
