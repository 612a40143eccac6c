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
	ErrAssemblyNotFound     = errors.New("assembly not found")
	ErrInvalidAssemblyID    = errors.New("invalid assembly id")
	ErrInvalidAssemblyName  = errors.New("invalid assembly name")
	ErrNoAssemblyLines      = errors.New("assembly needs at least one line")
	ErrInvalidAssemblyLines = errors.New("invalid assembly lines")
)

// AssemblyLineInput is one candidate line of a new assembly.

type AssemblyLineInput struct {
	ComponentID string
	TierID      string
	Quantity    float64
	Unit        string
	Note        string
}

// IAssemblyUseCase exposes assembly management and on-demand totals.
//
// Creation is strict: every line must validate against the catalog, since a
// stored assembly is a reusable template and must not carry broken lines.
// Totals are always recomputed from the line list; the cached fields on the
// stored assembly are refreshed as a side effect, never trusted.

type IAssemblyUseCase interface {
	CreateAssembly(ctx context.Context, name, description string, lines []AssemblyLineInput) (entities.Assembly, []costing.LineIssue, error)
	GetAssembly(ctx context.Context, id string) (entities.Assembly, error)
	ListAssemblies(ctx context.Context) ([]entities.Assembly, error)
	ComputeTotals(ctx context.Context, id string, laborRate float64) (costing.AssemblyTotals, []costing.LineIssue, error)
}

type AssemblyUseCase struct {
	repo          interfaces.IAssemblyRepository
	componentRepo interfaces.IComponentRepository
}

var _ IAssemblyUseCase = (*AssemblyUseCase)(nil)

func NewAssemblyUseCase(repo interfaces.IAssemblyRepository, componentRepo interfaces.IComponentRepository) *AssemblyUseCase {
	return &AssemblyUseCase{repo: repo, componentRepo: componentRepo}
}

func (u *AssemblyUseCase) CreateAssembly(ctx context.Context, name, description string, lines []AssemblyLineInput) (entities.Assembly, []costing.LineIssue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Assembly{}, nil, ErrInvalidAssemblyName
	}
	if len(lines) == 0 {
		return entities.Assembly{}, nil, ErrNoAssemblyLines
	}

	built := make([]entities.AssemblyComponentLine, 0, len(lines))
	var issues []costing.LineIssue
	for i, in := range lines {
		line, err := costing.NewAssemblyLine(in.ComponentID, in.TierID, in.Quantity, in.Unit, in.Note)
		if err != nil {
			issues = append(issues, costing.LineIssue{
				Index:  i,
				Kind:   costing.IssueValidationFailed,
				Ref:    in.ComponentID,
				Reason: err.Error(),
			})
			continue
		}
		built = append(built, line)
	}

	cat, err := loadCatalog(ctx, u.componentRepo)
	if err != nil {
		return entities.Assembly{}, nil, err
	}
	materialCost, laborHours, refIssues := costing.AssemblyMaterials(built, cat)
	issues = append(issues, refIssues...)
	if len(issues) > 0 {
		return entities.Assembly{}, issues, ErrInvalidAssemblyLines
	}

	now := time.Now().UTC()
	a := entities.Assembly{
		ID:                uuid.NewString(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		Lines:             built,
		TotalMaterialCost: materialCost,
		TotalLaborHours:   laborHours,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Assembly{}, nil, err
	}
	return created, nil, nil
}

func (u *AssemblyUseCase) GetAssembly(ctx context.Context, id string) (entities.Assembly, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assembly{}, ErrInvalidAssemblyID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assembly{}, err
	}
	if a.ID == "" {
		return entities.Assembly{}, ErrAssemblyNotFound
	}
	return a, nil
}

func (u *AssemblyUseCase) ListAssemblies(ctx context.Context) ([]entities.Assembly, error) {
	return u.repo.List(ctx)
}

// ComputeTotals recomputes an assembly's totals from its current line list
// at the caller's labor rate. The stored caches are refreshed when they have
// drifted, so raw readers of the record see fresh advisory values.
func (u *AssemblyUseCase) ComputeTotals(ctx context.Context, id string, laborRate float64) (costing.AssemblyTotals, []costing.LineIssue, error) {
	a, err := u.GetAssembly(ctx, id)
	if err != nil {
		return costing.AssemblyTotals{}, nil, err
	}

	cat, err := loadCatalog(ctx, u.componentRepo)
	if err != nil {
		return costing.AssemblyTotals{}, nil, err
	}

	totals, issues, err := costing.ComputeAssembly(a.Lines, cat, costing.NewConfig(laborRate))
	if err != nil {
		return costing.AssemblyTotals{}, nil, err
	}

	if a.TotalMaterialCost != totals.MaterialCost || a.TotalLaborHours != totals.LaborHours {
		a.TotalMaterialCost = totals.MaterialCost
		a.TotalLaborHours = totals.LaborHours
		a.UpdatedAt = time.Now().UTC()
		if _, err := u.repo.Save(ctx, a); err != nil {
			return costing.AssemblyTotals{}, nil, err
		}
	}
	return totals, issues, nil
}
