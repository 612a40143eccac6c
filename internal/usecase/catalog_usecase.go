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
	ErrComponentNotFound    = errors.New("component not found")
	ErrInvalidComponentID   = errors.New("invalid component id")
	ErrInvalidComponentName = errors.New("invalid component name")
	ErrInvalidUnit          = errors.New("invalid unit of measure")
	ErrInvalidLaborHours    = errors.New("labor hours must be >= 0")
	ErrInvalidTierName      = errors.New("invalid tier name")
	ErrInvalidUnitCost      = errors.New("unit cost must be > 0")
)

// CreateComponentInput carries the attributes of a new catalog component.
// Metadata is the open technical-spec side-channel (power, cooling,
// dimensions); it never participates in costing.

type CreateComponentInput struct {
	Name       string
	Category   entities.Category
	Unit       string
	LaborHours float64
	Metadata   map[string]string
}

// CreateTierInput carries the attributes of a new quality tier.

type CreateTierInput struct {
	Name        string
	UnitCost    float64
	Description string
}

// ICatalogUseCase exposes catalog management: components and their priced
// quality tiers. A component with no tiers exists but cannot be estimated.

type ICatalogUseCase interface {
	CreateComponent(ctx context.Context, input CreateComponentInput) (entities.Component, error)
	GetComponent(ctx context.Context, id string) (entities.Component, []entities.QualityTier, error)
	ListComponents(ctx context.Context) ([]entities.Component, error)
	AddQualityTier(ctx context.Context, componentID string, input CreateTierInput) (entities.QualityTier, error)
	ListTiers(ctx context.Context, componentID string) ([]entities.QualityTier, error)
}

type CatalogUseCase struct {
	repo interfaces.IComponentRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IComponentRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) CreateComponent(ctx context.Context, input CreateComponentInput) (entities.Component, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Component{}, ErrInvalidComponentName
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		return entities.Component{}, ErrInvalidUnit
	}
	if input.LaborHours < 0 {
		return entities.Component{}, ErrInvalidLaborHours
	}

	now := time.Now().UTC()
	c := entities.Component{
		ID:         uuid.NewString(),
		Name:       name,
		Category:   input.Category,
		Unit:       unit,
		LaborHours: input.LaborHours,
		Metadata:   input.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.CreateComponent(ctx, c)
}

func (u *CatalogUseCase) GetComponent(ctx context.Context, id string) (entities.Component, []entities.QualityTier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Component{}, nil, ErrInvalidComponentID
	}

	c, err := u.repo.GetComponentByID(ctx, id)
	if err != nil {
		return entities.Component{}, nil, err
	}
	if c.ID == "" {
		return entities.Component{}, nil, ErrComponentNotFound
	}

	tiers, err := u.repo.ListTiersByComponentID(ctx, id)
	if err != nil {
		return entities.Component{}, nil, err
	}
	return c, tiers, nil
}

func (u *CatalogUseCase) ListComponents(ctx context.Context) ([]entities.Component, error) {
	return u.repo.ListComponents(ctx)
}

func (u *CatalogUseCase) AddQualityTier(ctx context.Context, componentID string, input CreateTierInput) (entities.QualityTier, error) {
	componentID = strings.TrimSpace(componentID)
	if componentID == "" {
		return entities.QualityTier{}, ErrInvalidComponentID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.QualityTier{}, ErrInvalidTierName
	}
	if input.UnitCost <= 0 {
		return entities.QualityTier{}, ErrInvalidUnitCost
	}

	c, err := u.repo.GetComponentByID(ctx, componentID)
	if err != nil {
		return entities.QualityTier{}, err
	}
	if c.ID == "" {
		return entities.QualityTier{}, ErrComponentNotFound
	}

	t := entities.QualityTier{
		ID:          uuid.NewString(),
		ComponentID: componentID,
		Name:        name,
		UnitCost:    input.UnitCost,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.CreateTier(ctx, t)
}

func (u *CatalogUseCase) ListTiers(ctx context.Context, componentID string) ([]entities.QualityTier, error) {
	componentID = strings.TrimSpace(componentID)
	if componentID == "" {
		return nil, ErrInvalidComponentID
	}
	return u.repo.ListTiersByComponentID(ctx, componentID)
}

// loadCatalog fetches the full component/tier set and indexes it for the
// costing core. Shared by the estimate, assembly, and report usecases.
func loadCatalog(ctx context.Context, repo interfaces.IComponentRepository) (*costing.Catalog, error) {
	components, err := repo.ListComponents(ctx)
	if err != nil {
		return nil, err
	}
	tiers, err := repo.ListTiers(ctx)
	if err != nil {
		return nil, err
	}
	return costing.NewCatalog(components, tiers)
}
