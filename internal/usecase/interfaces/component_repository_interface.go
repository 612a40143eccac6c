package interfaces

import (
	"context"

	"hyperion_estimating/internal/domain/entities"
)

// IComponentRepository abstracts DynamoDB persistence for catalog components
// and their quality tiers.
//
// Not-found is signaled by a zero-value entity with a nil error; callers
// check the ID field.

type IComponentRepository interface {
	CreateComponent(ctx context.Context, c entities.Component) (entities.Component, error)
	GetComponentByID(ctx context.Context, id string) (entities.Component, error)
	ListComponents(ctx context.Context) ([]entities.Component, error)

	CreateTier(ctx context.Context, t entities.QualityTier) (entities.QualityTier, error)
	ListTiersByComponentID(ctx context.Context, componentID string) ([]entities.QualityTier, error)
	ListTiers(ctx context.Context) ([]entities.QualityTier, error)
}
