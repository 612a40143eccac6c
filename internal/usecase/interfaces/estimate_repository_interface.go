package interfaces

import (
	"context"

	"hyperion_estimating/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for estimates.
//
// Lines are embedded in the estimate item:
//   - Save replaces lines and the cached total in one write, so the stored
//     record is never observed with a total that disagrees with its lines.
//   - Delete removes the item and therefore cascades to the lines.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}
