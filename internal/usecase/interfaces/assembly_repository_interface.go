package interfaces

import (
	"context"

	"hyperion_estimating/internal/domain/entities"
)

// IAssemblyRepository abstracts DynamoDB persistence for assemblies. Lines
// are embedded in the assembly item, so an assembly is read and written
// whole; Save replaces the stored item.

type IAssemblyRepository interface {
	Create(ctx context.Context, a entities.Assembly) (entities.Assembly, error)
	GetByID(ctx context.Context, id string) (entities.Assembly, error)
	List(ctx context.Context) ([]entities.Assembly, error)
	Save(ctx context.Context, a entities.Assembly) (entities.Assembly, error)
}
