package interfaces

import (
	"context"

	"hyperion_estimating/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for projects and their
// reporting satellites (actual costs, change orders).

type IProjectRepository interface {
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)

	CreateActualCost(ctx context.Context, ac entities.ActualCost) (entities.ActualCost, error)
	ListActualCostsByProjectID(ctx context.Context, projectID string) ([]entities.ActualCost, error)
	ListActualCosts(ctx context.Context) ([]entities.ActualCost, error)

	CreateChangeOrder(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	GetChangeOrderByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	UpdateChangeOrderStatus(ctx context.Context, id string, status entities.ChangeOrderStatus) (entities.ChangeOrder, error)
	ListChangeOrders(ctx context.Context) ([]entities.ChangeOrder, error)
}
