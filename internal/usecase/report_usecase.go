package usecase

import (
	"context"
	"time"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase/interfaces"
)

// IReportUseCase exposes the reporting rollups: per-estimate category
// breakdowns and portfolio-level variance, region, and trend reports. All
// outputs are flat rows ready for dashboards or export collaborators.

type IReportUseCase interface {
	CategoryBreakdown(ctx context.Context, estimateID string, laborRate *float64) ([]costing.CategoryRow, []costing.LineIssue, error)
	Variance(ctx context.Context) ([]costing.VarianceRow, []costing.LineIssue, error)
	Regions(ctx context.Context) ([]costing.RegionRow, error)
	Trend(ctx context.Context, months int) ([]costing.TrendRow, error)
}

type ReportUseCase struct {
	estimateRepo  interfaces.IEstimateRepository
	componentRepo interfaces.IComponentRepository
	assemblyRepo  interfaces.IAssemblyRepository
	projectRepo   interfaces.IProjectRepository

	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	estimateRepo interfaces.IEstimateRepository,
	componentRepo interfaces.IComponentRepository,
	assemblyRepo interfaces.IAssemblyRepository,
	projectRepo interfaces.IProjectRepository,
) *ReportUseCase {
	return &ReportUseCase{
		estimateRepo:  estimateRepo,
		componentRepo: componentRepo,
		assemblyRepo:  assemblyRepo,
		projectRepo:   projectRepo,
		now:           time.Now,
	}
}

func (u *ReportUseCase) CategoryBreakdown(ctx context.Context, estimateID string, laborRate *float64) ([]costing.CategoryRow, []costing.LineIssue, error) {
	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return nil, nil, err
	}
	if e.ID == "" {
		return nil, nil, ErrEstimateNotFound
	}

	cat, err := loadCatalog(ctx, u.componentRepo)
	if err != nil {
		return nil, nil, err
	}

	var assemblies map[string]entities.Assembly
	if e.Kind == entities.EstimateKindHierarchical {
		stored, err := u.assemblyRepo.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		assemblies = make(map[string]entities.Assembly, len(stored))
		for _, a := range stored {
			assemblies[a.ID] = a
		}
	}

	return costing.CategoryBreakdown(e, cat, assemblies, costing.Config{LaborRate: laborRate})
}

func (u *ReportUseCase) Variance(ctx context.Context) ([]costing.VarianceRow, []costing.LineIssue, error) {
	projects, err := u.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, nil, err
	}
	estimates, err := u.estimateRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	actuals, err := u.projectRepo.ListActualCosts(ctx)
	if err != nil {
		return nil, nil, err
	}
	changeOrders, err := u.projectRepo.ListChangeOrders(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, issues := costing.ProjectVariance(projects, estimates, actuals, changeOrders)
	return rows, issues, nil
}

func (u *ReportUseCase) Regions(ctx context.Context) ([]costing.RegionRow, error) {
	projects, err := u.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	estimates, err := u.estimateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return costing.RegionBreakdown(projects, estimates), nil
}

func (u *ReportUseCase) Trend(ctx context.Context, months int) ([]costing.TrendRow, error) {
	estimates, err := u.estimateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	actuals, err := u.projectRepo.ListActualCosts(ctx)
	if err != nil {
		return nil, err
	}
	return costing.MonthlyTrend(estimates, actuals, months, u.now().UTC()), nil
}
