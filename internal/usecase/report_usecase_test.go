package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
	mock_interfaces "hyperion_estimating/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_CategoryBreakdown(t *testing.T) {
	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewReportUseCase(estimateRepo, nil, nil, nil)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-ghost").Return(entities.Estimate{}, nil)

		_, _, err := uc.CategoryBreakdown(context.Background(), "est-ghost", nil)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("flat breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		uc := NewReportUseCase(estimateRepo, componentRepo, nil, nil)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{
			ID:   "est-1",
			Kind: entities.EstimateKindFlat,
			Lines: []entities.EstimateLine{
				{ID: "l1", ComponentID: "comp-x", TierID: "tier-std", Quantity: 8, TotalCost: 400},
				{ID: "l2", ComponentID: "comp-y", TierID: "tier-prem", Quantity: 3, TotalCost: 600},
			},
		}, nil)
		expectCatalogLoad(componentRepo)

		rows, issues, err := uc.CategoryBreakdown(context.Background(), "est-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 0 {
			t.Fatalf("expected no issues, got %+v", issues)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %+v", rows)
		}
		// sorted by cost descending
		if rows[0].Category != entities.CategoryMechanical || rows[0].Cost != 600 || rows[0].Percentage != 60 {
			t.Fatalf("unexpected first row: %+v", rows[0])
		}
		if rows[1].Category != entities.CategoryElectrical || rows[1].Cost != 400 || rows[1].Percentage != 40 {
			t.Fatalf("unexpected second row: %+v", rows[1])
		}
	})

	t.Run("hierarchical breakdown loads assemblies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		assemblyRepo := mock_interfaces.NewMockIAssemblyRepository(ctrl)
		uc := NewReportUseCase(estimateRepo, componentRepo, assemblyRepo, nil)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-2").Return(entities.Estimate{
			ID:   "est-2",
			Kind: entities.EstimateKindHierarchical,
			AssemblyLines: []entities.EstimateAssemblyLine{
				{ID: "al1", AssemblyID: "asm-1", Quantity: 1},
			},
		}, nil)
		expectCatalogLoad(componentRepo)
		assemblyRepo.EXPECT().List(gomock.Any()).Return([]entities.Assembly{{
			ID: "asm-1",
			Lines: []entities.AssemblyComponentLine{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
			},
		}}, nil)

		rate := 50.0
		rows, _, err := uc.CategoryBreakdown(context.Background(), "est-2", &rate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2 PDUs: material 100, labor 2h*50
		if len(rows) != 1 || rows[0].Category != entities.CategoryElectrical || rows[0].Cost != 200 {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})
}

func TestReportUseCase_Variance(t *testing.T) {
	t.Run("over budget project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewReportUseCase(estimateRepo, nil, nil, projectRepo)

		projectRepo.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{
			{ID: "proj-1", Name: "DC East"},
		}, nil)
		estimateRepo.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
			{ID: "est-1", ProjectID: "proj-1", Kind: entities.EstimateKindFlat, Lines: []entities.EstimateLine{
				{ID: "l1", ComponentID: "comp-x", TierID: "tier-std", Quantity: 2000, TotalCost: 100000},
			}, TotalCost: 100000},
		}, nil)
		projectRepo.EXPECT().ListActualCosts(gomock.Any()).Return([]entities.ActualCost{
			{ID: "ac-1", ProjectID: "proj-1", Amount: 75000},
			{ID: "ac-2", ProjectID: "proj-1", Amount: 50000},
		}, nil)
		projectRepo.EXPECT().ListChangeOrders(gomock.Any()).Return(nil, nil)

		rows, issues, err := uc.Variance(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 0 {
			t.Fatalf("expected no issues, got %+v", issues)
		}
		if len(rows) != 1 {
			t.Fatalf("expected one row, got %+v", rows)
		}
		r := rows[0]
		if r.EstimatedCost != 100000 || r.ActualCost != 125000 || r.Variance != 25000 || r.VariancePercentage != 25 {
			t.Fatalf("unexpected row: %+v", r)
		}
		if r.RiskLevel != costing.RiskHigh {
			t.Fatalf("expected high risk, got %q", r.RiskLevel)
		}
	})

	t.Run("approved change orders move baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewReportUseCase(estimateRepo, nil, nil, projectRepo)

		projectRepo.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{
			{ID: "proj-1", Name: "DC East"},
		}, nil)
		estimateRepo.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
			{ID: "est-1", ProjectID: "proj-1", Kind: entities.EstimateKindFlat, Lines: []entities.EstimateLine{
				{ID: "l1", ComponentID: "comp-x", TierID: "tier-std", Quantity: 2000, TotalCost: 100000},
			}, TotalCost: 100000},
		}, nil)
		projectRepo.EXPECT().ListActualCosts(gomock.Any()).Return([]entities.ActualCost{
			{ID: "ac-1", ProjectID: "proj-1", Amount: 125000},
		}, nil)
		projectRepo.EXPECT().ListChangeOrders(gomock.Any()).Return([]entities.ChangeOrder{
			{ID: "co-1", ProjectID: "proj-1", Amount: 25000, Status: entities.ChangeOrderStatusApproved},
			{ID: "co-2", ProjectID: "proj-1", Amount: 99999, Status: entities.ChangeOrderStatusPending},
		}, nil)

		rows, _, err := uc.Variance(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows[0].EstimatedCost != 125000 || rows[0].Variance != 0 {
			t.Fatalf("unexpected row: %+v", rows[0])
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewReportUseCase(nil, nil, nil, projectRepo)

		projectRepo.EXPECT().ListProjects(gomock.Any()).Return(nil, errors.New("db"))

		_, _, err := uc.Variance(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReportUseCase_Regions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewReportUseCase(estimateRepo, nil, nil, projectRepo)

	projectRepo.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{
		{ID: "proj-1", Region: "us-east"},
		{ID: "proj-2"},
	}, nil)
	estimateRepo.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
		{ID: "est-1", ProjectID: "proj-1", Kind: entities.EstimateKindFlat, Lines: []entities.EstimateLine{{ID: "l1", TotalCost: 100}}},
		{ID: "est-2", ProjectID: "proj-2", Kind: entities.EstimateKindFlat, Lines: []entities.EstimateLine{{ID: "l2", TotalCost: 50}}},
	}, nil)

	rows, err := uc.Regions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byRegion := map[string]float64{}
	for _, r := range rows {
		byRegion[r.Region] = r.EstimatedCost
	}
	if byRegion["us-east"] != 100 || byRegion["unspecified"] != 50 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReportUseCase_Trend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewReportUseCase(estimateRepo, nil, nil, projectRepo)
	uc.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	estimateRepo.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
		{ID: "est-1", Kind: entities.EstimateKindFlat, Lines: []entities.EstimateLine{{ID: "l1", TotalCost: 100}}, CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	projectRepo.EXPECT().ListActualCosts(gomock.Any()).Return([]entities.ActualCost{
		{ID: "ac-1", Amount: 40, IncurredAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)

	rows, err := uc.Trend(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %+v", rows)
	}
	if rows[0].Month != "2026-06" || rows[0].EstimatedCost != 0 || rows[0].ActualCost != 0 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Month != "2026-07" || rows[1].EstimatedCost != 100 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].Month != "2026-08" || rows[2].ActualCost != 40 {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}
