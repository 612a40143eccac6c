package usecase

import (
	"context"
	"errors"
	"testing"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
	mock_interfaces "hyperion_estimating/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{Name: "  ", Kind: entities.EstimateKindFlat})
		if !errors.Is(err, ErrInvalidEstimateName) {
			t.Fatalf("expected ErrInvalidEstimateName, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{Name: "dc-east", Kind: "organic"})
		if !errors.Is(err, ErrInvalidEstimateKind) {
			t.Fatalf("expected ErrInvalidEstimateKind, got %v", err)
		}
	})

	t.Run("flat estimate rejects assembly lines", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name:          "dc-east",
			Kind:          entities.EstimateKindFlat,
			AssemblyLines: []EstimateAssemblyLineInput{{AssemblyID: "asm-1", Quantity: 1}},
		})
		if !errors.Is(err, costing.ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, nil, projectRepo)

		projectRepo.EXPECT().GetProjectByID(gomock.Any(), "proj-ghost").Return(entities.Project{}, nil)

		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name:      "dc-east",
			ProjectID: "proj-ghost",
			Kind:      entities.EstimateKindFlat,
		})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("flat create with partial accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, nil, nil)

		expectCatalogLoad(componentRepo)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Kind != entities.EstimateKindFlat || len(e.Lines) != 2 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				// 2*50 + 1*200
				if e.TotalCost != 300 {
					t.Fatalf("unexpected total: %v", e.TotalCost)
				}
				return e, nil
			},
		)

		out, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name: "dc-east",
			Kind: entities.EstimateKindFlat,
			Lines: []EstimateLineInput{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
				{ComponentID: "comp-y", TierID: "tier-prem", Quantity: 1},
				{ComponentID: "comp-ghost", TierID: "tier-std", Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Accepted != 2 || len(out.Rejected) != 1 {
			t.Fatalf("unexpected outcome: accepted=%d rejected=%+v", out.Accepted, out.Rejected)
		}
		if out.Rejected[0].Kind != costing.IssueReferenceNotFound {
			t.Fatalf("unexpected issue kind: %+v", out.Rejected[0])
		}
	})

	t.Run("atomic create rejects whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		uc := NewEstimateUseCase(nil, componentRepo, nil, nil)

		expectCatalogLoad(componentRepo)

		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name:   "dc-east",
			Kind:   entities.EstimateKindFlat,
			Atomic: true,
			Lines: []EstimateLineInput{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
				{ComponentID: "comp-ghost", TierID: "tier-std", Quantity: 1},
			},
		})
		if !errors.Is(err, costing.ErrBatchRejected) {
			t.Fatalf("expected ErrBatchRejected, got %v", err)
		}
	})

	t.Run("hierarchical create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		assemblyRepo := mock_interfaces.NewMockIAssemblyRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, assemblyRepo, nil)

		expectCatalogLoad(componentRepo)
		assemblyRepo.EXPECT().List(gomock.Any()).Return([]entities.Assembly{{
			ID:   "asm-1",
			Name: "compute rack",
			Lines: []entities.AssemblyComponentLine{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
				{ComponentID: "comp-y", TierID: "tier-prem", Quantity: 1},
			},
		}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.AssemblyLines) != 1 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				// 3 racks: material 3*300, labor 3*5h*50
				if e.TotalCost != 1650 {
					t.Fatalf("unexpected total: %v", e.TotalCost)
				}
				return e, nil
			},
		)

		rate := 50.0
		out, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name:          "dc-east",
			Kind:          entities.EstimateKindHierarchical,
			AssemblyLines: []EstimateAssemblyLineInput{{AssemblyID: "asm-1", Quantity: 3}},
			LaborRate:     &rate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Accepted != 1 || len(out.Rejected) != 0 {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("hierarchical without labor rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		assemblyRepo := mock_interfaces.NewMockIAssemblyRepository(ctrl)
		uc := NewEstimateUseCase(nil, componentRepo, assemblyRepo, nil)

		expectCatalogLoad(componentRepo)
		assemblyRepo.EXPECT().List(gomock.Any()).Return([]entities.Assembly{{
			ID: "asm-1",
			Lines: []entities.AssemblyComponentLine{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 1},
			},
		}}, nil)

		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{
			Name:          "dc-east",
			Kind:          entities.EstimateKindHierarchical,
			AssemblyLines: []EstimateAssemblyLineInput{{AssemblyID: "asm-1", Quantity: 1}},
		})
		if !errors.Is(err, costing.ErrMissingLaborRate) {
			t.Fatalf("expected ErrMissingLaborRate, got %v", err)
		}
	})
}

func TestEstimateUseCase_AppendLines(t *testing.T) {
	flatEstimate := func() entities.Estimate {
		return entities.Estimate{
			ID:   "est-1",
			Name: "dc-east",
			Kind: entities.EstimateKindFlat,
			Lines: []entities.EstimateLine{
				{ID: "line-1", ComponentID: "comp-x", TierID: "tier-std", Quantity: 2, TotalCost: 100},
			},
			TotalCost: 100,
		}
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.AppendLines(context.Background(), "  ", nil, false)
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-ghost").Return(entities.Estimate{}, nil)

		_, err := uc.AppendLines(context.Background(), "est-ghost", nil, false)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("append recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(flatEstimate(), nil)
		expectCatalogLoad(componentRepo)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.Lines) != 2 {
					t.Fatalf("expected 2 lines, got %+v", e.Lines)
				}
				// 100 existing + 1*200 appended
				if e.TotalCost != 300 {
					t.Fatalf("unexpected total: %v", e.TotalCost)
				}
				if e.UpdatedAt.IsZero() {
					t.Fatalf("expected updated timestamp")
				}
				return e, nil
			},
		)

		out, err := uc.AppendLines(context.Background(), "est-1", []EstimateLineInput{
			{ComponentID: "comp-y", TierID: "tier-prem", Quantity: 1},
		}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Accepted != 1 {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, nil, nil)

		h := flatEstimate()
		h.Kind = entities.EstimateKindHierarchical
		h.Lines = nil
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(h, nil)
		expectCatalogLoad(componentRepo)

		_, err := uc.AppendLines(context.Background(), "est-1", []EstimateLineInput{
			{ComponentID: "comp-x", TierID: "tier-std", Quantity: 1},
		}, false)
		if !errors.Is(err, costing.ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
	})
}

func TestEstimateUseCase_AppendAssemblyLines(t *testing.T) {
	t.Run("append to hierarchical", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		assemblyRepo := mock_interfaces.NewMockIAssemblyRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, assemblyRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-2").Return(entities.Estimate{
			ID:   "est-2",
			Name: "dc-west",
			Kind: entities.EstimateKindHierarchical,
		}, nil)
		expectCatalogLoad(componentRepo)
		assemblyRepo.EXPECT().List(gomock.Any()).Return([]entities.Assembly{{
			ID: "asm-1",
			Lines: []entities.AssemblyComponentLine{
				{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
				{ComponentID: "comp-y", TierID: "tier-prem", Quantity: 1},
			},
		}}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.AssemblyLines) != 1 || e.TotalCost != 550 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				return e, nil
			},
		)

		rate := 50.0
		out, err := uc.AppendAssemblyLines(context.Background(), "est-2", []EstimateAssemblyLineInput{
			{AssemblyID: "asm-1", Quantity: 1},
		}, &rate, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Accepted != 1 {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("unknown assembly partial accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		componentRepo := mock_interfaces.NewMockIComponentRepository(ctrl)
		assemblyRepo := mock_interfaces.NewMockIAssemblyRepository(ctrl)
		uc := NewEstimateUseCase(repo, componentRepo, assemblyRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-2").Return(entities.Estimate{
			ID:   "est-2",
			Kind: entities.EstimateKindHierarchical,
		}, nil)
		expectCatalogLoad(componentRepo)
		assemblyRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			},
		)

		rate := 50.0
		out, err := uc.AppendAssemblyLines(context.Background(), "est-2", []EstimateAssemblyLineInput{
			{AssemblyID: "asm-ghost", Quantity: 1},
		}, &rate, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Accepted != 0 || len(out.Rejected) != 1 {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-ghost").Return(entities.Estimate{}, nil)

		err := uc.Delete(context.Background(), "est-ghost")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		if err := uc.Delete(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_ListByProjectID(t *testing.T) {
	t.Run("empty project id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.ListByProjectID(context.Background(), " ")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Estimate{{ID: "est-1"}}, nil)

		got, err := uc.ListByProjectID(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "est-1" {
			t.Fatalf("unexpected estimates: %+v", got)
		}
	})
}
