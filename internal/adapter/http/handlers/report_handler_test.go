package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hyperion_estimating/internal/adapter/http/handlers/mocks"
	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_CategoryBreakdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("breakdown without labor rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/estimates/:id/categories", h.CategoryBreakdown)

		rows := []costing.CategoryRow{
			{Category: "electrical", Cost: 400, LaborHours: 8, Percentage: 40},
			{Category: "mechanical", Cost: 600, LaborHours: 3, Percentage: 60},
		}
		uc.EXPECT().CategoryBreakdown(gomock.Any(), "est-1", nil).Return(rows, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/estimates/est-1/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["estimate_id"] != "est-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if got, ok := resp["rows"].([]any); !ok || len(got) != 2 {
			t.Fatalf("expected two rows, got: %s", w.Body.String())
		}
	})

	t.Run("breakdown with labor rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/estimates/:id/categories", h.CategoryBreakdown)

		uc.EXPECT().CategoryBreakdown(gomock.Any(), "est-1", gomock.Cond(func(rate any) bool {
			p, ok := rate.(*float64)
			return ok && p != nil && *p == 65
		})).Return([]costing.CategoryRow{}, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/estimates/est-1/categories?labor_rate=65", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid labor rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/estimates/:id/categories", h.CategoryBreakdown)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/estimates/est-1/categories?labor_rate=free", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/estimates/:id/categories", h.CategoryBreakdown)

		uc.EXPECT().CategoryBreakdown(gomock.Any(), "ghost", nil).Return(nil, nil, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/estimates/ghost/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReportHandler_Variance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("variance rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/variance", h.Variance)

		rows := []costing.VarianceRow{{
			ProjectID:          "proj-1",
			ProjectName:        "DC Campus North",
			Region:             "us-east",
			EstimatedCost:      100000,
			ActualCost:         125000,
			Variance:           25000,
			VariancePercentage: 25,
			RiskLevel:          costing.RiskHigh,
		}}
		uc.EXPECT().Variance(gomock.Any()).Return(rows, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/variance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		got, ok := resp["rows"].([]any)
		if !ok || len(got) != 1 {
			t.Fatalf("expected one row, got: %s", w.Body.String())
		}
		row := got[0].(map[string]any)
		if row["risk_level"] != string(costing.RiskHigh) || row["variance"] != float64(25000) {
			t.Fatalf("unexpected row: %s", w.Body.String())
		}
	})
}

func TestReportHandler_Regions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/reports/regions", h.Regions)

	rows := []costing.RegionRow{
		{Region: "us-east", EstimatedCost: 100, ProjectCount: 1, Percentage: 66.67},
		{Region: "unspecified", EstimatedCost: 50, ProjectCount: 1, Percentage: 33.33},
	}
	uc.EXPECT().Regions(gomock.Any()).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/regions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReportHandler_Trend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/trend", h.Trend)

		uc.EXPECT().Trend(gomock.Any(), 0).Return(make([]costing.TrendRow, 6), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/trend", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["months"] != float64(6) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("explicit window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/trend", h.Trend)

		uc.EXPECT().Trend(gomock.Any(), 3).Return([]costing.TrendRow{
			{Month: "2026-06"}, {Month: "2026-07"}, {Month: "2026-08"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/trend?months=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("garbage months falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/trend", h.Trend)

		uc.EXPECT().Trend(gomock.Any(), 0).Return(make([]costing.TrendRow, 6), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/trend?months=soon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestMapReportError(t *testing.T) {
	if got := mapReportError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapReportError(costing.ErrInvalidLaborRate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapReportError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
