package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hyperion_estimating/internal/adapter/http/handlers/mocks"
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestComponentHandler_CreateComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.POST("/v1/components", h.CreateComponent)

		req := httptest.NewRequest(http.MethodPost, "/v1/components", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.POST("/v1/components", h.CreateComponent)

		now := time.Now().UTC()
		uc.EXPECT().CreateComponent(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateComponentInput{})).DoAndReturn(
			func(_ any, in usecase.CreateComponentInput) (entities.Component, error) {
				if in.Name != "PDU 30A" || in.Category != entities.CategoryElectrical {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Component{ID: "comp-1", Name: in.Name, Category: in.Category, Unit: in.Unit, LaborHours: in.LaborHours, CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		body := `{"name":"PDU 30A","category":"electrical","unit":"each","labor_hours":1.5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/components", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "comp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase validation mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.POST("/v1/components", h.CreateComponent)

		uc.EXPECT().CreateComponent(gomock.Any(), gomock.Any()).Return(entities.Component{}, usecase.ErrInvalidLaborHours)

		body := `{"name":"PDU","unit":"each","labor_hours":-1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/components", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestComponentHandler_GetComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.GET("/v1/components/:id", h.GetComponent)

		uc.EXPECT().GetComponent(gomock.Any(), "comp-1").Return(
			entities.Component{ID: "comp-1", Name: "PDU 30A"},
			[]entities.QualityTier{{ID: "tier-1", ComponentID: "comp-1", Name: "standard", UnitCost: 50}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/components/comp-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		tiers, ok := resp["tiers"].([]any)
		if !ok || len(tiers) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.GET("/v1/components/:id", h.GetComponent)

		uc.EXPECT().GetComponent(gomock.Any(), "ghost").Return(entities.Component{}, nil, usecase.ErrComponentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/components/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestComponentHandler_AddQualityTier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewComponentHandler(uc)

		r := gin.New()
		r.POST("/v1/components/:id/tiers", h.AddQualityTier)

		uc.EXPECT().AddQualityTier(gomock.Any(), "comp-1", gomock.AssignableToTypeOf(usecase.CreateTierInput{})).Return(
			entities.QualityTier{ID: "tier-1", ComponentID: "comp-1", Name: "premium", UnitCost: 200},
			nil,
		)

		body := `{"name":"premium","unit_cost":200}`
		req := httptest.NewRequest(http.MethodPost, "/v1/components/comp-1/tiers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidUnitCost); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrComponentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
