package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hyperion_estimating/internal/adapter/http/handlers/mocks"
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{]`))
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
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateProject(gomock.Any(), "DC Campus North", "us-east").Return(
			entities.Project{ID: "proj-1", Name: "DC Campus North", Region: "us-east"}, nil,
		)

		body := `{"name":"DC Campus North","region":"us-east"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "proj-1" || resp["region"] != "us-east" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_RecordActualCost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("record success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/actual-costs", h.RecordActualCost)

		uc.EXPECT().RecordActualCost(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordActualCostInput{})).DoAndReturn(
			func(_ any, in usecase.RecordActualCostInput) (entities.ActualCost, error) {
				if in.ProjectID != "proj-1" || in.Amount != 1200.50 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ActualCost{ID: "ac-1", ProjectID: in.ProjectID, Amount: in.Amount}, nil
			},
		)

		body := `{"amount":1200.50,"category":"electrical"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/actual-costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/actual-costs", h.RecordActualCost)

		uc.EXPECT().RecordActualCost(gomock.Any(), gomock.Any()).Return(entities.ActualCost{}, usecase.ErrProjectNotFound)

		body := `{"amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/ghost/actual-costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ChangeOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add change order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/change-orders", h.AddChangeOrder)

		uc.EXPECT().AddChangeOrder(gomock.Any(), "proj-1", "Extra generator pad", 25000.0).Return(
			entities.ChangeOrder{ID: "co-1", ProjectID: "proj-1", Status: entities.ChangeOrderStatusPending, Amount: 25000},
			nil,
		)

		body := `{"description":"Extra generator pad","amount":25000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/change-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.ChangeOrderStatusPending) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("approve change order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/change-orders/:change_order_id/approve", h.ApproveChangeOrder)

		uc.EXPECT().ApproveChangeOrder(gomock.Any(), "co-1").Return(
			entities.ChangeOrder{ID: "co-1", ProjectID: "proj-1", Status: entities.ChangeOrderStatusApproved},
			nil,
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/proj-1/change-orders/co-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.ChangeOrderStatusApproved) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("approve already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/change-orders/:change_order_id/approve", h.ApproveChangeOrder)

		uc.EXPECT().ApproveChangeOrder(gomock.Any(), "co-1").Return(entities.ChangeOrder{}, usecase.ErrChangeOrderNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/proj-1/change-orders/co-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "CHANGE_ORDER_NOT_PENDING" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(usecase.ErrChangeOrderNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
