package handlers

import (
	"errors"
	"hyperion_estimating/internal/adapter/http/dto/request"
	"hyperion_estimating/internal/adapter/http/dto/response"
	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/usecase"
	"hyperion_estimating/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates.
//
// Append endpoints run in partial-accept mode unless the payload sets atomic:
// accepted lines are persisted and every rejected line comes back with its
// reason in the outcome body.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.respondError(c, outcome, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAppendOutcome(outcome))
}

func (h *EstimateHandler) AppendLines(c *gin.Context) {
	var payload request.EstimateAppendLinesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.AppendLines(c.Request.Context(), c.Param("id"), payload.ToInputs(), payload.Atomic)
	if err != nil {
		h.respondError(c, outcome, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppendOutcome(outcome))
}

func (h *EstimateHandler) AppendAssemblyLines(c *gin.Context) {
	var payload request.EstimateAppendAssembliesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.AppendAssemblyLines(c.Request.Context(), c.Param("id"), payload.ToInputs(), payload.LaborRate, payload.Atomic)
	if err != nil {
		h.respondError(c, outcome, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppendOutcome(outcome))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) ListByProject(c *gin.Context) {
	estimates, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// respondError keeps atomic whole-batch rejections distinct: the client gets
// the per-line reasons it needs to fix the payload, not an opaque 500.
func (h *EstimateHandler) respondError(c *gin.Context, outcome usecase.AppendOutcome, err error) {
	if errors.Is(err, costing.ErrBatchRejected) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    "BATCH_REJECTED",
			"message": "Atomic append rejected: one or more lines are invalid",
			"issues":  response.FromIssues(outcome.Rejected),
		})
		return
	}
	appErr := mapEstimateError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateName),
		errors.Is(err, usecase.ErrInvalidEstimateKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, costing.ErrMissingLaborRate), errors.Is(err, costing.ErrInvalidLaborRate):
		return pkg.NewDomainErrorSimple("INVALID_LABOR_RATE", "A labor rate > 0 is required for hierarchical estimates", http.StatusBadRequest)
	case errors.Is(err, costing.ErrKindMismatch):
		return pkg.NewDomainErrorSimple("ESTIMATE_KIND_MISMATCH", "Line type does not match the estimate kind", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
