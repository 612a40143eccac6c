package handlers

import (
	"errors"
	response "hyperion_estimating/internal/adapter/http/dto/response"
	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/usecase"
	"hyperion_estimating/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for portfolio reports. Reports are
// derived on read; nothing here mutates state.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// CategoryBreakdown returns the per-category cost split of one estimate.
// labor_rate is only consulted for hierarchical estimates.
func (h *ReportHandler) CategoryBreakdown(c *gin.Context) {
	var rate *float64
	if raw := c.Query("labor_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(errInvalidLaborRate.HTTPStatus, errInvalidLaborRate.ToHTTPError())
			return
		}
		rate = &v
	}

	id := c.Param("id")
	rows, issues, err := h.usecase.CategoryBreakdown(c.Request.Context(), id, rate)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CategoryReportResponse{
		EstimateID: id,
		Rows:       rows,
		Issues:     response.FromIssues(issues),
	})
}

func (h *ReportHandler) Variance(c *gin.Context) {
	rows, issues, err := h.usecase.Variance(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.VarianceReportResponse{
		Rows:   rows,
		Issues: response.FromIssues(issues),
	})
}

func (h *ReportHandler) Regions(c *gin.Context) {
	rows, err := h.usecase.Regions(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RegionReportResponse{Rows: rows})
}

// Trend returns the trailing monthly estimated/actual series. months defaults
// to 6 when absent or not a positive integer.
func (h *ReportHandler) Trend(c *gin.Context) {
	months := 0
	if raw := c.Query("months"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			months = v
		}
	}

	rows, err := h.usecase.Trend(c.Request.Context(), months)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TrendReportResponse{Months: len(rows), Rows: rows})
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, costing.ErrMissingLaborRate), errors.Is(err, costing.ErrInvalidLaborRate):
		return pkg.NewDomainErrorSimple("INVALID_LABOR_RATE", "A labor rate > 0 is required for hierarchical estimates", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
