package handlers

import (
	"errors"
	request "hyperion_estimating/internal/adapter/http/dto/request"
	response "hyperion_estimating/internal/adapter/http/dto/response"
	"hyperion_estimating/internal/usecase"
	"hyperion_estimating/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAssemblyPayload = pkg.NewDomainErrorSimple("INVALID_ASSEMBLY_INPUT", "Invalid assembly payload", http.StatusBadRequest)
	errInvalidLaborRate       = pkg.NewDomainErrorSimple("INVALID_LABOR_RATE", "labor_rate must be a number >= 0", http.StatusBadRequest)
)

// AssemblyHandler handles HTTP requests for reusable assemblies.

type AssemblyHandler struct {
	usecase usecase.IAssemblyUseCase
}

func NewAssemblyHandler(uc usecase.IAssemblyUseCase) *AssemblyHandler {
	return &AssemblyHandler{usecase: uc}
}

func (h *AssemblyHandler) CreateAssembly(c *gin.Context) {
	var payload request.AssemblyCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssemblyPayload.HTTPStatus, errInvalidAssemblyPayload.ToHTTPError())
		return
	}

	created, issues, err := h.usecase.CreateAssembly(c.Request.Context(), payload.Name, payload.Description, payload.ToLines())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAssemblyLines) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "INVALID_ASSEMBLY_LINES",
				"message": "One or more assembly lines are invalid",
				"issues":  response.FromIssues(issues),
			})
			return
		}
		appErr := mapAssemblyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAssembly(created))
}

func (h *AssemblyHandler) GetAssembly(c *gin.Context) {
	a, err := h.usecase.GetAssembly(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssemblyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssembly(a))
}

func (h *AssemblyHandler) ListAssemblies(c *gin.Context) {
	assemblies, err := h.usecase.ListAssemblies(c.Request.Context())
	if err != nil {
		appErr := mapAssemblyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssemblies(assemblies))
}

// GetTotals prices an assembly at the labor_rate query parameter. The rate is
// mandatory: assemblies carry labor hours, never labor cost.
func (h *AssemblyHandler) GetTotals(c *gin.Context) {
	rateParam := c.Query("labor_rate")
	if rateParam == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_LABOR_RATE", "labor_rate query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	rate, err := strconv.ParseFloat(rateParam, 64)
	if err != nil || rate < 0 {
		c.JSON(errInvalidLaborRate.HTTPStatus, errInvalidLaborRate.ToHTTPError())
		return
	}

	id := c.Param("id")
	totals, issues, err := h.usecase.ComputeTotals(c.Request.Context(), id, rate)
	if err != nil {
		appErr := mapAssemblyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssemblyTotals(id, rate, totals, issues))
}

func mapAssemblyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssemblyID),
		errors.Is(err, usecase.ErrInvalidAssemblyName),
		errors.Is(err, usecase.ErrNoAssemblyLines):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssemblyNotFound):
		return pkg.NewDomainErrorSimple("ASSEMBLY_NOT_FOUND", "Assembly not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
