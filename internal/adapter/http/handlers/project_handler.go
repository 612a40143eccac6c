package handlers

import (
	"errors"
	request "hyperion_estimating/internal/adapter/http/dto/request"
	response "hyperion_estimating/internal/adapter/http/dto/response"
	"hyperion_estimating/internal/usecase"
	"hyperion_estimating/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for projects and their reporting
// satellites (actual costs, change orders).

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProject(c.Request.Context(), payload.Name, payload.Region)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) RecordActualCost(c *gin.Context) {
	var payload request.ActualCostCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	ac, err := h.usecase.RecordActualCost(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActualCost(ac))
}

func (h *ProjectHandler) AddChangeOrder(c *gin.Context) {
	var payload request.ChangeOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.AddChangeOrder(c.Request.Context(), c.Param("id"), payload.Description, payload.Amount)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

func (h *ProjectHandler) ApproveChangeOrder(c *gin.Context) {
	co, err := h.usecase.ApproveChangeOrder(c.Request.Context(), c.Param("change_order_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidChangeOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotPending):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_PENDING", "Change order was already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
