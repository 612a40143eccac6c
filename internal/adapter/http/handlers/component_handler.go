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
	errInvalidComponentPayload = pkg.NewDomainErrorSimple("INVALID_COMPONENT_INPUT", "Invalid component payload", http.StatusBadRequest)
	errInvalidTierPayload      = pkg.NewDomainErrorSimple("INVALID_TIER_INPUT", "Invalid quality tier payload", http.StatusBadRequest)
)

// ComponentHandler handles HTTP requests for the component catalog.

type ComponentHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewComponentHandler(uc usecase.ICatalogUseCase) *ComponentHandler {
	return &ComponentHandler{usecase: uc}
}

func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var payload request.ComponentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComponentPayload.HTTPStatus, errInvalidComponentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateComponent(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComponent(created))
}

func (h *ComponentHandler) GetComponent(c *gin.Context) {
	component, tiers, err := h.usecase.GetComponent(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComponentWithTiers(component, tiers))
}

func (h *ComponentHandler) ListComponents(c *gin.Context) {
	components, err := h.usecase.ListComponents(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComponents(components))
}

func (h *ComponentHandler) AddQualityTier(c *gin.Context) {
	var payload request.TierCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTierPayload.HTTPStatus, errInvalidTierPayload.ToHTTPError())
		return
	}

	tier, err := h.usecase.AddQualityTier(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTier(tier))
}

func (h *ComponentHandler) ListTiers(c *gin.Context) {
	tiers, err := h.usecase.ListTiers(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTiers(tiers))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidComponentID),
		errors.Is(err, usecase.ErrInvalidComponentName),
		errors.Is(err, usecase.ErrInvalidUnit),
		errors.Is(err, usecase.ErrInvalidLaborHours),
		errors.Is(err, usecase.ErrInvalidTierName),
		errors.Is(err, usecase.ErrInvalidUnitCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComponentNotFound):
		return pkg.NewDomainErrorSimple("COMPONENT_NOT_FOUND", "Component not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
