package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/application/household"
	domainidentity "github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// HouseholdHandler handles household management HTTP requests
type HouseholdHandler struct {
	BaseHandler
	householdService *household.HouseholdService
}

// NewHouseholdHandler creates a new household handler
func NewHouseholdHandler(householdService *household.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{householdService: householdService}
}

// RegisterRoutes registers household routes. Residents only see their
// own household; management is admin-only.
func (h *HouseholdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	households := rg.Group("/households")

	households.GET("/me",
		middleware.RequireRoles(string(domainidentity.RoleResident)), h.Mine)

	admin := households.Group("")
	admin.Use(middleware.RequireRoles(string(domainidentity.RoleAdmin)))
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:id", h.GetByID)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/:id/activate", h.Activate)
		admin.POST("/:id/deactivate", h.Deactivate)
		admin.POST("/:id/link-user", h.LinkUser)
	}
}

// Create registers a new household
func (h *HouseholdHandler) Create(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req household.CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.householdService.Create(c.Request.Context(), associationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List lists households with paging and filters
func (h *HouseholdHandler) List(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter household.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, total, err := h.householdService.List(c.Request.Context(), associationID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result, total, filter.Page, filter.PageSize)
}

// GetByID returns one household
func (h *HouseholdHandler) GetByID(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	result, err := h.householdService.GetByID(c.Request.Context(), associationID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Mine returns the resident's own household
func (h *HouseholdHandler) Mine(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.householdService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update changes a household's registration details
func (h *HouseholdHandler) Update(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	var req household.UpdateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.householdService.Update(c.Request.Context(), associationID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Activate marks a household as occupied
func (h *HouseholdHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.householdService.Activate)
}

// Deactivate marks a household as vacant
func (h *HouseholdHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.householdService.Deactivate)
}

func (h *HouseholdHandler) changeStatus(c *gin.Context, op func(ctx context.Context, associationID, id uuid.UUID) (*household.HouseholdResponse, error)) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	result, err := op(c.Request.Context(), associationID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// LinkUser links a resident account to a household
func (h *HouseholdHandler) LinkUser(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.householdService.LinkUser(c.Request.Context(), associationID, id, req.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a household
func (h *HouseholdHandler) Delete(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	if err := h.householdService.Delete(c.Request.Context(), associationID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
