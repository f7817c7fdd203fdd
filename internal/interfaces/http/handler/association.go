package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roronge/iuran04/internal/application/association"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// AssociationHandler handles association management HTTP requests.
// All routes require the super admin role.
type AssociationHandler struct {
	BaseHandler
	assocService *association.AssociationService
}

// NewAssociationHandler creates a new association handler
func NewAssociationHandler(assocService *association.AssociationService) *AssociationHandler {
	return &AssociationHandler{assocService: assocService}
}

// RegisterRoutes registers association routes
func (h *AssociationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	assoc := rg.Group("/associations")
	assoc.Use(middleware.RequireRoles(string(identity.RoleSuperAdmin)))
	{
		assoc.POST("", h.Create)
		assoc.GET("", h.List)
		assoc.GET("/:id", h.GetByID)
		assoc.PUT("/:id", h.Update)
		assoc.POST("/:id/activate", h.Activate)
		assoc.POST("/:id/deactivate", h.Deactivate)
		assoc.GET("/:id/stats", h.Stats)
	}
}

// Create registers a new RT unit
func (h *AssociationHandler) Create(c *gin.Context) {
	var req association.CreateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.assocService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List lists associations with paging and search
func (h *AssociationHandler) List(c *gin.Context) {
	var query struct {
		Page     int    `form:"page"`
		PageSize int    `form:"page_size"`
		Search   string `form:"search"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.PageSize > 0 {
		filter.PageSize = query.PageSize
	}
	filter.Search = query.Search

	result, total, err := h.assocService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result, total, filter.Page, filter.PageSize)
}

// GetByID returns one association
func (h *AssociationHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid association ID")
		return
	}

	result, err := h.assocService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update changes an association's name and address
func (h *AssociationHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid association ID")
		return
	}

	var req association.UpdateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.assocService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Activate marks an association active
func (h *AssociationHandler) Activate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid association ID")
		return
	}

	result, err := h.assocService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Deactivate marks an association inactive
func (h *AssociationHandler) Deactivate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid association ID")
		return
	}

	result, err := h.assocService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Stats returns household and admin counts for one association
func (h *AssociationHandler) Stats(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid association ID")
		return
	}

	result, err := h.assocService.Stats(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
