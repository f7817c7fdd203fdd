package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/application/identity"
	domainidentity "github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// UserHandler handles account management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers identity routes. Admin creation is reserved
// for the super admin; resident accounts are managed by the RT admin.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ident := rg.Group("/identity")

	ident.POST("/admins",
		middleware.RequireRoles(string(domainidentity.RoleSuperAdmin)), h.CreateAdmin)

	users := ident.Group("")
	users.Use(middleware.RequireRoles(string(domainidentity.RoleAdmin)))
	{
		users.POST("/residents", h.CreateResident)
		users.GET("/users", h.List)
		users.GET("/users/:id", h.GetByID)
		users.PUT("/users/:id/email", h.ChangeEmail)
		users.PUT("/users/:id/password", h.ResetPassword)
		users.POST("/users/:id/activate", h.Activate)
		users.POST("/users/:id/deactivate", h.Deactivate)
	}
}

// CreateAdmin creates an RT admin account
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var req identity.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.userService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// CreateResident creates a resident account linked to a household
func (h *UserHandler) CreateResident(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identity.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.userService.CreateResident(c.Request.Context(), associationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List lists accounts in the caller's association
func (h *UserHandler) List(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter identity.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, total, err := h.userService.List(c.Request.Context(), associationID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result, total, filter.Page, filter.PageSize)
}

// GetByID returns one account
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	result, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ChangeEmail changes an account's login email
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identity.ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.userService.ChangeEmail(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ResetPassword sets a new password for an account
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identity.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Activate re-enables an account
func (h *UserHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.userService.Activate)
}

// Deactivate disables an account
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.userService.Deactivate)
}

func (h *UserHandler) changeStatus(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*identity.UserResponse, error)) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	result, err := op(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
