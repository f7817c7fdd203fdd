package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roronge/iuran04/internal/application/dues"
	domainidentity "github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// DuesHandler handles dues category, billing, generation and
// settlement HTTP requests
type DuesHandler struct {
	BaseHandler
	categoryService   *dues.CategoryService
	billingService    *dues.BillingService
	generationService *dues.GenerationService
	settlementService *dues.SettlementService
}

// NewDuesHandler creates a new dues handler
func NewDuesHandler(
	categoryService *dues.CategoryService,
	billingService *dues.BillingService,
	generationService *dues.GenerationService,
	settlementService *dues.SettlementService,
) *DuesHandler {
	return &DuesHandler{
		categoryService:   categoryService,
		billingService:    billingService,
		generationService: generationService,
		settlementService: settlementService,
	}
}

// RegisterRoutes registers dues routes. Residents can only read the
// bills of their own household.
func (h *DuesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	duesGroup := rg.Group("/dues")

	duesGroup.GET("/bills/me",
		middleware.RequireRoles(string(domainidentity.RoleResident)), h.MyBills)

	admin := duesGroup.Group("")
	admin.Use(middleware.RequireRoles(string(domainidentity.RoleAdmin)))
	{
		admin.POST("/categories", h.CreateCategory)
		admin.GET("/categories", h.ListCategories)
		admin.GET("/categories/:id", h.GetCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.POST("/generate", h.Generate)
		admin.GET("/bills", h.ListByPeriod)
		admin.GET("/households/:id/bills", h.ListByHousehold)
		admin.POST("/bills/:id/settle", h.SettleBill)
		admin.POST("/households/:id/settle", h.SettleGroup)
	}
}

// CreateCategory creates a dues category
func (h *DuesHandler) CreateCategory(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dues.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.categoryService.Create(c.Request.Context(), associationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListCategories lists dues categories with paging
func (h *DuesHandler) ListCategories(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

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

	result, total, err := h.categoryService.List(c.Request.Context(), associationID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result, total, filter.Page, filter.PageSize)
}

// GetCategory returns one dues category
func (h *DuesHandler) GetCategory(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	result, err := h.categoryService.GetByID(c.Request.Context(), associationID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateCategory changes a dues category. The new amount only affects
// bills generated afterwards.
func (h *DuesHandler) UpdateCategory(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req dues.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.categoryService.Update(c.Request.Context(), associationID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteCategory removes a dues category
func (h *DuesHandler) DeleteCategory(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), associationID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Generate issues bills for one period across all active households.
// Rerunning the same period only creates the missing bills.
func (h *DuesHandler) Generate(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dues.GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.generationService.Generate(c.Request.Context(), associationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListByPeriod lists all bill groups for one month
func (h *DuesHandler) ListByPeriod(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query struct {
		Month int `form:"month" binding:"required,min=1,max=12"`
		Year  int `form:"year" binding:"required,min=1"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "month and year query parameters are required")
		return
	}

	result, err := h.billingService.ListByPeriod(c.Request.Context(), associationID, query.Month, query.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListByHousehold lists one household's bill history
func (h *DuesHandler) ListByHousehold(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	householdID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	result, err := h.billingService.ListByHousehold(c.Request.Context(), associationID, householdID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// MyBills lists the resident's own bill history
func (h *DuesHandler) MyBills(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	householdID, err := currentHouseholdID(c)
	if err != nil {
		h.Forbidden(c, "Account is not linked to a household")
		return
	}

	result, err := h.billingService.ListByHousehold(c.Request.Context(), associationID, householdID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SettleBill records a payment for a single bill
func (h *DuesHandler) SettleBill(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	billID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	result, err := h.settlementService.SettleBill(c.Request.Context(), associationID, billID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SettleGroup records payments for all of a household's unpaid bills
// in one period, reporting a per-bill outcome
func (h *DuesHandler) SettleGroup(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	householdID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid household ID")
		return
	}

	var req struct {
		Month int `json:"month" binding:"required,min=1,max=12"`
		Year  int `json:"year" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.settlementService.SettleGroup(c.Request.Context(), associationID, householdID, req.Month, req.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
