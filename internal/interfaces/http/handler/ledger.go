package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roronge/iuran04/internal/application/ledger"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// LedgerHandler handles cash-book HTTP requests. All routes are
// admin-only.
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledger.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *ledger.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// RegisterRoutes registers cash-book routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lg := rg.Group("/ledger")
	lg.Use(middleware.RequireRoles(string(identity.RoleAdmin)))
	{
		lg.POST("/entries", h.CreateEntry)
		lg.GET("/entries", h.List)
		lg.DELETE("/entries/:id", h.Delete)
		lg.GET("/balance", h.Balance)
	}
}

// CreateEntry records a manual cash-book entry
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ledger.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.ledgerService.CreateEntry(c.Request.Context(), associationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List lists cash-book entries with paging and filters
func (h *LedgerHandler) List(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter ledger.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, total, err := h.ledgerService.List(c.Request.Context(), associationID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result, total, filter.Page, filter.PageSize)
}

// Delete removes a manual cash-book entry. Entries written by bill
// settlement cannot be deleted.
func (h *LedgerHandler) Delete(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.ledgerService.Delete(c.Request.Context(), associationID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Balance returns the association's current cash balance
func (h *LedgerHandler) Balance(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.ledgerService.Balance(c.Request.Context(), associationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
