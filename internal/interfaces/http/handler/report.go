package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roronge/iuran04/internal/application/report"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
)

// ReportHandler handles reporting HTTP requests. All routes are
// admin-only.
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.RequireRoles(string(identity.RoleAdmin)))
	{
		reports.GET("/monthly", h.MonthlyRecap)
	}
}

// MonthlyRecap returns the per-category collection recap for one month
func (h *ReportHandler) MonthlyRecap(c *gin.Context) {
	associationID, err := currentAssociationID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter report.RecapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "month and year query parameters are required")
		return
	}

	result, err := h.reportService.MonthlyRecap(c.Request.Context(), associationID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
