package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles the dashboard headline figures
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(scopedContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// TopDebtors handles the highest-due tenants list
func (h *DashboardHandler) TopDebtors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	debtors, err := h.dashboardService.TopDebtors(scopedContext(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top debtors retrieved successfully", debtors)
}

// CollectionTrend handles the monthly collection chart data
func (h *DashboardHandler) CollectionTrend(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))
	if months < 1 || months > 60 {
		months = 12
	}

	trend, err := h.dashboardService.CollectionTrend(scopedContext(c), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection trend retrieved successfully", trend)
}

// Occupancy handles the estate-wide occupancy projection
func (h *DashboardHandler) Occupancy(c *gin.Context) {
	occupancy, err := h.dashboardService.GetOccupancy(scopedContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Occupancy retrieved successfully", occupancy)
}
