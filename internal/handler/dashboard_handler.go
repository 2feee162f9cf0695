package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// DashboardHandler serves the admin dashboard read endpoints: entity counts,
// contact inbox, and the recent activity feed.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /content-management/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}
	utils.Success(c, 200, "Stats retrieved", stats)
}

// ListContactMessages handles GET /content-management/contact-messages/list
func (h *DashboardHandler) ListContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	messages, total, err := h.dashboardService.ListContactMessages(page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}
	utils.SuccessWithPagination(c, 200, "Contact messages retrieved", messages, page, limit, total)
}

// ListActivity handles GET /content-management/activity/list
func (h *DashboardHandler) ListActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.dashboardService.RecentActivity(limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}
	utils.Success(c, 200, "Activity retrieved", entries)
}
