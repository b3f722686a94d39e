package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hong-layeang/quickstock-api/internal/application/service"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and analytics HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles fetching the dashboard for the caller's role
// @Summary Get Dashboard
// @Description Get the dashboard payload; admins get the global view, suppliers their own
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var (
		data *service.DashboardData
		err  error
	)
	if IsAdmin(c) {
		data, err = h.dashboardService.GetAdminDashboard(c.Request.Context())
	} else {
		data, err = h.dashboardService.GetSupplierDashboard(c.Request.Context(), actor.ID)
	}
	if err != nil {
		// Query details stay in the log; the client gets a generic failure.
		logrus.WithError(err).Error("dashboard assembly failed")
		response.InternalServerError(c, "Failed to fetch dashboard data")
		return
	}

	response.OK(c, "Dashboard retrieved successfully", data)
}

// Analytics handles fetching the day-bucketed sales series
// @Summary Sales Analytics
// @Description Get the completed-sales series for the requested period
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param period query string false "Window: 7d, 14d, 30d or 90d"
// @Success 200 {object} response.AnalyticsResponse
// @Failure 500 {object} response.APIResponse
// @Router /dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var supplierID *uuid.UUID
	if !IsAdmin(c) {
		supplierID = &actor.ID
	}

	data, err := h.dashboardService.GetSalesAnalytics(c.Request.Context(), c.Query("period"), supplierID)
	if err != nil {
		logrus.WithError(err).Error("sales analytics failed")
		response.InternalServerError(c, "Failed to fetch analytics data")
		return
	}

	response.Analytics(c, "Analytics retrieved successfully", data.Data, data.TotalValue)
}
