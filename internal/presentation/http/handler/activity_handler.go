package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hong-layeang/quickstock-api/internal/application/service"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/response"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles listing the activity log
// @Summary List Activities
// @Description List activity log entries visible to the caller, newest first
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	activities, total, err := h.activityService.ListActivities(c.Request.Context(), *actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(activities, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Activities retrieved successfully", result)
}
