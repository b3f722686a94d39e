package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hong-layeang/quickstock-api/internal/application/service"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/request"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/response"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
	"github.com/hong-layeang/quickstock-api/pkg/utils"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales
// @Summary List Sales
// @Description List sales visible to the caller
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
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

	filter := &repository.SaleFilterParams{Pagination: params}
	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.SaleStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid sale status")
			return
		}
		filter.Status = &status
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), *actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(sales, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles fetching a single sale
// @Summary Get Sale
// @Description Get one sale by ID
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", gin.H{"sale": sale})
}

// Record handles sale creation
// @Summary Record Sale
// @Description Record a pending sale; supports the Idempotency-Key header
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RecordSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) Record(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := utils.ParseUUID(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	input := &service.RecordSaleInput{
		ProductID:   productID,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
	}
	if req.OccurredAt != nil {
		input.OccurredAt = *req.OccurredAt
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), *actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", gin.H{"sale": sale})
}

// UpdateStatus handles moving a sale to completed or rejected
// @Summary Update Sale Status
// @Description Transition a pending sale to completed or rejected
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateSaleStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales/{id}/status [put]
func (h *SaleHandler) UpdateStatus(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSaleStatus(c.Request.Context(), *actor, id, enum.SaleStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale status updated successfully", gin.H{"sale": sale})
}
