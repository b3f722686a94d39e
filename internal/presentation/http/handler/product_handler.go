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

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
// @Summary List Products
// @Description List products visible to the caller, with filtering and pagination
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
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

	filter := &repository.ProductFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
		Category:   c.Query("category"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.ProductStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid product status")
			return
		}
		filter.Status = &status
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), *actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(products, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles fetching a single product
// @Summary Get Product
// @Description Get one product by ID
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", gin.H{"product": product})
}

// LowStock handles listing products at or below the low-stock threshold
// @Summary Low Stock Products
// @Description List products that are low on or out of stock
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products/low-stock [get]
func (h *ProductHandler) LowStock(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	products, err := h.productService.GetLowStock(c.Request.Context(), *actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", gin.H{"products": products})
}

// Create handles product creation
// @Summary Create Product
// @Description Create a new product
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateProductInput{
		Name:      req.Name,
		SKU:       req.SKU,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
		Stock:     req.Stock,
	}
	if req.SupplierID != nil {
		supplierID, err := utils.ParseUUID(*req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		input.SupplierID = &supplierID
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), *actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", gin.H{"product": product})
}

// Update handles product updates
// @Summary Update Product
// @Description Update product fields
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateProductRequest true "Product data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), *actor, id, &service.UpdateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		UnitPrice:    req.UnitPrice,
		Discontinued: req.Discontinued,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", gin.H{"product": product})
}

// UpdateStock handles setting a product's stock level
// @Summary Update Stock
// @Description Set a product's stock level
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateStockRequest true "Stock level"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /products/{id}/stock [put]
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateStock(c.Request.Context(), *actor, id, *req.Stock)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", gin.H{"product": product})
}

// Delete handles product deletion
// @Summary Delete Product
// @Description Soft-delete a product
// @Tags products
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
