package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hong-layeang/quickstock-api/internal/application/service"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/request"
	"github.com/hong-layeang/quickstock-api/internal/presentation/http/dto/response"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
	"github.com/hong-layeang/quickstock-api/pkg/utils"
)

// UserHandler handles admin user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing users
// @Summary List Users
// @Description List user accounts with filtering and pagination
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	var role *enum.Role
	if roleStr := c.Query("role"); roleStr != "" {
		parsed, err := enum.ParseRole(roleStr)
		if err != nil {
			response.BadRequest(c, "Invalid role")
			return
		}
		role = &parsed
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), params, c.Query("search"), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(users, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// ListSuppliers handles listing supplier accounts
// @Summary List Suppliers
// @Description List supplier accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /suppliers [get]
func (h *UserHandler) ListSuppliers(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	role := enum.RoleSupplier
	users, total, err := h.userService.ListUsers(c.Request.Context(), params, c.Query("search"), &role)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(users, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// Get handles fetching a single user
// @Summary Get User
// @Description Get one user account by ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", gin.H{"user": user})
}

// Create handles admin user creation
// @Summary Create User
// @Description Create a user account with an explicit role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateUserRequest true "User data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	role, err := enum.ParseRole(req.Role)
	if err != nil {
		response.BadRequest(c, "Invalid role")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), *actorID, &service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", gin.H{"user": user})
}

// Update handles admin user updates
// @Summary Update User
// @Description Update a user account's profile fields and role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateUserRequest true "User data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateUserInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.Role != nil {
		role, err := enum.ParseRole(*req.Role)
		if err != nil {
			response.BadRequest(c, "Invalid role")
			return
		}
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), *actorID, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", gin.H{"user": user})
}

// Delete handles admin user deletion
// @Summary Delete User
// @Description Soft-delete a user account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} response.APIResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), *actorID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
