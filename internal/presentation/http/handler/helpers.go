package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hong-layeang/quickstock-api/internal/application/service"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(enum.Role)
	if !ok {
		return ""
	}
	return role
}

// GetActor builds the acting user from the Gin context. Returns nil when
// the request is not authenticated.
func GetActor(c *gin.Context) *service.Actor {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	role := GetUserRole(c)
	if !role.IsValid() {
		return nil
	}
	return &service.Actor{ID: *userID, Role: role}
}

// IsAdmin checks if the request is from an admin
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == enum.RoleAdmin
}
