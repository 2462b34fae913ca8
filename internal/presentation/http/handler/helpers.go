package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	infraRepo "github.com/mahirfaisal/estate-api/internal/infrastructure/repository"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
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
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// GetOwnerID extracts the acting user's owner ID from the Gin context
func GetOwnerID(c *gin.Context) *uuid.UUID {
	ownerIDVal, exists := c.Get("owner_id")
	if !exists {
		return nil
	}
	ownerID, ok := ownerIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &ownerID
}

// IsSuperAdmin checks if the user has the super-admin role
func IsSuperAdmin(c *gin.Context) bool {
	return GetUserRole(c) == entity.RoleSuperAdmin
}

// scopedContext builds the request context with the owner scope applied.
// Super admins run unscoped; owner users are limited to their owner's shops.
func scopedContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if IsSuperAdmin(c) {
		return infraRepo.WithSkipOwnerScope(ctx, true)
	}
	if ownerID := GetOwnerID(c); ownerID != nil {
		return infraRepo.WithOwner(ctx, *ownerID)
	}
	return ctx
}

// paginationFromQuery reads page/per_page query parameters
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}
