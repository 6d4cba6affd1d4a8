package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"library_system/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID    uint   `json:"id"`    // User ID
	Email string `json:"email"` // Email
	Role  string `json:"role"`  // User role
}

// ListUsersHandler returns all users, paginated and cached.
func ListUsersHandler(identity IdentityService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := utils.AdminUsersKeyPrefix + "page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int64               `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true, // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size within limits
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		users, total, err := identity.List(c.Request.Context(), offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		resp := make([]UserAdminResponse, len(users))
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:    u.ID,    // User ID
				Email: u.Email, // Email
				Role:  u.Role,  // User role
			}
		}
		respData := gin.H{
			"users":       resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages,
			"cached":      false, // Indicate response is not from cache
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, utils.DefaultTTL)
		c.JSON(http.StatusOK, respData)
	}
}

// DeleteUserHandler removes a user; their memberships are removed with
// them, libraries and other users' memberships stay put.
func DeleteUserHandler(identity IdentityService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if err := identity.Delete(c.Request.Context(), uint(id)); err != nil {
			respondError(c, err)
			return
		}
		ctx := context.Background()
		utils.InvalidateUserLibraries(ctx, rdb, uint(id)) // Their membership list is gone too
		utils.InvalidateAdminUsers(ctx, rdb)              // Drop cached admin pages
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
