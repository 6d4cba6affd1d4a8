package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"library_system/internal/domain" // Importing domain models
	"library_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// MembershipRequest is the payload for the direct membership-creation path.
// The user_id must match the acting user; anything else is rejected.
type MembershipRequest struct {
	UserID    uint `json:"user_id" binding:"required"`    // Target user
	LibraryID uint `json:"library_id" binding:"required"` // Target library
}

// ListUserLibrariesHandler returns every library a user belongs to,
// read through the per-user Redis cache.
func ListUserLibrariesHandler(memberships MembershipService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		ctx := context.Background() // Use background context for Redis
		cacheKey := utils.UserLibrariesKey(uint(userID))
		var cached []domain.Library
		found, cerr := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if cerr == nil && found {
			c.JSON(http.StatusOK, gin.H{"libraries": cached, "cached": true})
			return
		}
		libraries, err := memberships.LibrariesFor(c.Request.Context(), uint(userID))
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, libraries, utils.DefaultTTL)
		c.JSON(http.StatusOK, gin.H{"libraries": libraries, "cached": false})
	}
}

// JoinLibraryHandler enrolls the authenticated user in the library from the
// path. Idempotent: joining twice returns the existing membership.
func JoinLibraryHandler(memberships MembershipService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := actingUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		libraryID, ok := libraryIDParam(c)
		if !ok {
			return
		}
		membership, created, err := memberships.Join(c.Request.Context(), actorID, libraryID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateUserLibraries(context.Background(), rdb, actorID)
		status := http.StatusOK // Already a member
		if created {
			status = http.StatusCreated // Fresh membership
		}
		c.JSON(status, gin.H{"membership": membership, "created": created})
	}
}

// CreateMembershipHandler is the direct membership-creation path. The
// self-only rule is enforced in the service: a mismatched user_id fails
// with 403 and writes nothing, it is never waved through as a success.
func CreateMembershipHandler(memberships MembershipService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := actingUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req MembershipRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		membership, created, err := memberships.Create(c.Request.Context(), actorID, req.UserID, req.LibraryID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateUserLibraries(context.Background(), rdb, actorID)
		status := http.StatusOK // Already a member
		if created {
			status = http.StatusCreated // Fresh membership
		}
		c.JSON(status, gin.H{"membership": membership, "created": created})
	}
}

// LeaveLibraryHandler removes the authenticated user's own membership in
// the library from the path.
func LeaveLibraryHandler(memberships MembershipService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := actingUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		libraryID, err := strconv.ParseUint(c.Param("library_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid library id"})
			return
		}
		if err := memberships.Leave(c.Request.Context(), actorID, actorID, uint(libraryID)); err != nil {
			respondError(c, err)
			return
		}
		utils.InvalidateUserLibraries(context.Background(), rdb, actorID)
		c.JSON(http.StatusOK, gin.H{"message": "Membership removed"})
	}
}
