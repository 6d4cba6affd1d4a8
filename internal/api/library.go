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

// LibraryRequest is the payload for creating or updating a library.
type LibraryRequest struct {
	Name       string  `json:"name" binding:"required"` // Library name
	FloorCount int     `json:"floor_count"`             // Number of floors
	FloorArea  float64 `json:"floor_area"`              // Floor area
}

// libraryIDParam parses the :id path parameter.
func libraryIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid library id"})
		return 0, false
	}
	return uint(id), true
}

// ListLibrariesHandler returns all libraries, read through the Redis cache.
func ListLibrariesHandler(catalog CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached []domain.Library
		found, err := utils.GetCache(ctx, rdb, utils.LibraryListKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"libraries": cached, "cached": true})
			return
		}
		libraries, err := catalog.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.LibraryListKey, libraries, utils.DefaultTTL)
		c.JSON(http.StatusOK, gin.H{"libraries": libraries, "cached": false})
	}
}

// CreateLibraryHandler persists a new library.
func CreateLibraryHandler(catalog CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LibraryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		library, err := catalog.Create(c.Request.Context(), req.Name, req.FloorCount, req.FloorArea)
		if err != nil {
			respondError(c, err)
			return
		}
		// Invalidate the cached list so the new library shows up
		_ = utils.DeleteCache(context.Background(), rdb, utils.LibraryListKey)
		c.JSON(http.StatusCreated, gin.H{"library": library})
	}
}

// GetLibraryHandler returns a single library by id.
func GetLibraryHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := libraryIDParam(c)
		if !ok {
			return
		}
		library, err := catalog.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"library": library})
	}
}

// UpdateLibraryHandler saves new field values for an existing library.
func UpdateLibraryHandler(catalog CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := libraryIDParam(c)
		if !ok {
			return
		}
		var req LibraryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		library, err := catalog.Update(c.Request.Context(), id, req.Name, req.FloorCount, req.FloorArea)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.LibraryListKey)
		c.JSON(http.StatusOK, gin.H{"library": library})
	}
}

// DeleteLibraryHandler removes a library and its memberships.
func DeleteLibraryHandler(catalog CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := libraryIDParam(c)
		if !ok {
			return
		}
		if err := catalog.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.LibraryListKey)
		c.JSON(http.StatusOK, gin.H{"message": "Library deleted"})
	}
}
