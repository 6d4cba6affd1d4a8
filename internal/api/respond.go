package api

import (
	"context"  // Service call contexts
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"library_system/internal/domain"  // Importing domain models
	"library_system/internal/service" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Service interfaces consumed by the handlers. Defined here so handler
// tests can substitute fakes; the concrete implementations live in the
// service package.

// IdentityService is the slice of the identity service the handlers use.
type IdentityService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// CatalogService is the slice of the catalog service the handlers use.
type CatalogService interface {
	Create(ctx context.Context, name string, floorCount int, floorArea float64) (*domain.Library, error)
	List(ctx context.Context) ([]domain.Library, error)
	Get(ctx context.Context, id uint) (*domain.Library, error)
	Update(ctx context.Context, id uint, name string, floorCount int, floorArea float64) (*domain.Library, error)
	Delete(ctx context.Context, id uint) error
}

// MembershipService is the slice of the membership service the handlers use.
type MembershipService interface {
	LibrariesFor(ctx context.Context, userID uint) ([]domain.Library, error)
	Join(ctx context.Context, actorID, libraryID uint) (*domain.Membership, bool, error)
	Create(ctx context.Context, actorID, targetUserID, libraryID uint) (*domain.Membership, bool, error)
	Leave(ctx context.Context, actorID, targetUserID, libraryID uint) error
}

// respondError translates the service error taxonomy into a distinct HTTP
// response. A rejected operation never comes back success-shaped.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own memberships"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	default:
		logrus.WithField("error", err.Error()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// actingUserID pulls the authenticated user's ID set by the JWT middleware.
func actingUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
