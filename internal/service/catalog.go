package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"library_system/internal/domain" // Importing domain models
	"library_system/internal/store"  // Store sentinel errors

	"github.com/sirupsen/logrus" // Logging library
)

// LibraryRepository defines persistence operations for libraries.
type LibraryRepository interface {
	Create(ctx context.Context, library *domain.Library) error
	GetByID(ctx context.Context, id uint) (*domain.Library, error)
	List(ctx context.Context) ([]domain.Library, error)
	Update(ctx context.Context, library *domain.Library) error
	Delete(ctx context.Context, id uint) error
}

// Catalog owns library records.
type Catalog struct {
	libraries LibraryRepository // Library persistence
}

// NewCatalog constructs the catalog service.
func NewCatalog(libraries LibraryRepository) *Catalog {
	return &Catalog{libraries: libraries}
}

func validateLibrary(name string, floorCount int, floorArea float64) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if floorCount < 0 {
		return &ValidationError{Field: "floor_count", Reason: "must not be negative"}
	}
	if floorArea < 0 {
		return &ValidationError{Field: "floor_area", Reason: "must not be negative"}
	}
	return nil
}

// Create validates and persists a new library, returning the stored record.
func (s *Catalog) Create(ctx context.Context, name string, floorCount int, floorArea float64) (*domain.Library, error) {
	if err := validateLibrary(name, floorCount, floorArea); err != nil {
		return nil, err
	}
	library := &domain.Library{
		Name:       strings.TrimSpace(name), // Library name
		FloorCount: floorCount,              // Number of floors
		FloorArea:  floorArea,               // Floor area
	}
	if err := s.libraries.Create(ctx, library); err != nil {
		return nil, fmt.Errorf("creating library: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"library_id": library.ID,   // New library ID
		"name":       library.Name, // Library name
	}).Info("Library created")
	return library, nil
}

// List returns all libraries.
func (s *Catalog) List(ctx context.Context) ([]domain.Library, error) {
	return s.libraries.List(ctx)
}

// Get returns a library by ID, or ErrNotFound.
func (s *Catalog) Get(ctx context.Context, id uint) (*domain.Library, error) {
	library, err := s.libraries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up library: %w", err)
	}
	return library, nil
}

// Update validates and saves new field values for an existing library.
func (s *Catalog) Update(ctx context.Context, id uint, name string, floorCount int, floorArea float64) (*domain.Library, error) {
	if err := validateLibrary(name, floorCount, floorArea); err != nil {
		return nil, err
	}
	library := &domain.Library{
		ID:         id,
		Name:       strings.TrimSpace(name),
		FloorCount: floorCount,
		FloorArea:  floorArea,
	}
	if err := s.libraries.Update(ctx, library); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating library: %w", err)
	}
	return library, nil
}

// Delete removes a library; memberships pointing at it go with it.
func (s *Catalog) Delete(ctx context.Context, id uint) error {
	if err := s.libraries.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting library: %w", err)
	}
	logrus.WithField("library_id", id).Info("Library deleted")
	return nil
}
