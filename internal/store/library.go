package store

import (
	"context"
	"errors"
	"library_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// LibraryStore persists libraries through GORM.
type LibraryStore struct {
	db *gorm.DB // Database handle
}

// NewLibraryStore returns a LibraryStore backed by db.
func NewLibraryStore(db *gorm.DB) *LibraryStore {
	return &LibraryStore{db: db}
}

// Create inserts a new library record.
func (s *LibraryStore) Create(ctx context.Context, library *domain.Library) error {
	return s.db.WithContext(ctx).Create(library).Error
}

// GetByID looks a library up by primary key. Returns ErrNotFound on a miss.
func (s *LibraryStore) GetByID(ctx context.Context, id uint) (*domain.Library, error) {
	var library domain.Library
	if err := s.db.WithContext(ctx).First(&library, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &library, nil
}

// List returns all libraries in insertion order.
func (s *LibraryStore) List(ctx context.Context) ([]domain.Library, error) {
	var libraries []domain.Library
	if err := s.db.WithContext(ctx).Order("id").Find(&libraries).Error; err != nil {
		return nil, err
	}
	return libraries, nil
}

// Update saves new field values for an existing library.
// Returns ErrNotFound when the library does not exist.
func (s *LibraryStore) Update(ctx context.Context, library *domain.Library) error {
	res := s.db.WithContext(ctx).Model(&domain.Library{}).Where("id = ?", library.ID).
		Updates(map[string]any{
			"name":        library.Name,
			"floor_count": library.FloorCount,
			"floor_area":  library.FloorArea,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a library and its memberships.
// Returns ErrNotFound when the library does not exist.
func (s *LibraryStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Library{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// Explicit cleanup so the cascade holds even without FK support
		return tx.Where("library_id = ?", id).Delete(&domain.Membership{}).Error
	})
}
