package store

import (
	"context"
	"errors"
	"library_system/internal/domain" // Importing domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // To skip association upserts on insert
)

// MembershipStore persists the user/library join table through GORM.
type MembershipStore struct {
	db *gorm.DB // Database handle
}

// NewMembershipStore returns a MembershipStore backed by db.
func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// Create inserts a membership row. Returns ErrDuplicate when a row for the
// same (user, library) pair already exists; the unique index decides, so
// concurrent inserts for the same pair cannot both succeed.
func (s *MembershipStore) Create(ctx context.Context, membership *domain.Membership) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Find returns the membership for a (user, library) pair, or ErrNotFound.
func (s *MembershipStore) Find(ctx context.Context, userID, libraryID uint) (*domain.Membership, error) {
	var membership domain.Membership
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND library_id = ?", userID, libraryID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// LibrariesForUser returns every library the user holds a membership in.
func (s *MembershipStore) LibrariesForUser(ctx context.Context, userID uint) ([]domain.Library, error) {
	var libraries []domain.Library
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.library_id = libraries.id").
		Where("memberships.user_id = ?", userID).
		Order("libraries.id").
		Find(&libraries).Error
	if err != nil {
		return nil, err
	}
	return libraries, nil
}

// Delete removes the membership for a (user, library) pair.
// Returns ErrNotFound when no such membership exists.
func (s *MembershipStore) Delete(ctx context.Context, userID, libraryID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND library_id = ?", userID, libraryID).
		Delete(&domain.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
