package store

import (
	"context"
	"errors"
	"library_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserStore persists users through GORM.
type UserStore struct {
	db *gorm.DB // Database handle
}

// NewUserStore returns a UserStore backed by db.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. Returns ErrDuplicate if the email is taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByEmail looks a user up by email. Returns ErrNotFound on a miss.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID looks a user up by primary key. Returns ErrNotFound on a miss.
func (s *UserStore) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns one page of users plus the total count.
func (s *UserStore) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := s.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Delete removes a user and, via the transaction, every membership the
// user owns. Returns ErrNotFound when the user does not exist.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// Explicit cleanup so the cascade holds even without FK support
		return tx.Where("user_id = ?", id).Delete(&domain.Membership{}).Error
	})
}
