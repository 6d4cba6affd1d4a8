package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"library_system/internal/domain" // Importing domain models
	"library_system/internal/store"  // Store sentinel errors

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// dummyHash is a bcrypt hash of a fixed throwaway password. When a login
// targets an unknown email the service still runs a bcrypt compare against
// it, so a lookup miss and a password mismatch take the same path and the
// caller cannot tell them apart.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// emailPattern is deliberately loose: something@something.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Identity owns user records and credential verification.
type Identity struct {
	users UserRepository // User persistence
}

// NewIdentity constructs the identity service.
func NewIdentity(users UserRepository) *Identity {
	return &Identity{users: users}
}

// Register creates a user with a bcrypt-hashed password. The email is
// lowercased so the unique constraint is case-insensitive in practice.
func (s *Identity) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	// Bcrypt rejects inputs over 72 bytes
	if len(password) < 8 || len(password) > 72 {
		return nil, &ValidationError{Field: "password", Reason: "must be 8-72 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &domain.User{Email: email, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,    // New user ID
		"email":   user.Email, // Registered email
	}).Info("User registered")
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
// Unknown email and wrong password both fail with ErrInvalidCredentials
// and are observationally indistinguishable to the caller.
func (s *Identity) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a compare anyway so the miss costs the same as a mismatch
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get returns a user by ID, or ErrNotFound.
func (s *Identity) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return user, nil
}

// List returns one page of users plus the total count.
func (s *Identity) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	return s.users.List(ctx, offset, limit)
}

// Delete removes a user; their memberships go with them.
// Libraries and other users' memberships are untouched.
func (s *Identity) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting user: %w", err)
	}
	logrus.WithField("user_id", id).Info("User deleted")
	return nil
}
