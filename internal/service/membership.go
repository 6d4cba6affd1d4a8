package service

import (
	"context"
	"errors"
	"fmt"

	"library_system/internal/domain" // Importing domain models
	"library_system/internal/store"  // Store sentinel errors

	"github.com/sirupsen/logrus" // Logging library
)

// MembershipRepository defines persistence operations for the join table.
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	Find(ctx context.Context, userID, libraryID uint) (*domain.Membership, error)
	LibrariesForUser(ctx context.Context, userID uint) ([]domain.Library, error)
	Delete(ctx context.Context, userID, libraryID uint) error
}

// Membership owns the many-to-many relation between users and libraries.
// All mutations enforce the self-only rule: the acting user can only ever
// create or remove memberships for themselves.
type Membership struct {
	memberships MembershipRepository // Join-table persistence
	users       UserRepository       // To resolve target users
	libraries   LibraryRepository    // To resolve target libraries
}

// NewMembership constructs the membership service.
func NewMembership(memberships MembershipRepository, users UserRepository, libraries LibraryRepository) *Membership {
	return &Membership{memberships: memberships, users: users, libraries: libraries}
}

// LibrariesFor returns every library the user belongs to.
// Fails with ErrNotFound if the user does not exist.
func (s *Membership) LibrariesFor(ctx context.Context, userID uint) ([]domain.Library, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return s.memberships.LibrariesForUser(ctx, userID)
}

// Join enrolls the acting user in a library. Idempotent: if the membership
// already exists it is returned as-is and the bool is false; a fresh row
// yields true. The unique index backs this up under concurrent joins — a
// losing insert comes back as a duplicate and resolves to the winner's row.
func (s *Membership) Join(ctx context.Context, actorID, libraryID uint) (*domain.Membership, bool, error) {
	if _, err := s.libraries.GetByID(ctx, libraryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("looking up library: %w", err)
	}
	// Fast path: already a member
	if existing, err := s.memberships.Find(ctx, actorID, libraryID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("looking up membership: %w", err)
	}
	membership := &domain.Membership{UserID: actorID, LibraryID: libraryID}
	if err := s.memberships.Create(ctx, membership); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race with a concurrent join; return the row that won
			existing, findErr := s.memberships.Find(ctx, actorID, libraryID)
			if findErr != nil {
				return nil, false, fmt.Errorf("resolving duplicate membership: %w", findErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("creating membership: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    actorID,   // Joining user
		"library_id": libraryID, // Joined library
	}).Info("Membership created")
	return membership, true, nil
}

// Create enrolls targetUserID in a library on behalf of actorID. The
// self-only rule: the target must be the actor, otherwise the call fails
// with ErrNotAuthorized and nothing is written.
func (s *Membership) Create(ctx context.Context, actorID, targetUserID, libraryID uint) (*domain.Membership, bool, error) {
	if actorID != targetUserID {
		logrus.WithFields(logrus.Fields{
			"actor_id":  actorID,      // Acting user
			"target_id": targetUserID, // User they tried to enroll
		}).Warn("Membership creation rejected: target is not the acting user")
		return nil, false, ErrNotAuthorized
	}
	return s.Join(ctx, actorID, libraryID)
}

// Leave removes targetUserID's membership in a library, under the same
// self-only rule as Create. Fails with ErrNotFound if no membership exists.
func (s *Membership) Leave(ctx context.Context, actorID, targetUserID, libraryID uint) error {
	if actorID != targetUserID {
		return ErrNotAuthorized
	}
	if err := s.memberships.Delete(ctx, actorID, libraryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting membership: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    actorID,   // Leaving user
		"library_id": libraryID, // Left library
	}).Info("Membership removed")
	return nil
}
