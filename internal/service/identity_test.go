package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewIdentity(newFakeUserRepo())

	user, err := svc.Register(context.Background(), "Reader@Example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Email, "email is stored lowercase")
	assert.NotEqual(t, "correct-horse", user.Password, "password must not be stored in plaintext")

	got, err := svc.Authenticate(context.Background(), "reader@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := NewIdentity(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "reader@example.com", "correct-horse")
	require.NoError(t, err)

	// Wrong password for a known user
	_, wrongPass := svc.Authenticate(context.Background(), "reader@example.com", "battery-staple")
	// Unknown email entirely
	_, unknownUser := svc.Authenticate(context.Background(), "nobody@example.com", "battery-staple")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser, "the two failures must look identical to the caller")
}

func TestRegisterValidation(t *testing.T) {
	svc := NewIdentity(newFakeUserRepo())

	var verr *ValidationError

	_, err := svc.Register(context.Background(), "not-an-email", "correct-horse")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	_, err = svc.Register(context.Background(), "reader@example.com", "short")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewIdentity(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "reader@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Reader@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken, "email uniqueness is case-insensitive")
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewIdentity(repo)

	user, err := svc.Register(context.Background(), "reader@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), user.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), user.ID), ErrNotFound)
}
