package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLibrary(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())

	library, err := svc.Create(context.Background(), "  Main  ", 3, 1200.5)
	require.NoError(t, err)
	assert.NotZero(t, library.ID, "creation must persist and assign an id")
	assert.Equal(t, "Main", library.Name)
	assert.Equal(t, 3, library.FloorCount)

	got, err := svc.Get(context.Background(), library.ID)
	require.NoError(t, err)
	assert.Equal(t, library.Name, got.Name)
}

func TestCreateLibraryValidation(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())

	var verr *ValidationError

	_, err := svc.Create(context.Background(), "   ", 1, 100)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = svc.Create(context.Background(), "Main", -1, 100)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "floor_count", verr.Field)

	_, err = svc.Create(context.Background(), "Main", 1, -100)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "floor_area", verr.Field)
}

func TestListLibraries(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())

	_, err := svc.Create(context.Background(), "Main", 1, 100)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Annex", 2, 200)
	require.NoError(t, err)

	libraries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, libraries, 2)
	assert.Equal(t, "Main", libraries[0].Name)
	assert.Equal(t, "Annex", libraries[1].Name)
}

func TestGetLibraryNotFound(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLibrary(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())

	library, err := svc.Create(context.Background(), "Main", 1, 100)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), library.ID, "Main Branch", 2, 150)
	require.NoError(t, err)
	assert.Equal(t, "Main Branch", updated.Name)

	_, err = svc.Update(context.Background(), 404, "Ghost", 1, 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLibrary(t *testing.T) {
	svc := NewCatalog(newFakeLibraryRepo())

	library, err := svc.Create(context.Background(), "Main", 1, 100)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), library.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), library.ID), ErrNotFound)
}
