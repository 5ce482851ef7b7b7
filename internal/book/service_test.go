package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateThenGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	fields := Fields{
		Title:    "Dune",
		Author:   "Herbert",
		Category: "Fiction",
		Photo:    "http://example.com/dune.jpg",
		PDF:      "http://example.com/dune.pdf",
	}
	created, err := svc.Create(ctx, fields)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields.Title, got.Title)
	assert.Equal(t, fields.Author, got.Author)
	assert.Equal(t, fields.Category, got.Category)
	assert.Equal(t, fields.Photo, got.Photo)
	assert.Equal(t, fields.PDF, got.PDF)
}

func TestService_Create_RejectsMissingRequiredFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, Fields{Title: "", Author: "X"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	books, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 4, "rejected create must not reach the store")
}

func TestService_ListLengthTracksCreateAndDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)

	created, err := svc.Create(ctx, Fields{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	afterCreate, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, afterCreate, len(before)+1)

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)

	afterDelete, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, afterDelete, len(before))
}

func TestService_UpdateNonexistent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, Fields{Title: "X", Author: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteThenGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
