package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_SeededCatalog(t *testing.T) {
	repo := NewMemoryRepo()

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 4)

	for i, b := range books {
		assert.Equal(t, int64(i+1), b.ID)
	}
	assert.Equal(t, "Clean Code", books[0].Title)
	assert.Equal(t, "Robert Martin", books[0].Author)
	assert.Equal(t, "The Art of War", books[3].Title)
	assert.Equal(t, "Philosophy", books[3].Category)
}

func TestMemoryRepo_GetByID(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	b, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Sapiens", b.Title)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_Create(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Fields{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "", created.Category)
	assert.Equal(t, "", created.Photo)
	assert.Equal(t, "", created.PDF)
	assert.Nil(t, created.CreatedAt)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 5)
}

func TestMemoryRepo_Create_Validation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	tests := []struct {
		name   string
		fields Fields
	}{
		{"empty title", Fields{Title: "", Author: "X"}},
		{"empty author", Fields{Title: "X", Author: ""}},
		{"both empty", Fields{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.fields)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.NotEmpty(t, verr.Details)
		})
	}

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 4, "rejected creates must not grow the store")
}

func TestMemoryRepo_IDAssignment_MaxPlusOne(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Fields{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	require.Equal(t, int64(5), created.ID)

	// Deleting the highest id frees it for reuse.
	_, err = repo.Delete(ctx, 5)
	require.NoError(t, err)

	created, err = repo.Create(ctx, Fields{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	// A gap below the maximum is never reused.
	_, err = repo.Delete(ctx, 2)
	require.NoError(t, err)

	created, err = repo.Create(ctx, Fields{Title: "Emma", Author: "Austen"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
}

func TestMemoryRepo_Update_ReplacesAllFields(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Fields{
		Title:    "Dune",
		Author:   "Herbert",
		Category: "Fiction",
		Photo:    "http://example.com/dune.jpg",
		PDF:      "http://example.com/dune.pdf",
	})
	require.NoError(t, err)

	// Omitted optional fields overwrite the stored values with empty ones.
	updated, err := repo.Update(ctx, created.ID, Fields{Title: "Dune 2", Author: "Herbert"})
	require.NoError(t, err)
	assert.Equal(t, "Dune 2", updated.Title)
	assert.Equal(t, "", updated.Category)
	assert.Equal(t, "", updated.Photo)
	assert.Equal(t, "", updated.PDF)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestMemoryRepo_Update_NotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Update(ctx, 999, Fields{Title: "X", Author: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update must leave the store unchanged")
}

func TestMemoryRepo_Delete(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	_, err = repo.Delete(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
