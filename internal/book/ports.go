package book

import (
	"context"
)

// Repository is the persistence gateway contract. Both backing stores
// (relational and in-memory fallback) implement the same five operations
// with identical semantics; which one is active is decided once at startup.
type Repository interface {
	// List returns every book ordered by ascending id. An empty store
	// yields an empty slice, not an error.
	List(ctx context.Context) ([]Book, error)
	// GetByID returns the book with the given id or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// Create validates the required fields, assigns a fresh unique id and
	// returns the stored record.
	Create(ctx context.Context, f Fields) (Book, error)
	// Update replaces all mutable fields of the book with the given id and
	// returns the new state, or ErrNotFound. Omitted fields are overwritten
	// with empty values, not merged.
	Update(ctx context.Context, id int64, f Fields) (Book, error)
	// Delete removes the book with the given id and returns its id for
	// confirmation, or ErrNotFound.
	Delete(ctx context.Context, id int64) (int64, error)
}
