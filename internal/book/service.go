package book

import (
	"context"
)

// Service implements the catalog operations on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all books ordered by ascending id.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the submitted fields before delegating, so a missing
// title or author is rejected identically in both storage modes.
func (s *Service) Create(ctx context.Context, f Fields) (Book, error) {
	if err := f.Validate(); err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, f)
}

// Update replaces all mutable fields of the book with the given id.
// There is no field-presence check here: omitted fields overwrite their
// stored values with empty ones.
func (s *Service) Update(ctx context.Context, id int64, f Fields) (Book, error) {
	return s.repo.Update(ctx, id, f)
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
