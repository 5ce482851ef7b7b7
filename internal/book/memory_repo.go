package book

import (
	"context"
	"sync"
)

// MemoryRepo is the fallback store: an in-process, non-persistent
// collection used for the whole process lifetime when the relational
// store is unreachable at startup. Mutations survive only as long as
// the process. Concurrent writes to the same id are last-write-wins;
// the mutex only keeps the collection itself coherent.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

// NewMemoryRepo creates a fallback store seeded with the sample catalog.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books: []Book{
			{ID: 1, Title: "Clean Code", Author: "Robert Martin", Category: "Technology"},
			{ID: 2, Title: "Sapiens", Author: "Yuval Harari", Category: "History"},
			{ID: 3, Title: "1984", Author: "George Orwell", Category: "Fiction"},
			{ID: 4, Title: "The Art of War", Author: "Sun Tzu", Category: "Philosophy"},
		},
	}
}

// List returns a copy of all books. The collection only ever grows at the
// tail with increasing ids, so it is already ordered by ascending id.
func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

// Create assigns max existing id plus one. Gaps left by deletes are not
// reused unless the deleted id was the highest.
func (r *MemoryRepo) Create(ctx context.Context, f Fields) (Book, error) {
	if err := f.Validate(); err != nil {
		return Book{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, b := range r.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	b := Book{
		ID:       maxID + 1,
		Title:    f.Title,
		Author:   f.Author,
		Category: f.Category,
		Photo:    f.Photo,
		PDF:      f.PDF,
	}
	r.books = append(r.books, b)
	return b, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, f Fields) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.books {
		if b.ID == id {
			b.Title = f.Title
			b.Author = f.Author
			b.Category = f.Category
			b.Photo = f.Photo
			b.PDF = f.PDF
			r.books[i] = b
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.books {
		if b.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return id, nil
		}
	}
	return 0, ErrNotFound
}
