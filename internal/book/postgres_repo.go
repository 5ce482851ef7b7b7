package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, title, author, category, photo, pdf, created_at, updated_at"

// PostgresRepo is the relational store. Each operation issues exactly one
// parameterized statement; per-statement atomicity comes from the engine.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Photo, &b.PDF, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, "SELECT "+bookColumns+" FROM books ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(ctx, "SELECT "+bookColumns+" FROM books WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) Create(ctx context.Context, f Fields) (Book, error) {
	if err := f.Validate(); err != nil {
		return Book{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	INSERT INTO books (title, author, category, photo, pdf)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + bookColumns
	return scanBook(r.db.QueryRow(ctx, query, f.Title, f.Author, f.Category, f.Photo, f.PDF))
}

// Update overwrites all five mutable columns unconditionally. A field the
// caller omitted arrives empty and is stored empty; previous values are
// not merged in.
func (r *PostgresRepo) Update(ctx context.Context, id int64, f Fields) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	UPDATE books
	SET title = $1, author = $2, category = $3, photo = $4, pdf = $5, updated_at = now()
	WHERE id = $6
	RETURNING ` + bookColumns
	b, err := scanBook(r.db.QueryRow(ctx, query, f.Title, f.Author, f.Category, f.Photo, f.PDF, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM books WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return deleted, err
}
