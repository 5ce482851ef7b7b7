package book

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no book exists with the requested id.
var ErrNotFound = errors.New("book not found")

// Book is the sole catalog entity. CreatedAt and UpdatedAt are set only
// when the relational store is active; the in-memory fallback leaves them nil.
type Book struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Category  string     `json:"category"`
	Photo     string     `json:"photo"`
	PDF       string     `json:"pdf"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Fields carries the mutable fields submitted on create and update.
// An update overwrites all of them; omitted fields become empty rather
// than keeping their previous value.
type Fields struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category"`
	Photo    string `json:"photo"`
	PDF      string `json:"pdf"`
}

// FieldError describes a single invalid submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports missing or invalid submitted fields. Create
// returns it in both storage modes.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
