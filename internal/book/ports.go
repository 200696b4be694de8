package book

import (
	"context"
)

// Repository defines the contract for book record storage.
// Implementations persist every mutation before returning.
type Repository interface {
	// List returns all records sorted by title.
	List(ctx context.Context) ([]Book, error)
	// GetByISBN returns the record for a normalized ISBN, or ErrNotFound.
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	// Put inserts or replaces the record keyed by its ISBN.
	Put(ctx context.Context, b Book) error
	// Delete removes the record for a normalized ISBN, or ErrNotFound.
	Delete(ctx context.Context, isbn string) error
}
