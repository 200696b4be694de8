// Package testutil holds shared fixtures for tests.
package testutil

import (
	"time"

	"libshelf/internal/book"
)

// TestBook is a stock fixture with one of two copies checked out.
var TestBook = book.Book{
	ID:        "test-book-id-789",
	ISBN:      "9780441013593",
	Title:     "Dune",
	Author:    "Frank Herbert",
	Total:     2,
	Available: 1,
	CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
}

// Books builds a small deterministic inventory.
func Books() []book.Book {
	return []book.Book{
		{
			ID:        "id-1",
			ISBN:      "9780441013593",
			Title:     "Dune",
			Author:    "Frank Herbert",
			Total:     2,
			Available: 2,
		},
		{
			ID:        "id-2",
			ISBN:      "9780553293357",
			Title:     "Foundation",
			Author:    "Isaac Asimov",
			Total:     1,
			Available: 0,
		},
		{
			ID:        "id-3",
			ISBN:      "9780345339706",
			Title:     "The Hobbit",
			Author:    "J.R.R. Tolkien",
			Total:     3,
			Available: 3,
		},
	}
}
