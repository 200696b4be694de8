package store

// Repository implementation (JSON file)

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"libshelf/internal/book"
)

// BookJSON persists the full record set as a JSON array on disk,
// rewriting the whole file after every mutation.
type BookJSON struct {
	path  string
	books map[string]book.Book // keyed by normalized ISBN
}

// OpenBookJSON loads the store file at path. A missing file yields an
// empty store. A malformed file also yields an empty store, but the
// returned error wraps book.ErrCorrupt so callers can warn the user;
// the store itself is usable either way.
func OpenBookJSON(path string) (*BookJSON, error) {
	s := &BookJSON{
		path:  path,
		books: make(map[string]book.Book),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var records []book.Book
	if err := json.Unmarshal(data, &records); err != nil {
		return s, fmt.Errorf("%w: %s: %v", book.ErrCorrupt, path, err)
	}

	for _, b := range records {
		s.books[book.NormalizeISBN(b.ISBN)] = b
	}
	return s, nil
}

// List returns copies of all records sorted by title.
func (s *BookJSON) List(ctx context.Context) ([]book.Book, error) {
	books := make([]book.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

// GetByISBN returns the record for a normalized ISBN.
func (s *BookJSON) GetByISBN(ctx context.Context, isbn string) (book.Book, error) {
	b, ok := s.books[isbn]
	if !ok {
		return book.Book{}, fmt.Errorf("%w: isbn %s", book.ErrNotFound, isbn)
	}
	return b, nil
}

// Put inserts or replaces a record and rewrites the file.
func (s *BookJSON) Put(ctx context.Context, b book.Book) error {
	key := book.NormalizeISBN(b.ISBN)
	prev, had := s.books[key]

	s.books[key] = b
	if err := s.save(); err != nil {
		// Keep memory and disk in step.
		if had {
			s.books[key] = prev
		} else {
			delete(s.books, key)
		}
		return err
	}
	return nil
}

// Delete removes a record and rewrites the file.
func (s *BookJSON) Delete(ctx context.Context, isbn string) error {
	prev, ok := s.books[isbn]
	if !ok {
		return fmt.Errorf("%w: isbn %s", book.ErrNotFound, isbn)
	}

	delete(s.books, isbn)
	if err := s.save(); err != nil {
		s.books[isbn] = prev
		return err
	}
	return nil
}

// save serializes the full record set and swaps it into place via a
// temp file so a failed write never truncates the store.
func (s *BookJSON) save() error {
	books, _ := s.List(context.Background())

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".libshelf-*.json")
	if err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
