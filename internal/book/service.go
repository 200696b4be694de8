package book

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service provides the inventory business logic on top of a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add creates a new record, or increments the copy counts of an existing
// ISBN. Title and author of an existing record are left unchanged.
func (s *Service) Add(ctx context.Context, p AddParams) (Book, error) {
	if errs := ValidateStruct(p); errs != nil {
		return Book{}, fmt.Errorf("%w: %s", ErrInvalidInput, errs[0].Message)
	}

	isbn := NormalizeISBN(p.ISBN)
	if isbn == "" {
		return Book{}, fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}

	existing, err := s.repo.GetByISBN(ctx, isbn)
	switch {
	case err == nil:
		existing.Total += p.Copies
		existing.Available += p.Copies
		existing.UpdatedAt = s.now()
		if err := s.repo.Put(ctx, existing); err != nil {
			return Book{}, err
		}
		return existing, nil
	case errors.Is(err, ErrNotFound):
		b := Book{
			ID:        uuid.NewString(),
			ISBN:      isbn,
			Title:     strings.TrimSpace(p.Title),
			Author:    strings.TrimSpace(p.Author),
			Total:     p.Copies,
			Available: p.Copies,
			CreatedAt: s.now(),
			UpdatedAt: s.now(),
		}
		if err := s.repo.Put(ctx, b); err != nil {
			return Book{}, err
		}
		return b, nil
	default:
		return Book{}, err
	}
}

// Issue checks one copy out.
func (s *Service) Issue(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetByISBN(ctx, NormalizeISBN(isbn))
	if err != nil {
		return Book{}, err
	}
	if b.Available == 0 {
		return Book{}, fmt.Errorf("%w: %q", ErrNotAvailable, b.Title)
	}
	b.Available--
	b.UpdatedAt = s.now()
	if err := s.repo.Put(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Return puts one checked-out copy back in stock.
func (s *Service) Return(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetByISBN(ctx, NormalizeISBN(isbn))
	if err != nil {
		return Book{}, err
	}
	if b.Available == b.Total {
		return Book{}, fmt.Errorf("%w: %q", ErrOverReturn, b.Title)
	}
	b.Available++
	b.UpdatedAt = s.now()
	if err := s.repo.Put(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Search matches a case-insensitive title substring or an exact ISBN.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	qISBN := NormalizeISBN(query)

	var matches []Book
	for _, b := range books {
		if b.ISBN == qISBN || (q != "" && strings.Contains(strings.ToLower(b.Title), q)) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// List returns all records sorted by title.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

// Remove deletes a record outright, checked out copies included.
func (s *Service) Remove(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, NormalizeISBN(isbn))
}

// Stats summarizes copy counts across the whole inventory.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, b := range books {
		st.Titles++
		st.Copies += b.Total
		st.Available += b.Available
		st.Issued += b.Issued()
	}
	return st, nil
}
