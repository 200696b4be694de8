package book

import (
	"errors"
	"strings"
	"time"
)

// Sentinel errors returned by store and service operations.
var (
	// ErrNotFound is returned when no record exists for an ISBN.
	ErrNotFound = errors.New("book not found")

	// ErrNotAvailable is returned when issuing a book with no free copies.
	ErrNotAvailable = errors.New("no copies available")

	// ErrOverReturn is returned when returning a book already fully in stock.
	ErrOverReturn = errors.New("all copies already returned")

	// ErrInvalidInput is returned for malformed add parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorrupt is returned when the store file cannot be parsed.
	ErrCorrupt = errors.New("store file corrupt")
)

// Book represents a single title tracked by the inventory.
type Book struct {
	ID        string    `json:"id"`
	ISBN      string    `json:"isbn"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Total     int       `json:"total"`
	Available int       `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Issued reports how many copies are currently checked out.
func (b Book) Issued() int {
	return b.Total - b.Available
}

// NormalizeISBN strips dashes and spaces so that "978-0-441-01359-3"
// and "9780441013593" key the same record.
func NormalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	return strings.TrimSpace(isbn)
}

// AddParams carries the input of an Add operation.
type AddParams struct {
	ISBN   string `validate:"required"`
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Copies int    `validate:"gte=1"`
}

// Stats summarizes the whole inventory.
type Stats struct {
	Titles    int `json:"titles"`
	Copies    int `json:"copies"`
	Available int `json:"available"`
	Issued    int `json:"issued"`
}
