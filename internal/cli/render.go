package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"libshelf/internal/book"
)

// renderBooks writes a fixed-width table of records.
func renderBooks(w io.Writer, books []book.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "no books found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ISBN\tTITLE\tAUTHOR\tAVAILABLE")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\n", b.ISBN, b.Title, b.Author, b.Available, b.Total)
	}
	tw.Flush()
}

func renderStats(w io.Writer, st book.Stats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "titles\t%d\n", st.Titles)
	fmt.Fprintf(tw, "copies\t%d\n", st.Copies)
	fmt.Fprintf(tw, "available\t%d\n", st.Available)
	fmt.Fprintf(tw, "issued\t%d\n", st.Issued)
	tw.Flush()
}

// errorMessage maps domain errors to user-facing messages. Unknown
// errors pass through as-is.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, book.ErrNotFound):
		return "no book with that ISBN"
	case errors.Is(err, book.ErrNotAvailable):
		return "all copies of that book are checked out"
	case errors.Is(err, book.ErrOverReturn):
		return "all copies of that book are already in stock"
	case errors.Is(err, book.ErrInvalidInput):
		return err.Error()
	default:
		return err.Error()
	}
}
