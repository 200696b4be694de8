package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"libshelf/internal/book"
)

const menuText = `
1) add book
2) issue book
3) return book
4) search
5) list all
6) remove book
7) stats
0) quit
`

// runMenu drives the numbered prompt loop. Domain errors become
// messages and the loop keeps going; only input stream errors end it.
func runMenu(ctx context.Context, svc *book.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText)
		choice, ok := prompt(scanner, out, "> ")
		if !ok {
			return scanner.Err()
		}

		switch strings.TrimSpace(choice) {
		case "0", "q", "quit", "exit":
			fmt.Fprintln(out, "bye")
			return nil
		case "1":
			menuAdd(ctx, svc, scanner, out)
		case "2":
			menuIssue(ctx, svc, scanner, out)
		case "3":
			menuReturn(ctx, svc, scanner, out)
		case "4":
			menuSearch(ctx, svc, scanner, out)
		case "5":
			menuList(ctx, svc, out)
		case "6":
			menuRemove(ctx, svc, scanner, out)
		case "7":
			menuStats(ctx, svc, out)
		default:
			fmt.Fprintf(out, "unknown choice %q\n", strings.TrimSpace(choice))
		}
	}
}

// prompt prints a label and reads one line. ok is false when the
// input stream is exhausted.
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func menuAdd(ctx context.Context, svc *book.Service, scanner *bufio.Scanner, out io.Writer) {
	isbn, ok := prompt(scanner, out, "isbn: ")
	if !ok {
		return
	}
	title, ok := prompt(scanner, out, "title: ")
	if !ok {
		return
	}
	author, ok := prompt(scanner, out, "author: ")
	if !ok {
		return
	}
	copiesStr, ok := prompt(scanner, out, "copies: ")
	if !ok {
		return
	}

	copies, err := parseCopies(copiesStr)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	b, err := svc.Add(ctx, book.AddParams{ISBN: isbn, Title: title, Author: author, Copies: copies})
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	if !book.LooksLikeISBN(isbn) {
		fmt.Fprintf(out, "warning: %q does not look like an ISBN-10 or ISBN-13\n", isbn)
	}
	fmt.Fprintf(out, "added %q by %s (%d/%d available)\n", b.Title, b.Author, b.Available, b.Total)
}

func menuIssue(ctx context.Context, svc *book.Service, scanner *bufio.Scanner, out io.Writer) {
	isbn, ok := prompt(scanner, out, "isbn: ")
	if !ok {
		return
	}
	b, err := svc.Issue(ctx, isbn)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	fmt.Fprintf(out, "issued %q (%d/%d available)\n", b.Title, b.Available, b.Total)
}

func menuReturn(ctx context.Context, svc *book.Service, scanner *bufio.Scanner, out io.Writer) {
	isbn, ok := prompt(scanner, out, "isbn: ")
	if !ok {
		return
	}
	b, err := svc.Return(ctx, isbn)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	fmt.Fprintf(out, "returned %q (%d/%d available)\n", b.Title, b.Available, b.Total)
}

func menuSearch(ctx context.Context, svc *book.Service, scanner *bufio.Scanner, out io.Writer) {
	query, ok := prompt(scanner, out, "query: ")
	if !ok {
		return
	}
	books, err := svc.Search(ctx, query)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	renderBooks(out, books)
}

func menuList(ctx context.Context, svc *book.Service, out io.Writer) {
	books, err := svc.List(ctx)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	renderBooks(out, books)
}

func menuRemove(ctx context.Context, svc *book.Service, scanner *bufio.Scanner, out io.Writer) {
	isbn, ok := prompt(scanner, out, "isbn: ")
	if !ok {
		return
	}
	if err := svc.Remove(ctx, isbn); err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	fmt.Fprintln(out, "removed")
}

func menuStats(ctx context.Context, svc *book.Service, out io.Writer) {
	st, err := svc.Stats(ctx)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err))
		return
	}
	renderStats(out, st)
}
