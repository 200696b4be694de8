package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libshelf/internal/book"
	"libshelf/internal/store"
)

func newTestService(t *testing.T) *book.Service {
	t.Helper()
	repo, err := store.OpenBookJSON(filepath.Join(t.TempDir(), "library.json"))
	require.NoError(t, err)
	return book.NewService(repo)
}

// script joins menu inputs, one per line.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenuLoop(t *testing.T) {
	t.Run("quit immediately", func(t *testing.T) {
		var out bytes.Buffer
		err := runMenu(context.Background(), newTestService(t), strings.NewReader(script("0")), &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "1) add book")
		assert.Contains(t, out.String(), "bye")
	})

	t.Run("eof ends the loop cleanly", func(t *testing.T) {
		var out bytes.Buffer
		err := runMenu(context.Background(), newTestService(t), strings.NewReader(""), &out)
		require.NoError(t, err)
	})

	t.Run("unknown choice keeps the loop going", func(t *testing.T) {
		var out bytes.Buffer
		err := runMenu(context.Background(), newTestService(t), strings.NewReader(script("9", "0")), &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), `unknown choice "9"`)
		assert.Contains(t, out.String(), "bye")
	})

	t.Run("add issue return search", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(script(
			"1", "9780441013593", "Dune", "Frank Herbert", "2",
			"2", "9780441013593",
			"3", "9780441013593",
			"4", "dune",
			"0",
		))
		err := runMenu(context.Background(), newTestService(t), in, &out)
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, `added "Dune" by Frank Herbert (2/2 available)`)
		assert.Contains(t, s, `issued "Dune" (1/2 available)`)
		assert.Contains(t, s, `returned "Dune" (2/2 available)`)
		assert.Contains(t, s, "9780441013593")
	})

	t.Run("domain errors are messages, not failures", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(script(
			"2", "111", // issue unknown ISBN
			"1", "111", "Dune", "Herbert", "1",
			"3", "111", // return at full stock
			"2", "111",
			"2", "111", // no copies left
			"0",
		))
		err := runMenu(context.Background(), newTestService(t), in, &out)
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, "no book with that ISBN")
		assert.Contains(t, s, "all copies of that book are already in stock")
		assert.Contains(t, s, "all copies of that book are checked out")
		assert.Contains(t, s, "bye")
	})

	t.Run("bad copies input is rejected before the store", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(script(
			"1", "111", "Dune", "Herbert", "two",
			"1", "111", "Dune", "Herbert", "-1",
			"5",
			"0",
		))
		err := runMenu(context.Background(), newTestService(t), in, &out)
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, `copies must be a number, got "two"`)
		assert.Contains(t, s, "Copies must be at least 1")
		assert.Contains(t, s, "no books found")
	})

	t.Run("odd isbn shape warns but is accepted", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(script(
			"1", "111", "Dune", "Herbert", "1",
			"0",
		))
		err := runMenu(context.Background(), newTestService(t), in, &out)
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, `warning: "111" does not look like an ISBN-10 or ISBN-13`)
		assert.Contains(t, s, `added "Dune" by Herbert (1/1 available)`)
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("add and list subcommands", func(t *testing.T) {
		svc := newTestService(t)

		root := NewRoot(svc)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs([]string{"add", "9780441013593", "Dune", "Frank Herbert", "--copies", "2"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), `added "Dune" by Frank Herbert (2/2 available)`)

		root = NewRoot(svc)
		out.Reset()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs([]string{"list"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Dune")
		assert.Contains(t, out.String(), "2/2")
	})

	t.Run("issue unknown ISBN exits non-zero", func(t *testing.T) {
		root := NewRoot(newTestService(t))
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs([]string{"issue", "9780441013593"})
		err := root.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no book with that ISBN")
	})

	t.Run("stats subcommand", func(t *testing.T) {
		svc := newTestService(t)
		root := NewRoot(svc)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs([]string{"stats"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "titles")
	})
}
