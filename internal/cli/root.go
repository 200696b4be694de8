// Package cli wires the libshelf commands and the interactive menu.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"libshelf/internal/book"
)

// NewRoot builds the root command. With no subcommand it drops into
// the interactive menu.
func NewRoot(svc *book.Service) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "libshelf",
		Short:        "Library book inventory (JSON-file backed)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newAddCmd(svc))
	rootCmd.AddCommand(newIssueCmd(svc))
	rootCmd.AddCommand(newReturnCmd(svc))
	rootCmd.AddCommand(newSearchCmd(svc))
	rootCmd.AddCommand(newListCmd(svc))
	rootCmd.AddCommand(newRemoveCmd(svc))
	rootCmd.AddCommand(newStatsCmd(svc))
	rootCmd.AddCommand(newMenuCmd(svc))
	return rootCmd
}

func newAddCmd(svc *book.Service) *cobra.Command {
	var copies int
	cmd := &cobra.Command{
		Use:   "add <isbn> <title> <author>",
		Short: "Add a book, or more copies of an existing one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := svc.Add(cmd.Context(), book.AddParams{
				ISBN:   args[0],
				Title:  args[1],
				Author: args[2],
				Copies: copies,
			})
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			if !book.LooksLikeISBN(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %q does not look like an ISBN-10 or ISBN-13\n", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q by %s (%d/%d available)\n", b.Title, b.Author, b.Available, b.Total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&copies, "copies", "c", 1, "number of copies to add")
	return cmd
}

func newIssueCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "issue <isbn>",
		Short: "Check one copy out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := svc.Issue(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "issued %q (%d/%d available)\n", b.Title, b.Available, b.Total)
			return nil
		},
	}
}

func newReturnCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "return <isbn>",
		Short: "Put one checked-out copy back in stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := svc.Return(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "returned %q (%d/%d available)\n", b.Title, b.Available, b.Total)
			return nil
		},
	}
}

func newSearchCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search by title substring or exact ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := svc.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			renderBooks(cmd.OutOrStdout(), books)
			return nil
		},
	}
}

func newListCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := svc.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			renderBooks(cmd.OutOrStdout(), books)
			return nil
		},
	}
}

func newRemoveCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <isbn>",
		Short: "Delete a book record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newStatsCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inventory totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := svc.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			renderStats(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func newMenuCmd(svc *book.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func parseCopies(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("copies must be a number, got %q", s)
	}
	return n, nil
}
