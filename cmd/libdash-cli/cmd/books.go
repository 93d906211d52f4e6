package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libdash/internal/api"
	"libdash/internal/view"
)

var (
	booksSearch       string
	booksCategory     string
	booksLimit        int
	booksOutputFormat string
)

// booksCmd lists the catalog with the same filters as the search tab.
var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the book catalog",
	Long: `List the book catalog from the Library Service.

Examples:
  libdash-cli books
  libdash-cli books --search gatsby
  libdash-cli books --category Fiction --limit 20 --format json`,
	Run: booksHandler,
}

func booksHandler(cmd *cobra.Command, args []string) {
	client := newClient()

	books, err := client.ListBooks(context.Background(), api.BookQuery{
		Limit:    booksLimit,
		Search:   booksSearch,
		Category: booksCategory,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", view.UserMessage(err))
		os.Exit(1)
	}

	if booksOutputFormat == "json" {
		out, _ := json.MarshalIndent(books, "", "  ")
		fmt.Println(string(out))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tAUTHOR\tCATEGORY\tAVAILABLE")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n", b.Title, b.Author, b.Category, b.AvailableCopies, b.TotalCopies)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(booksCmd)

	booksCmd.Flags().StringVar(&booksSearch, "search", "", "title/author search term")
	booksCmd.Flags().StringVar(&booksCategory, "category", "", "category filter")
	booksCmd.Flags().IntVar(&booksLimit, "limit", 50, "maximum number of books")
	booksCmd.Flags().StringVarP(&booksOutputFormat, "format", "f", "table", "Output format (table, json)")
}
