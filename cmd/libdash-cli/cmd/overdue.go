package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libdash/internal/view"
)

var overdueOutputFormat string

// overdueCmd mirrors the Overdue Books tab for terminal use.
var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List overdue loans",
	Long: `List loans the Library Service reports as overdue.

Examples:
  libdash-cli overdue
  libdash-cli overdue --format json`,
	Run: overdueHandler,
}

func overdueHandler(cmd *cobra.Command, args []string) {
	client := newClient()

	overdue, err := client.OverdueTransactions(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", view.UserMessage(err))
		os.Exit(1)
	}

	if overdueOutputFormat == "json" {
		out, _ := json.MarshalIndent(overdue, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(overdue) == 0 {
		fmt.Println("No overdue books.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BOOK\tUSER\tDUE\tDAYS OVERDUE")
	for _, t := range overdue {
		days := "N/A"
		if t.OverdueDays != nil {
			days = fmt.Sprintf("%d", *t.OverdueDays)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.BookTitle(), t.UserName(), t.DueDate, days)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(overdueCmd)

	overdueCmd.Flags().StringVarP(&overdueOutputFormat, "format", "f", "table", "Output format (table, json)")
}
