package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libdash/internal/view"
)

var healthOutputFormat string

// healthCmd probes the backend the same way the dashboard sidebar does.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the Library Service health endpoint",
	Long: `Probe the Library Service health endpoint and report the result.

The exit code is 0 when the service reports OK and 1 otherwise, so the
command can be used directly in scripts and readiness checks.

Examples:
  libdash-cli health
  libdash-cli health --api http://localhost:3000/api --format json`,
	Run: healthHandler,
}

func healthHandler(cmd *cobra.Command, args []string) {
	client := newClient()

	health, err := client.Health(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", view.UserMessage(err))
		os.Exit(1)
	}

	if healthOutputFormat == "json" {
		out, _ := json.MarshalIndent(health, "", "  ")
		fmt.Println(string(out))
	} else {
		fmt.Printf("Service:  %s\n", health.Status)
		fmt.Printf("Database: %s (connected: %t)\n", health.Database.Status, health.Database.Connected)
	}

	if !health.OK() {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().StringVarP(&healthOutputFormat, "format", "f", "table", "Output format (table, json)")
}
