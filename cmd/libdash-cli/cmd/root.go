package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"libdash/internal/api"
)

var (
	apiBaseURL string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "libdash-cli",
	Short: "LibDash CLI tool",
	Long: `LibDash CLI is a command-line companion to the LibDash admin dashboard.

Available commands:
  health     Probe the Library Service health endpoint
  books      List the book catalog
  overdue    List overdue loans

Use "libdash-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient builds an API client from the global flags, falling back to the
// same environment variable the server reads.
func newClient() *api.Client {
	base := apiBaseURL
	if base == "" {
		base = os.Getenv("API_BASE_URL")
	}
	return api.NewClient(base, apiTimeout)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "Library Service base URL (defaults to API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "request timeout")
}
