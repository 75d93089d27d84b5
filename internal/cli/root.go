package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operator CLI for the Rackline catalog service",
	Long: `catalogctl gives operators direct access to the catalog and content
pipelines without going through the admin UI: bulk-import products from
CSV, import redirect lists, and force a content sync against the
upstream CMS.

Configuration is read from the environment (and a .env file when
present), the same way the API server reads it.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
