package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rackline/internal/infrastructure/upstream"
	"rackline/pkg/config"
)

var redirectsCmd = &cobra.Command{
	Use:   "redirects <redirects.csv>",
	Short: "Import a redirect list CSV",
	Long: `redirects forwards a from,to,permanent CSV to the upstream redirect
importer, the same endpoint the admin UI uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runRedirects,
}

func init() {
	rootCmd.AddCommand(redirectsCmd)
}

func runRedirects(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := client.ImportRedirects(ctx, filepath.Base(args[0]), file)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d redirects (%d rows skipped)\n", result.Imported, result.Skipped)
	return nil
}
