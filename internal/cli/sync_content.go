package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rackline/internal/adapter/repository"
	"rackline/internal/infrastructure/localstore"
	"rackline/internal/infrastructure/upstream"
	"rackline/internal/usecase"
	"rackline/pkg/config"
)

var syncContentCmd = &cobra.Command{
	Use:   "sync-content",
	Short: "Pull the content document from the upstream CMS",
	Long: `sync-content fetches the aggregate content document from the upstream
CMS, merges it over the locally persisted copy and writes the result
back to the local store. This is the same reconciliation the API server
runs at startup; running it here primes the store before a deploy or
after editing content directly upstream.`,
	RunE: runSyncContent,
}

func init() {
	rootCmd.AddCommand(syncContentCmd)
}

func runSyncContent(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		return err
	}
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey)
	contentRepo := repository.NewLocalstoreContentRepository(store)
	contentUseCase := usecase.NewContentUseCase(contentRepo, client)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	contentUseCase.Load(ctx)

	state := contentUseCase.State()
	fmt.Printf("Content synced: %d categories, %d blog posts, %d redirects\n",
		len(state.Categories), len(state.BlogPosts), len(state.Redirects))
	return nil
}
