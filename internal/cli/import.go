package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rackline/internal/adapter/repository"
	"rackline/internal/infrastructure/localstore"
	"rackline/internal/infrastructure/upstream"
	"rackline/internal/productcache"
	"rackline/internal/usecase"
	"rackline/pkg/config"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <products.csv>",
	Short: "Bulk-import products from a CSV file",
	Long: `Import parses a product CSV (same format as the admin bulk upload)
and pushes the batch to the upstream catalog API. Rows missing a SKU,
a name or a parseable basePrice are skipped and counted.

When the upstream is unreachable the batch is written to the local
fallback store instead, exactly as the admin upload does.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and report without pushing anywhere")
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	if importDryRun {
		products, skipped, err := usecase.ParseProductCSV(file)
		if err != nil {
			return err
		}
		fmt.Printf("Parsed %d products (%d rows skipped), nothing pushed\n", len(products), skipped)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		return err
	}
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey)
	productRepo := repository.NewLocalstoreProductRepository(store)
	cache := productcache.New(client, cfg.ProductCacheTTL)
	productUseCase := usecase.NewProductUseCase(client, cache, productRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, offline, err := productUseCase.BulkImport(ctx, file)
	if err != nil {
		return err
	}

	if offline {
		fmt.Printf("Upstream unreachable: %d products saved to the local store (%d rows skipped)\n",
			result.Imported, result.Skipped)
		return nil
	}
	fmt.Printf("Imported %d products upstream (%d rows skipped)\n", result.Imported, result.Skipped)
	return nil
}
