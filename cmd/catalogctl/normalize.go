package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seedcatalog/backend/config"
	"github.com/seedcatalog/backend/internal/domain"
	"github.com/seedcatalog/backend/internal/infrastructure/registry"
	"github.com/seedcatalog/backend/internal/infrastructure/store"
	"github.com/seedcatalog/backend/internal/usecase"
)

// Flag variables.
var (
	flagSourceSite  string
	flagSnapshotDir string
	flagNoStore     bool
	flagDebug       bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <scrape.json>",
	Short: "Normalize a scraped product file into a catalog snapshot",
	Long: `Normalize reads a JSON array of raw scraped products (title, url,
supplier, variations with size/price text), parses each into a catalog
record with botanical names, kilogram weights and CAD landed costs, and
writes a timestamped snapshot file.

Examples:
  catalogctl normalize scrape.json --source-site johnnyseeds.com
  catalogctl normalize scrape.json --out ./json_files --no-store`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&flagSourceSite, "source-site", "", "Source site recorded in the snapshot")
	normalizeCmd.Flags().StringVar(&flagSnapshotDir, "out", "", "Snapshot output directory (default: configured snapshot dir)")
	normalizeCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Skip writing records to the SQLite catalog")
	normalizeCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log each parsing decision")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	requests, err := readRequests(args[0])
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("%s contains no products", args[0])
	}

	service, closeStore, err := buildService(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	started := time.Now()

	products := make([]domain.Product, 0, len(requests))
	var errCount int
	for i, req := range requests {
		product, err := service.NormalizeProduct(ctx, &req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] ✗ %q: %v\n", i+1, len(requests), req.Title, err)
			errCount++
			continue
		}
		for _, warning := range service.ValidateProduct(product) {
			fmt.Fprintf(os.Stderr, "[%d/%d]   warning: %s\n", i+1, len(requests), warning)
		}
		products = append(products, *product)
	}

	snapshotDir := flagSnapshotDir
	if snapshotDir == "" {
		snapshotDir = cfg.Catalog.SnapshotDir
	}
	path, err := store.SaveSnapshot(snapshotDir, flagSourceSite, cfg.Catalog.CurrencyCode, time.Since(started), products)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Fprintf(os.Stdout, "✓ Normalized %d/%d products in %s\n", len(products), len(requests), time.Since(started).Round(time.Millisecond))
	fmt.Fprintf(os.Stdout, "✓ Snapshot: %s\n", path)
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d products failed\n", errCount, len(requests))
	}
	return nil
}

// readRequests decodes the raw scrape file, accepting either a bare array of
// products or a previous snapshot's envelope shape.
func readRequests(path string) ([]domain.NormalizeRequest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var requests []domain.NormalizeRequest
	if err := json.Unmarshal(payload, &requests); err == nil {
		return requests, nil
	}

	var envelope struct {
		Data []domain.NormalizeRequest `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return envelope.Data, nil
}

// buildService wires a catalog service from configuration. The returned
// cleanup function closes the SQLite store when one was opened.
func buildService(cfg *config.Config) (*usecase.CatalogService, func(), error) {
	source := registry.NewCSVSource(cfg.Registry.CommonNamesPath, cfg.Registry.CultivarsPath)
	commonNames, err := source.LoadCommonNames()
	if err != nil {
		return nil, nil, fmt.Errorf("loading common names: %w", err)
	}

	var catalogStore domain.CatalogRepository
	closeStore := func() {}
	if !flagNoStore && cfg.Catalog.SQLitePath != "" {
		sqliteStore, err := store.OpenSQLite(cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening catalog store: %w", err)
		}
		catalogStore = sqliteStore
		closeStore = func() { sqliteStore.Close() }
	}

	suppliers := make(map[string]usecase.SupplierProfile, len(cfg.Cost.Suppliers))
	for name, sc := range cfg.Cost.Suppliers {
		suppliers[name] = usecase.SupplierProfile{
			Currency: sc.Currency,
			Shipping: usecase.ShippingParams{
				MinShipping:  sc.MinShipping,
				MaxShipping:  sc.MaxShipping,
				BrokerageFee: sc.BrokerageFee,
			},
			CommercialUse: sc.CommercialUse,
		}
	}

	service := usecase.NewCatalogService(
		usecase.NewNameRegistry(commonNames),
		nil, // no cache for one-shot CLI runs
		catalogStore,
		usecase.CatalogServiceConfig{
			Province:           cfg.Cost.Province,
			Suppliers:          suppliers,
			EnableDebugLogging: flagDebug || cfg.Parser.EnableDebugLogging,
		},
	)
	return service, closeStore, nil
}
