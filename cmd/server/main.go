package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seedcatalog/backend/config"
	httpDelivery "github.com/seedcatalog/backend/internal/delivery/http"
	"github.com/seedcatalog/backend/internal/domain"
	"github.com/seedcatalog/backend/internal/infrastructure/cache"
	"github.com/seedcatalog/backend/internal/infrastructure/registry"
	"github.com/seedcatalog/backend/internal/infrastructure/store"
	"github.com/seedcatalog/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SeedCatalog Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Province: %s", cfg.Cost.Province)

	// Load the known-name registry once; it is immutable afterwards.
	source := registry.NewCSVSource(cfg.Registry.CommonNamesPath, cfg.Registry.CultivarsPath)
	commonNames, err := source.LoadCommonNames()
	if err != nil {
		log.Fatalf("Failed to load common names: %v", err)
	}
	nameRegistry := usecase.NewNameRegistry(commonNames)
	log.Printf("Registry: %d common names", nameRegistry.Len())

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	var catalogStore domain.CatalogRepository
	if cfg.Catalog.SQLitePath != "" {
		sqliteStore, err := store.OpenSQLite(cfg.Catalog.SQLitePath)
		if err != nil {
			log.Printf("WARNING: catalog store unavailable, running without persistence: %v", err)
		} else {
			defer sqliteStore.Close()
			catalogStore = sqliteStore
			log.Printf("Catalog store: %s", cfg.Catalog.SQLitePath)
		}
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		nameRegistry,
		memoryCache,
		catalogStore,
		usecase.CatalogServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			Province:           cfg.Cost.Province,
			Suppliers:          supplierProfiles(cfg.Cost.Suppliers),
			EnableDebugLogging: cfg.Parser.EnableDebugLogging,
		},
	)

	log.Printf("Suppliers configured: %d, parser debug=%v",
		len(cfg.Cost.Suppliers), cfg.Parser.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// supplierProfiles converts configured supplier terms into cost profiles.
func supplierProfiles(configured map[string]config.SupplierConfig) map[string]usecase.SupplierProfile {
	profiles := make(map[string]usecase.SupplierProfile, len(configured))
	for name, sc := range configured {
		profiles[name] = usecase.SupplierProfile{
			Currency: sc.Currency,
			Shipping: usecase.ShippingParams{
				MinShipping:  sc.MinShipping,
				MaxShipping:  sc.MaxShipping,
				BrokerageFee: sc.BrokerageFee,
			},
			CommercialUse: sc.CommercialUse,
		}
	}
	return profiles
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
