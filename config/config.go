package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Registry  RegistryConfig
	Catalog   CatalogConfig
	Cost      CostConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Parser    ParserConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RegistryConfig holds the known-name registry file locations
type RegistryConfig struct {
	CommonNamesPath string `mapstructure:"common_names_path"`
	CultivarsPath   string `mapstructure:"cultivars_path"`
}

// CatalogConfig holds catalog persistence configuration
type CatalogConfig struct {
	SQLitePath   string `mapstructure:"sqlite_path"`
	SnapshotDir  string `mapstructure:"snapshot_dir"`
	CurrencyCode string `mapstructure:"currency_code"`
}

// CostConfig holds landed-cost calculation configuration
type CostConfig struct {
	Province  string                    `mapstructure:"province"`
	Suppliers map[string]SupplierConfig `mapstructure:"suppliers"`
}

// SupplierConfig describes one supplier's currency and shipping terms
type SupplierConfig struct {
	Currency      string  `mapstructure:"currency"`
	MinShipping   float64 `mapstructure:"min_shipping"`
	MaxShipping   float64 `mapstructure:"max_shipping"`
	BrokerageFee  float64 `mapstructure:"brokerage_fee"`
	CommercialUse bool    `mapstructure:"commercial_use"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// ParserConfig holds name-parser configuration
type ParserConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/seedcatalog/")

	// Environment variable settings
	v.SetEnvPrefix("SEEDCATALOG")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Registry defaults
	v.SetDefault("registry.common_names_path", "scraper_data/common_names.csv")
	v.SetDefault("registry.cultivars_path", "scraper_data/cultivars.csv")

	// Catalog defaults
	v.SetDefault("catalog.sqlite_path", "scraper_data/catalog.db")
	v.SetDefault("catalog.snapshot_dir", "scraper_data/json_files")
	v.SetDefault("catalog.currency_code", "CAD")

	// Cost defaults
	v.SetDefault("cost.province", "BC")
	v.SetDefault("cost.suppliers.johnnyseeds.currency", "USD")
	v.SetDefault("cost.suppliers.johnnyseeds.min_shipping", 12.50)
	v.SetDefault("cost.suppliers.johnnyseeds.max_shipping", 125.00)
	v.SetDefault("cost.suppliers.johnnyseeds.brokerage_fee", 17.50)
	v.SetDefault("cost.suppliers.johnnyseeds.commercial_use", true)
	v.SetDefault("cost.suppliers.sprouting.currency", "CAD")
	v.SetDefault("cost.suppliers.sprouting.commercial_use", true)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Parser defaults
	v.SetDefault("parser.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Cost.Province == "" {
		return fmt.Errorf("cost province is required (set SEEDCATALOG_COST_PROVINCE)")
	}

	if config.Registry.CommonNamesPath == "" {
		return fmt.Errorf("registry common names path is required")
	}

	for name, supplier := range config.Cost.Suppliers {
		if supplier.Currency == "" {
			return fmt.Errorf("supplier %q is missing a currency", name)
		}
		if supplier.MinShipping > supplier.MaxShipping {
			return fmt.Errorf("supplier %q has min_shipping above max_shipping", name)
		}
	}

	return nil
}
