package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching normalized products
type CacheRepository interface {
	Get(ctx context.Context, key string) (*Product, error)
	Set(ctx context.Context, key string, value *Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository defines the interface for catalog persistence
type CatalogRepository interface {
	SaveProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, supplier, title string) (*Product, error)
	ListByCommonName(ctx context.Context, commonName string) ([]Product, error)
	Close() error
}

// RegistrySource defines the interface for loading known-name registries.
// Implementations load once at startup; the resulting list is treated as
// read-only for the life of the process.
type RegistrySource interface {
	LoadCommonNames() ([]string, error)
	LoadCultivars() ([]string, error)
}
