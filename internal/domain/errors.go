package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRegistryUnavailable is returned when the name registry cannot be loaded
	ErrRegistryUnavailable = errors.New("name registry unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is returned when the catalog store cannot be reached
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// ErrProductNotFound is returned when a product is not in the catalog store
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
