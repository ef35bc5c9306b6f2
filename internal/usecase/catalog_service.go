package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/seedcatalog/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// organicKeywords mark a title as organic stock.
var organicKeywords = []string{"organic", "biologique", "bio ", " bio"}

// SupplierProfile describes how a supplier's prices are converted to landed
// cost: the supplier's currency, its shipping range and brokerage fee, and
// whether purchases are for commercial agricultural use.
type SupplierProfile struct {
	Currency      string
	Shipping      ShippingParams
	CommercialUse bool
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	Province           string
	DefaultProfile     SupplierProfile
	Suppliers          map[string]SupplierProfile
	EnableDebugLogging bool
}

// CatalogService turns raw scraped strings into normalized catalog records.
// Flow per product: check cache -> parse name -> normalize variations ->
// compute landed costs -> persist -> cache -> return.
type CatalogService struct {
	cache      domain.CacheRepository
	catalog    domain.CatalogRepository
	nameParser *BotanicalNameParser
	weights    *WeightParser
	sizes      *SizeFormatter
	prices     *PriceExtractor
	costs      *LandedCostCalculator

	cacheTTL       time.Duration
	province       string
	defaultProfile SupplierProfile
	suppliers      map[string]SupplierProfile
	debug          bool
}

// NewCatalogService creates a catalog service with dependencies. The cache
// and catalog repositories are optional; a nil repository disables that
// concern without changing normalization results.
func NewCatalogService(
	registry *NameRegistry,
	cache domain.CacheRepository,
	catalog domain.CatalogRepository,
	config CatalogServiceConfig,
) *CatalogService {
	units := NewUnitConverter()

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	province := config.Province
	if province == "" {
		province = "BC"
	}

	defaultProfile := config.DefaultProfile
	if defaultProfile.Currency == "" {
		defaultProfile.Currency = DestinationCurrency
		defaultProfile.CommercialUse = true
	}

	return &CatalogService{
		cache:          cache,
		catalog:        catalog,
		nameParser:     NewBotanicalNameParser(registry, config.EnableDebugLogging),
		weights:        NewWeightParser(units),
		sizes:          NewSizeFormatter(units),
		prices:         NewPriceExtractor(),
		costs:          NewLandedCostCalculator(),
		cacheTTL:       cacheTTL,
		province:       province,
		defaultProfile: defaultProfile,
		suppliers:      config.Suppliers,
		debug:          config.EnableDebugLogging,
	}
}

// NormalizeProduct converts one scraped product into a catalog record.
func (s *CatalogService) NormalizeProduct(ctx context.Context, req *domain.NormalizeRequest) (*domain.Product, error) {
	if req == nil || strings.TrimSpace(req.Title) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.generateCacheKey(req)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			return cached, nil
		}
	}

	parsed := s.nameParser.Parse(req.Title)
	profile := s.profileFor(req.Supplier)

	product := &domain.Product{
		Title:        req.Title,
		CommonName:   parsed.CommonName,
		CultivarName: parsed.CultivarName,
		Organic:      IsOrganic(req.Title),
		URL:          req.URL,
		IsInStock:    req.IsInStock,
		Supplier:     req.Supplier,
		Variations:   make([]domain.Variation, 0, len(req.Variations)),
	}

	for _, raw := range req.Variations {
		product.Variations = append(product.Variations, s.normalizeVariation(raw, profile))
	}

	if s.debug {
		log.Printf("[CATALOG] %q -> common=%q cultivar=%q organic=%v variations=%d",
			req.Title, product.CommonName, product.CultivarName, product.Organic, len(product.Variations))
	}

	if s.catalog != nil {
		if err := s.catalog.SaveProduct(ctx, product); err != nil {
			// Persistence failure must not block normalization.
			log.Printf("[CATALOG] save failed for %q: %v", req.Title, err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, product, s.cacheTTL); err != nil {
			log.Printf("[CATALOG] cache set failed for %q: %v", req.Title, err)
		}
	}

	return product, nil
}

// normalizeVariation parses weight and price out of one raw size/price pair
// and prices it under the supplier's cost rules.
func (s *CatalogService) normalizeVariation(raw domain.RawVariation, profile SupplierProfile) domain.Variation {
	measurement := s.weights.Parse(raw.SizeText)

	price := 0.0
	if p := s.prices.Extract(raw.PriceText); p != nil {
		price = *p
	}

	sku := raw.SKU
	if sku == "" {
		sku = domain.NotAvailable
	}

	variation := domain.Variation{
		Size:               s.sizes.Standardize(raw.SizeText, measurement),
		Price:              price,
		IsVariationInStock: raw.InStock,
		SKU:                sku,
	}

	var weightKG *float64
	if measurement != nil {
		kg := measurement.WeightKG
		value := measurement.OriginalValue
		unit := measurement.OriginalUnit
		weightKG = &kg
		variation.WeightKG = &kg
		variation.OriginalWeightValue = &value
		variation.OriginalWeightUnit = &unit
	}

	variation.CanadianCosts = s.costs.Calculate(
		price,
		profile.Currency,
		s.province,
		profile.Shipping,
		weightKG,
		profile.CommercialUse,
	)

	return variation
}

// LandedCost computes a standalone cost breakdown outside of product
// normalization.
func (s *CatalogService) LandedCost(req *domain.LandedCostRequest) domain.CostBreakdown {
	if req == nil {
		return domain.CostBreakdown{}
	}
	currency := req.SourceCurrency
	if currency == "" {
		currency = DestinationCurrency
	}
	province := req.Province
	if province == "" {
		province = s.province
	}
	return s.costs.Calculate(
		req.BasePrice,
		currency,
		province,
		ShippingParams{
			MinShipping:  req.MinShipping,
			MaxShipping:  req.MaxShipping,
			BrokerageFee: req.BrokerageFee,
		},
		req.WeightKG,
		req.CommercialUse,
	)
}

// ParseTitle exposes bare name parsing for callers that already have
// normalized variations.
func (s *CatalogService) ParseTitle(title string) domain.ParsedName {
	return s.nameParser.Parse(title)
}

// CommonNames returns the registry contents, longest first.
func (s *CatalogService) CommonNames() []string {
	return s.nameParser.registry.Names()
}

// ValidateProduct reports non-fatal data quality warnings: missing fields,
// non-positive weights, and cultivar names that will need quoting for
// display. Warnings never block a record.
func (s *CatalogService) ValidateProduct(product *domain.Product) []string {
	var warnings []string
	if product == nil {
		return []string{"product is nil"}
	}
	if product.Title == "" {
		warnings = append(warnings, "missing title")
	}
	if product.URL == "" {
		warnings = append(warnings, "missing url")
	}
	if len(product.Variations) == 0 {
		warnings = append(warnings, "product has no variations")
	}
	for i, v := range product.Variations {
		if v.Price <= 0 {
			warnings = append(warnings, fmt.Sprintf("variation %d (%s): non-positive price", i, v.Size))
		}
		if v.WeightKG != nil && *v.WeightKG <= 0 {
			warnings = append(warnings, fmt.Sprintf("variation %d (%s): non-positive weight", i, v.Size))
		}
	}
	return warnings
}

// FormatDisplayName renders "Common 'Cultivar' descriptors" per horticultural
// convention; the cultivar is single-quoted only at display time.
func FormatDisplayName(name domain.ParsedName) string {
	if name.CommonName == domain.NotAvailable {
		return domain.NotAvailable
	}
	formatted := name.CommonName
	if name.CultivarName != domain.NotAvailable {
		formatted += " '" + name.CultivarName + "'"
	}
	if name.AdditionalDescriptors != domain.NotAvailable {
		formatted += " " + name.AdditionalDescriptors
	}
	return formatted
}

// IsOrganic reports whether a title carries an organic marker.
func IsOrganic(title string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, kw := range organicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// profileFor resolves the cost profile for a supplier, falling back to the
// default profile.
func (s *CatalogService) profileFor(supplier string) SupplierProfile {
	if profile, ok := s.suppliers[strings.ToLower(strings.TrimSpace(supplier))]; ok {
		return profile
	}
	return s.defaultProfile
}

// generateCacheKey creates a normalized cache key from a normalize request.
// Format: "catalog:{supplier}:{normalized_title}"
func (s *CatalogService) generateCacheKey(req *domain.NormalizeRequest) string {
	return fmt.Sprintf("catalog:%s:%s", normalizeForCacheKey(req.Supplier), normalizeForCacheKey(req.Title))
}

// normalizeForCacheKey lowercases, strips special characters and collapses
// whitespace so equivalent titles share a key.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
