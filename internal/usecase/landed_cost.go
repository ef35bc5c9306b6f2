package usecase

import (
	"math"
	"strings"

	"github.com/seedcatalog/backend/internal/domain"
)

// DestinationCurrency is the fixed target currency for all cost breakdowns.
const DestinationCurrency = "CAD"

// exchangeRates converts supported source currencies to CAD.
var exchangeRates = map[string]float64{
	"CAD": 1.0,
	"USD": 1.37,
}

// provincialTaxRates holds combined GST + PST/HST rates per province or
// territory. Unknown codes fall back to defaultTaxRate.
var provincialTaxRates = map[string]float64{
	"BC": 0.12, // 5% GST + 7% PST
	"AB": 0.05, // 5% GST only
	"SK": 0.11, // 5% GST + 6% PST
	"MB": 0.12, // 5% GST + 7% PST
	"ON": 0.13, // 13% HST
	"QC": 0.15, // 5% GST + 9.975% QST
	"NB": 0.15, // 15% HST
	"NS": 0.15, // 15% HST
	"PE": 0.15, // 15% HST
	"NL": 0.15, // 15% HST
	"YT": 0.05, // 5% GST only
	"NT": 0.05, // 5% GST only
	"NU": 0.05, // 5% GST only
}

const defaultTaxRate = 0.13 // ON rate

// International shipping interpolation band. Orders below the low bound pay
// the supplier's minimum rate, orders above the high bound pay the maximum.
// These are domain constants; downstream catalog comparisons depend on them
// staying stable across rebuilds.
const (
	shippingBandLow  = 25.0
	shippingBandHigh = 400.0
)

// ShippingParams carries a supplier's shipping cost range (in the supplier's
// currency) and flat brokerage fee (in CAD).
type ShippingParams struct {
	MinShipping  float64
	MaxShipping  float64
	BrokerageFee float64
}

// LandedCostCalculator converts a source-currency price into a full CAD
// landed-cost breakdown under Canadian import rules. Stateless and safe for
// concurrent use.
type LandedCostCalculator struct{}

// NewLandedCostCalculator creates a landed cost calculator.
func NewLandedCostCalculator() *LandedCostCalculator {
	return &LandedCostCalculator{}
}

// Calculate produces the cost breakdown for one purchase.
//
// Shipping: cross-currency shipments with a configured min/max range
// interpolate on the base price within the $25-$400 band; domestic shipments
// with a known weight use the weight-tiered parcel table; otherwise shipping
// is zero. Seeds are duty-exempt. Taxes apply to the converted base price
// only, and commercial agricultural seed from a domestic supplier is
// tax-exempt. Brokerage applies only to cross-currency shipments.
func (c *LandedCostCalculator) Calculate(
	basePrice float64,
	sourceCurrency string,
	province string,
	params ShippingParams,
	weightKG *float64,
	commercialUse bool,
) domain.CostBreakdown {
	if basePrice <= 0 {
		return domain.CostBreakdown{}
	}

	sourceCurrency = strings.ToUpper(strings.TrimSpace(sourceCurrency))
	if sourceCurrency == "" {
		sourceCurrency = DestinationCurrency
	}
	rate, ok := exchangeRates[sourceCurrency]
	if !ok {
		rate = 1.0
	}
	basePriceCAD := basePrice * rate
	international := sourceCurrency != DestinationCurrency

	var shippingCAD float64
	switch {
	case international && params.MinShipping > 0 && params.MaxShipping > 0:
		shippingCAD = interpolateShipping(basePrice, params) * rate
	case !international && weightKG != nil:
		shippingCAD = DomesticParcelShipping(*weightKG)
	}

	dutiesCAD := 0.0 // seeds are duty-exempt

	var taxesCAD float64
	if !international && commercialUse {
		taxesCAD = 0.0
	} else {
		taxesCAD = basePriceCAD * taxRateFor(province)
	}

	var brokerageCAD float64
	if international {
		brokerageCAD = params.BrokerageFee
	}

	totalCAD := basePriceCAD + shippingCAD + dutiesCAD + taxesCAD + brokerageCAD

	markup := 0.0
	if basePriceCAD > 0 {
		markup = (totalCAD - basePriceCAD) / basePriceCAD * 100
	}

	return domain.CostBreakdown{
		BasePriceCAD:     round2(basePriceCAD),
		ShippingCAD:      round2(shippingCAD),
		DutiesCAD:        round2(dutiesCAD),
		TaxesCAD:         round2(taxesCAD),
		BrokerageCAD:     round2(brokerageCAD),
		TotalCAD:         round2(totalCAD),
		MarkupPercentage: round1(markup),
	}
}

// interpolateShipping maps a source-currency base price onto the supplier's
// shipping range.
func interpolateShipping(basePrice float64, params ShippingParams) float64 {
	switch {
	case basePrice < shippingBandLow:
		return params.MinShipping
	case basePrice > shippingBandHigh:
		return params.MaxShipping
	default:
		return params.MinShipping + (basePrice/shippingBandHigh)*(params.MaxShipping-params.MinShipping)
	}
}

// DomesticParcelShipping returns the expedited-parcel cost for a domestic
// shipment. Per-kg rates decrease with weight to reflect carrier bulk
// economies; the tier boundaries come from real invoice data and must not be
// re-derived.
func DomesticParcelShipping(weightKG float64) float64 {
	if weightKG <= 0 {
		return 0.0
	}
	switch {
	case weightKG <= 2:
		return weightKG * 12.90
	case weightKG <= 5:
		return weightKG * 7.02
	case weightKG <= 15:
		return weightKG * 4.15
	case weightKG <= 35:
		return weightKG * 2.90
	default:
		return weightKG * 2.34
	}
}

// taxRateFor returns the combined tax rate for a province code, defaulting
// to the Ontario rate for unknown codes.
func taxRateFor(province string) float64 {
	if rate, ok := provincialTaxRates[strings.ToUpper(strings.TrimSpace(province))]; ok {
		return rate
	}
	return defaultTaxRate
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
