package domain

// NotAvailable is the sentinel used for any name component that could not be
// resolved. Components are never empty strings, so downstream equality checks
// against the sentinel are stable across suppliers.
const NotAvailable = "N/A"

// ParsedName is the structured form of a free-text product title.
type ParsedName struct {
	CommonName            string `json:"common_name"`
	CultivarName          string `json:"cultivar_name"`
	AdditionalDescriptors string `json:"additional_descriptors"`
}

// WeightMeasurement is a weight extracted from free text, converted to
// kilograms. OriginalValue holds the resolved total for fraction and
// multiplicative forms ("5 x 500 g" stores 2500), not the first token matched.
type WeightMeasurement struct {
	OriginalValue float64 `json:"original_weight_value"`
	OriginalUnit  string  `json:"original_weight_unit"`
	WeightKG      float64 `json:"weight_kg"`
}

// CostBreakdown is the landed cost of a product in CAD. The five component
// fields sum to TotalCAD within rounding tolerance; all amounts are rounded
// to 2 decimals and MarkupPercentage to 1.
type CostBreakdown struct {
	BasePriceCAD     float64 `json:"base_price_cad"`
	ShippingCAD      float64 `json:"shipping_cad"`
	DutiesCAD        float64 `json:"duties_cad"`
	TaxesCAD         float64 `json:"taxes_cad"`
	BrokerageCAD     float64 `json:"brokerage_cad"`
	TotalCAD         float64 `json:"total_cad"`
	MarkupPercentage float64 `json:"markup_percentage"`
}
