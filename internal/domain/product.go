package domain

// Variation is a single purchasable size of a product with its normalized
// weight and landed cost.
type Variation struct {
	Size                string        `json:"size"`
	Price               float64       `json:"price"`
	IsVariationInStock  bool          `json:"is_variation_in_stock"`
	WeightKG            *float64      `json:"weight_kg"`
	OriginalWeightValue *float64      `json:"original_weight_value"`
	OriginalWeightUnit  *string       `json:"original_weight_unit"`
	SKU                 string        `json:"sku"`
	CanadianCosts       CostBreakdown `json:"canadian_costs"`
}

// Product is a fully normalized catalog record.
type Product struct {
	Title        string      `json:"title"`
	CommonName   string      `json:"common_name"`
	CultivarName string      `json:"cultivar_name"`
	Organic      bool        `json:"organic"`
	URL          string      `json:"url"`
	IsInStock    bool        `json:"is_in_stock"`
	Supplier     string      `json:"supplier,omitempty"`
	Variations   []Variation `json:"variations"`
}

// RawVariation is a scraped, un-normalized size/price pair as delivered by
// the scraping collaborator.
type RawVariation struct {
	SizeText  string `json:"size_text"`
	PriceText string `json:"price_text"`
	SKU       string `json:"sku,omitempty"`
	InStock   bool   `json:"in_stock"`
}

// NormalizeRequest is a request to normalize one scraped product.
type NormalizeRequest struct {
	Title      string         `json:"title" binding:"required"`
	URL        string         `json:"url,omitempty"`
	Supplier   string         `json:"supplier,omitempty"`
	IsInStock  bool           `json:"is_in_stock"`
	Variations []RawVariation `json:"variations,omitempty"`
}

// LandedCostRequest is a request for a standalone landed-cost calculation.
type LandedCostRequest struct {
	BasePrice      float64  `json:"base_price" binding:"required"`
	SourceCurrency string   `json:"source_currency,omitempty"`
	Province       string   `json:"province,omitempty"`
	MinShipping    float64  `json:"min_shipping,omitempty"`
	MaxShipping    float64  `json:"max_shipping,omitempty"`
	BrokerageFee   float64  `json:"brokerage_fee,omitempty"`
	WeightKG       *float64 `json:"weight_kg,omitempty"`
	CommercialUse  bool     `json:"commercial_use"`
}
