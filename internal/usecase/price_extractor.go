package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySymbolRegex = regexp.MustCompile(`[$£€¥₹]`)
	numericTokenRegex   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// PriceExtractor pulls a numeric price out of a currency-formatted string.
type PriceExtractor struct{}

// NewPriceExtractor creates a price extractor.
func NewPriceExtractor() *PriceExtractor {
	return &PriceExtractor{}
}

// Extract strips currency symbols and thousands separators and returns the
// first numeric token. It returns nil when no number is present.
func (e *PriceExtractor) Extract(text string) *float64 {
	if text == "" {
		return nil
	}

	cleaned := currencySymbolRegex.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	token := numericTokenRegex.FindString(cleaned)
	if token == "" {
		return nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &value
}
