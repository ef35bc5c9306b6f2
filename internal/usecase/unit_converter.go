package usecase

import "strings"

// Conversion factors from each recognized unit synonym to kilograms.
// "killos" is a supplier typo that shows up often enough to be worth
// recognizing; it is normalized to "kilos" on output but converts the same.
var unitFactors = map[string]float64{
	"kg":        1.0,
	"kgs":       1.0,
	"kilo":      1.0,
	"kilos":     1.0,
	"killos":    1.0,
	"kilogram":  1.0,
	"kilograms": 1.0,
	"g":         0.001,
	"gr":        0.001,
	"gs":        0.001,
	"gram":      0.001,
	"grams":     0.001,
	"lb":        0.45359237,
	"lbs":       0.45359237,
	"pound":     0.45359237,
	"pounds":    0.45359237,
	"oz":        0.0283495231,
	"ounce":     0.0283495231,
	"ounces":    0.0283495231,
}

// unitFullNames maps unit synonyms to the singular full display name used by
// the size formatter.
var unitFullNames = map[string]string{
	"kg":        "kilogram",
	"kgs":       "kilogram",
	"kilo":      "kilogram",
	"kilos":     "kilogram",
	"killos":    "kilogram",
	"kilogram":  "kilogram",
	"kilograms": "kilogram",
	"g":         "gram",
	"gr":        "gram",
	"gs":        "gram",
	"gram":      "gram",
	"grams":     "gram",
	"lb":        "pound",
	"lbs":       "pound",
	"pound":     "pound",
	"pounds":    "pound",
	"oz":        "ounce",
	"ounce":     "ounce",
	"ounces":    "ounce",
}

// UnitConverter resolves weight unit synonyms to kilogram conversion factors
// and display names. It is a stateless leaf; one instance can be shared.
type UnitConverter struct{}

// NewUnitConverter creates a unit converter.
func NewUnitConverter() *UnitConverter {
	return &UnitConverter{}
}

// Factor returns the kilogram conversion factor for a unit synonym.
// Lookup is case-insensitive.
func (c *UnitConverter) Factor(unit string) (float64, bool) {
	f, ok := unitFactors[strings.ToLower(strings.TrimSpace(unit))]
	return f, ok
}

// Normalize maps a recognized unit synonym to its canonical spelling.
// Currently only the "killos" typo is rewritten.
func (c *UnitConverter) Normalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "killos" {
		return "kilos"
	}
	return u
}

// FullName returns the full display name for a unit, pluralized unless
// singular is requested. Unknown units are returned unchanged.
func (c *UnitConverter) FullName(unit string, singular bool) string {
	name, ok := unitFullNames[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return unit
	}
	if singular {
		return name
	}
	return name + "s"
}
