package usecase

import (
	"math"
	"regexp"
	"strconv"

	"github.com/seedcatalog/backend/internal/domain"
)

// Unit alternation ordered longest-first so "grams" wins over "g".
const unitAlternation = `kilograms|kilogram|killos|kilos|kilo|kgs|kg|grams|gram|gs|gr|g|pounds|pound|lbs|lb|ounces|ounce|oz`

// Weight patterns tried in priority order. Fractions must come before the
// multiplicative form, which must come before the single-value form, so
// "1/4 pound" is not read as "4 pound" and "5 x 500 g" is not read as "5 g".
var (
	fractionWeightRegex = regexp.MustCompile(`(?i)(\d+)/(\d+)\s*(` + unitAlternation + `)\b`)
	multipleWeightRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*(` + unitAlternation + `)\b`)
	singleWeightRegex   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(` + unitAlternation + `)\b`)
)

// WeightParser extracts a weight measurement from free text and converts it
// to kilograms.
type WeightParser struct {
	units *UnitConverter
}

// NewWeightParser creates a weight parser backed by the given unit converter.
func NewWeightParser(units *UnitConverter) *WeightParser {
	return &WeightParser{units: units}
}

// Parse extracts weight information from text. It returns nil when the text
// carries no recognizable weight token; that is the normal case for many
// titles and is not an error.
func (p *WeightParser) Parse(text string) *domain.WeightMeasurement {
	if text == "" {
		return nil
	}

	if m := fractionWeightRegex.FindStringSubmatch(text); m != nil {
		numerator, _ := strconv.ParseFloat(m[1], 64)
		denominator, _ := strconv.ParseFloat(m[2], 64)
		if denominator == 0 {
			return nil
		}
		return p.measurement(numerator/denominator, m[3])
	}

	if m := multipleWeightRegex.FindStringSubmatch(text); m != nil {
		quantity, _ := strconv.ParseFloat(m[1], 64)
		each, _ := strconv.ParseFloat(m[2], 64)
		return p.measurement(quantity*each, m[3])
	}

	if m := singleWeightRegex.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		return p.measurement(value, m[2])
	}

	return nil
}

// measurement builds a WeightMeasurement from a resolved total value and a
// raw unit token.
func (p *WeightParser) measurement(value float64, unit string) *domain.WeightMeasurement {
	factor, ok := p.units.Factor(unit)
	if !ok {
		return nil
	}
	return &domain.WeightMeasurement{
		OriginalValue: value,
		OriginalUnit:  p.units.Normalize(unit),
		WeightKG:      roundTo(value*factor, 6),
	}
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
