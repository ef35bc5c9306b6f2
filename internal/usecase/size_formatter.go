package usecase

import (
	"fmt"
	"strconv"

	"github.com/seedcatalog/backend/internal/domain"
)

// SizeFormatter renders a parsed weight back into a canonical display string
// so sizes compare equal across suppliers ("500g", "500 gs" -> "500 grams").
type SizeFormatter struct {
	units *UnitConverter
}

// NewSizeFormatter creates a size formatter backed by the given unit converter.
func NewSizeFormatter(units *UnitConverter) *SizeFormatter {
	return &SizeFormatter{units: units}
}

// Standardize renders "{value} {unit full name}" for a parsed weight. When no
// weight was parsed the original text is returned unchanged; the formatter
// never fabricates size data.
func (f *SizeFormatter) Standardize(original string, parsed *domain.WeightMeasurement) string {
	if parsed == nil {
		return original
	}
	singular := parsed.OriginalValue == 1
	return fmt.Sprintf("%s %s", formatValue(parsed.OriginalValue), f.units.FullName(parsed.OriginalUnit, singular))
}

// formatValue renders whole numbers without a decimal point.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
