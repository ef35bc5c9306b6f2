package usecase

import "testing"

func TestStandardize(t *testing.T) {
	units := NewUnitConverter()
	f := NewSizeFormatter(units)
	p := NewWeightParser(units)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"abbreviation expanded", "500 g", "500 grams"},
		{"synonym collapses to same form", "500 gs", "500 grams"},
		{"no space variant", "500g", "500 grams"},
		{"singular for exactly one", "1 kg", "1 kilogram"},
		{"decimal stays plural", "1.5 kg", "1.5 kilograms"},
		{"pack notation uses total", "5 x 500 g", "2500 grams"},
		{"fraction renders as decimal", "1/4 pound", "0.25 pounds"},
		{"killos typo repaired", "2 Killos", "2 kilograms"},
		{"unparseable text passes through", "25 seeds", "25 seeds"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Standardize(tt.text, p.Parse(tt.text)); got != tt.want {
				t.Errorf("Standardize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
