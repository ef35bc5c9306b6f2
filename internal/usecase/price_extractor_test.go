package usecase

import "testing"

func TestExtract(t *testing.T) {
	e := NewPriceExtractor()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"dollar sign", "$11.50", 11.50},
		{"currency prefix", "CDN $5.00", 5.00},
		{"thousands separator", "$1,234.56", 1234.56},
		{"pound sign", "£3", 3},
		{"euro sign", "€4.25", 4.25},
		{"bare number", "12", 12},
		{"first number wins", "$10.00 was $15.00", 10.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got == nil {
				t.Fatalf("Extract(%q) = nil, want %v", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestExtractNoPrice(t *testing.T) {
	e := NewPriceExtractor()

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"sold out", "Sold out"},
		{"symbol only", "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text); got != nil {
				t.Errorf("Extract(%q) = %v, want nil", tt.text, *got)
			}
		})
	}
}
