package usecase

import (
	"math"
	"testing"
)

func TestWeightParse(t *testing.T) {
	p := NewWeightParser(NewUnitConverter())

	tests := []struct {
		name      string
		text      string
		wantValue float64
		wantUnit  string
		wantKG    float64
	}{
		{"plain grams", "500 g", 500, "g", 0.5},
		{"no space before unit", "500g", 500, "g", 0.5},
		{"full unit name", "2 kilograms", 2, "kilograms", 2},
		{"decimal value", "1.5 kg", 1.5, "kg", 1.5},
		{"pack notation", "5 x 500 g", 2500, "g", 2.5},
		{"pack notation uppercase X", "2 X 1 kg", 2, "kg", 2},
		{"fraction", "1/4 pound", 0.25, "pound", 0.113398},
		{"fraction beats multiplicative", "1/2 lb bag", 0.5, "lb", 0.226796},
		{"ounces", "4 oz", 4, "oz", 0.113398},
		{"killos typo normalized", "2 Killos", 2, "kilos", 2},
		{"weight inside longer text", "Bulk bag, 25 lbs, resealable", 25, "lbs", 11.339809},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text)
			if got == nil {
				t.Fatalf("Parse(%q) = nil, want measurement", tt.text)
			}
			if got.OriginalValue != tt.wantValue {
				t.Errorf("OriginalValue = %v, want %v", got.OriginalValue, tt.wantValue)
			}
			if got.OriginalUnit != tt.wantUnit {
				t.Errorf("OriginalUnit = %q, want %q", got.OriginalUnit, tt.wantUnit)
			}
			if math.Abs(got.WeightKG-tt.wantKG) > 1e-6 {
				t.Errorf("WeightKG = %v, want %v", got.WeightKG, tt.wantKG)
			}
		})
	}
}

func TestWeightParseNoMatch(t *testing.T) {
	p := NewWeightParser(NewUnitConverter())

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"seed count", "25 seeds"},
		{"count only", "Packet of 100"},
		{"unknown unit", "3 bushels"},
		{"no digits", "large packet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Parse(tt.text); got != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.text, got)
			}
		})
	}
}

func TestWeightParseZeroDenominator(t *testing.T) {
	p := NewWeightParser(NewUnitConverter())
	if got := p.Parse("1/0 kg"); got != nil {
		t.Errorf("Parse(1/0 kg) = %+v, want nil", got)
	}
}
