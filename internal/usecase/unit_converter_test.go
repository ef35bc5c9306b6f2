package usecase

import "testing"

func TestFactor(t *testing.T) {
	c := NewUnitConverter()

	tests := []struct {
		unit   string
		factor float64
		ok     bool
	}{
		{"kg", 1.0, true},
		{"kilograms", 1.0, true},
		{"killos", 1.0, true},
		{"g", 0.001, true},
		{"gr", 0.001, true},
		{"grams", 0.001, true},
		{"lb", 0.45359237, true},
		{"pounds", 0.45359237, true},
		{"oz", 0.0283495231, true},
		{"OZ", 0.0283495231, true},
		{" kg ", 1.0, true},
		{"stone", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			factor, ok := c.Factor(tt.unit)
			if ok != tt.ok {
				t.Fatalf("Factor(%q) ok = %v, want %v", tt.unit, ok, tt.ok)
			}
			if ok && factor != tt.factor {
				t.Errorf("Factor(%q) = %v, want %v", tt.unit, factor, tt.factor)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	c := NewUnitConverter()

	t.Run("rewrites the killos typo", func(t *testing.T) {
		if got := c.Normalize("Killos"); got != "kilos" {
			t.Errorf("Normalize(Killos) = %q, want kilos", got)
		}
	})

	t.Run("lowercases other units unchanged", func(t *testing.T) {
		if got := c.Normalize("KG"); got != "kg" {
			t.Errorf("Normalize(KG) = %q, want kg", got)
		}
	})
}

func TestFullName(t *testing.T) {
	c := NewUnitConverter()

	tests := []struct {
		unit     string
		singular bool
		want     string
	}{
		{"g", false, "grams"},
		{"g", true, "gram"},
		{"gs", false, "grams"},
		{"kg", false, "kilograms"},
		{"kilos", true, "kilogram"},
		{"lbs", false, "pounds"},
		{"oz", true, "ounce"},
		{"widgets", false, "widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			if got := c.FullName(tt.unit, tt.singular); got != tt.want {
				t.Errorf("FullName(%q, %v) = %q, want %q", tt.unit, tt.singular, got, tt.want)
			}
		})
	}
}
