package configparseradv

import (
	"errors"
	"testing"

	"github.com/folguinch/configparseradv/units"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		expected units.Quantity
	}{
		{
			name:     "dimensionless scalar",
			val:      "10",
			expected: units.New(10, units.Dimensionless),
		},
		{
			name:     "single quantity",
			val:      "10 m",
			expected: units.New(10, units.MustParse("m")),
		},
		{
			name:     "array with trailing unit",
			val:      "1 2 3 m",
			expected: units.NewArray([]float64{1, 2, 3}, units.MustParse("m")),
		},
		{
			name:     "dimensionless marker array",
			val:      "1 2 dimless",
			expected: units.NewArray([]float64{1, 2}, units.Dimensionless),
		},
		{
			name:     "nounit marker",
			val:      "1 2 3 nounit",
			expected: units.NewArray([]float64{1, 2, 3}, units.Dimensionless),
		},
		{
			name:     "unit of one marker",
			val:      "4 5 1",
			expected: units.NewArray([]float64{4, 5}, units.Dimensionless),
		},
		{
			name:     "compound unit",
			val:      "-87.0 km/s",
			expected: units.New(-87, units.MustParse("km/s")),
		},
		{
			name:     "extra whitespace",
			val:      "  10   m ",
			expected: units.New(10, units.MustParse("m")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuantity(tt.val)
			if err != nil {
				t.Fatalf("ParseQuantity returned error: %v", err)
			}
			if !q.Equal(tt.expected) {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.val, q, tt.expected)
			}
		})
	}
}

func TestParseQuantity_Errors(t *testing.T) {
	tests := []struct {
		name string
		val  string
	}{
		{name: "empty", val: ""},
		{name: "malformed number", val: "ten m"},
		{name: "unknown unit", val: "10 furlong"},
		{name: "malformed array element", val: "1 two 3 m"},
		{name: "unknown array unit", val: "1 2 3 furlong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuantity(tt.val)
			var cerr *ConversionError
			if !errors.As(err, &cerr) {
				t.Fatalf("ParseQuantity(%q): expected ConversionError, got %v", tt.val, err)
			}
		})
	}
}

func TestGetValue_EmptyQuantityIsAbsent(t *testing.T) {
	store := NewMapStore()
	store.Set("source", "vlsr", "   ")
	r := New(store)

	v, err := r.GetValue("source", "vlsr", WithDType(DTypeQuantity))
	if err != nil {
		t.Fatalf("GetValue returned error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil for empty quantity text, got %v", v)
	}
}
