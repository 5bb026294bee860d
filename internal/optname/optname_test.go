package optname

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uppercase lowered",
			input:    "MOLECULE",
			expected: "molecule",
		},
		{
			name:     "surrounding whitespace removed",
			input:    "  width0 ",
			expected: "width0",
		},
		{
			name:     "already canonical",
			input:    "positions",
			expected: "positions",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIndexed(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		n        int
		expected string
	}{
		{
			name:     "zeroth element",
			key:      "width",
			n:        0,
			expected: "width0",
		},
		{
			name:     "multi digit index",
			key:      "width",
			n:        12,
			expected: "width12",
		},
		{
			name:     "key normalized first",
			key:      "Width ",
			n:        3,
			expected: "width3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Indexed(tt.key, tt.n)
			if result != tt.expected {
				t.Errorf("Indexed(%q, %d) = %q, want %q", tt.key, tt.n, result, tt.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedKey string
		expectedN   int
	}{
		{
			name:        "indexed option",
			input:       "width3",
			expectedKey: "width",
			expectedN:   3,
		},
		{
			name:        "plain option",
			input:       "width",
			expectedKey: "width",
			expectedN:   -1,
		},
		{
			name:        "multi digit index",
			input:       "pos12",
			expectedKey: "pos",
			expectedN:   12,
		},
		{
			name:        "all digits",
			input:       "123",
			expectedKey: "123",
			expectedN:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, n := Split(tt.input)
			if key != tt.expectedKey || n != tt.expectedN {
				t.Errorf("Split(%q) = (%q, %d), want (%q, %d)", tt.input, key, n, tt.expectedKey, tt.expectedN)
			}
		})
	}
}
