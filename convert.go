package configparseradv

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/folguinch/configparseradv/coords"
)

// SplitList splits val on sep (a single space when sep is empty) without
// coercing elements. The result must have at least minLen elements or
// ErrValueTooShort is returned.
func SplitList(val, sep string, minLen int) ([]string, error) {
	if sep == "" {
		sep = " "
	}
	parts := strings.Split(val, sep)
	if len(parts) < minLen {
		return nil, ErrValueTooShort
	}
	return parts, nil
}

// SplitInts splits val and coerces every element to int. Splitting is
// comma-aware: a value containing commas is split on commas; otherwise on
// sep, or on arbitrary whitespace when sep is empty.
func SplitInts(val, sep string, minLen int) ([]int, error) {
	parts := commaSplit(val, sep)
	if len(parts) < minLen {
		return nil, ErrValueTooShort
	}
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, convErr(val, "intlist", err)
		}
		out[i] = n
	}
	return out, nil
}

// SplitFloats splits val like SplitInts and coerces every element to
// float64.
func SplitFloats(val, sep string, minLen int) ([]float64, error) {
	parts := commaSplit(val, sep)
	if len(parts) < minLen {
		return nil, ErrValueTooShort
	}
	out := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, convErr(val, "floatlist", err)
		}
		out[i] = f
	}
	return out, nil
}

// commaSplit implements the two-tier splitting rule shared by the numeric
// list converters.
func commaSplit(val, sep string) []string {
	if strings.Contains(val, ",") {
		return strings.Split(val, ",")
	}
	if sep == "" {
		return strings.Fields(val)
	}
	return strings.Split(val, sep)
}

// ExpandUser wraps val as a filesystem path, expanding a leading "~" to
// the current user's home directory.
func ExpandUser(val string) string {
	if val == "" {
		return val
	}
	if val == "~" || strings.HasPrefix(val, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, val[1:])
		}
	}
	return filepath.Clean(val)
}

// ParseBool converts val to a boolean using the usual INI token rule:
// 1/yes/true/on and 0/no/false/off, case-insensitive.
func ParseBool(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, convErr(val, "bool", nil)
}

// ParseSkyCoord converts "ra dec [frame]" to a sky coordinate. The frame
// defaults to "icrs" when omitted; any other token count is an error.
func ParseSkyCoord(val string) (coords.SkyCoord, error) {
	tokens := strings.Fields(val)
	switch len(tokens) {
	case 2:
		c, err := coords.New(tokens[0], tokens[1], "icrs")
		if err != nil {
			return coords.SkyCoord{}, convErr(val, "skycoord", err)
		}
		return c, nil
	case 3:
		c, err := coords.New(tokens[0], tokens[1], tokens[2])
		if err != nil {
			return coords.SkyCoord{}, convErr(val, "skycoord", err)
		}
		return c, nil
	}
	return coords.SkyCoord{}, convErr(val, "skycoord", nil)
}
