// Package units provides a small unit registry and the Quantity type used
// for unit-tagged configuration values.
//
// Units are identified by their symbol. Compound symbols built from known
// bases with SI prefixes, integer exponents, and the separators "*", "/",
// and "." are accepted (e.g. "km/s", "cm-3", "W/m2").
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit symbol cannot be resolved
// against the registry.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Unit identifies a (possibly compound) physical unit by symbol.
// The zero value is the dimensionless unit.
type Unit struct {
	symbol string
}

// Dimensionless is the unit of 1.
var Dimensionless = Unit{}

// Symbol returns the unit symbol, empty for dimensionless.
func (u Unit) Symbol() string {
	return u.symbol
}

// IsDimensionless reports whether the unit is the unit of 1.
func (u Unit) IsDimensionless() bool {
	return u.symbol == ""
}

func (u Unit) String() string {
	if u.symbol == "" {
		return "dimensionless"
	}
	return u.symbol
}

// bases lists the recognized unit symbols. Astronomy-flavored on purpose:
// the config files this module targets come from astronomical pipelines.
var bases = map[string]bool{
	// SI bases and common derived units
	"m": true, "s": true, "g": true, "A": true, "K": true, "mol": true,
	"cd": true, "rad": true, "sr": true, "Hz": true, "N": true, "Pa": true,
	"J": true, "W": true, "C": true, "V": true, "T": true, "eV": true,
	"bar": true, "L": true,
	// time
	"min": true, "h": true, "d": true, "yr": true, "a": true,
	// angles
	"deg": true, "arcmin": true, "arcsec": true, "mas": true, "uas": true,
	"hourangle": true,
	// astronomy
	"Jy": true, "pc": true, "au": true, "AU": true, "lyr": true,
	"Msun": true, "Rsun": true, "Lsun": true, "mag": true, "Angstrom": true,
	"AA": true, "micron": true, "pix": true, "pixel": true, "beam": true,
	"ct": true, "adu": true, "sun": true,
}

// prefixes lists the recognized SI prefixes, longest first so that "da"
// wins over "d" during matching.
var prefixes = []string{
	"da",
	"Q", "R", "Y", "Z", "E", "P", "T", "G", "M", "k", "h", "d", "c", "m",
	"u", "µ", "n", "p", "f", "a", "z", "y", "r", "q",
}

// Parse resolves a unit symbol against the registry. The empty string and
// "1" resolve to Dimensionless.
func Parse(symbol string) (Unit, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" || symbol == "1" {
		return Dimensionless, nil
	}
	for _, factor := range splitFactors(symbol) {
		if !validFactor(factor) {
			return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
		}
	}
	return Unit{symbol: symbol}, nil
}

// MustParse is like Parse but panics on unknown symbols. Intended for
// package-level unit declarations.
func MustParse(symbol string) Unit {
	u, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return u
}

// splitFactors breaks a compound symbol into its factor tokens.
func splitFactors(symbol string) []string {
	return strings.FieldsFunc(symbol, func(r rune) bool {
		return r == '*' || r == '/' || r == '.' || r == ' '
	})
}

// validFactor checks a single factor of the form [prefix]base[exponent],
// where the exponent is an optional "^", an optional "-", and digits.
func validFactor(factor string) bool {
	// Trim exponent suffix.
	end := len(factor)
	for end > 0 && factor[end-1] >= '0' && factor[end-1] <= '9' {
		end--
	}
	if end > 0 && factor[end-1] == '-' {
		end--
	}
	if end > 0 && factor[end-1] == '^' {
		end--
	}
	name := factor[:end]
	if name == "" {
		return false
	}
	if bases[name] {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) && bases[name[len(p):]] {
			return true
		}
	}
	return false
}
