package configparseradv

import (
	"strconv"
	"strings"

	"github.com/folguinch/configparseradv/units"
)

// dimensionlessMarkers are the trailing tokens that mark an array value as
// dimensionless. The marker terminates the numeric array and is not data.
var dimensionlessMarkers = map[string]bool{
	"dimless":       true,
	"dimensionless": true,
	"nounit":        true,
	"1":             true,
}

// ParseQuantity converts a string of whitespace-separated tokens into a
// physical quantity:
//
//	"10"       → dimensionless scalar 10
//	"10 m"     → scalar 10 with unit m
//	"1 2 3 m"  → array [1 2 3] with unit m
//	"1 2 dimless" → dimensionless array [1 2]
func ParseQuantity(val string) (units.Quantity, error) {
	tokens := strings.Fields(val)
	switch {
	case len(tokens) == 0:
		return units.Quantity{}, convErr(val, "quantity", nil)

	case len(tokens) == 1:
		f, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return units.Quantity{}, convErr(val, "quantity", err)
		}
		return units.New(f, units.Dimensionless), nil

	case len(tokens) == 2:
		f, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return units.Quantity{}, convErr(val, "quantity", err)
		}
		u, err := units.Parse(tokens[1])
		if err != nil {
			return units.Quantity{}, convErr(val, "quantity", err)
		}
		return units.New(f, u), nil

	default:
		unit := units.Dimensionless
		if !dimensionlessMarkers[strings.TrimSpace(tokens[len(tokens)-1])] {
			u, err := units.Parse(tokens[len(tokens)-1])
			if err != nil {
				return units.Quantity{}, convErr(val, "quantity", err)
			}
			unit = u
		}
		values := make([]float64, len(tokens)-1)
		for i, tok := range tokens[:len(tokens)-1] {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return units.Quantity{}, convErr(val, "quantity", err)
			}
			values[i] = f
		}
		return units.NewArray(values, unit), nil
	}
}
