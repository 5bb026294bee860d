package optname

import (
	"strconv"
	"strings"
)

// Normalize canonicalizes an option name the way INI-style parsers do:
// lowercase, surrounding whitespace removed.
// Examples:
//   - "Molecule" → "molecule"
//   - " WIDTH0 " → "width0"
func Normalize(option string) string {
	return strings.ToLower(strings.TrimSpace(option))
}

// Indexed builds the physical option name backing element n of a logical
// key, following the key0, key1, ... convention.
// Examples:
//   - Indexed("width", 0) → "width0"
//   - Indexed("width", 12) → "width12"
func Indexed(key string, n int) string {
	return Normalize(key) + strconv.Itoa(n)
}

// Split decomposes a physical option name into its logical key and index.
// The second return is -1 when the name carries no trailing index.
// Examples:
//   - Split("width3") → ("width", 3)
//   - Split("width") → ("width", -1)
func Split(option string) (string, int) {
	option = Normalize(option)
	i := len(option)
	for i > 0 && option[i-1] >= '0' && option[i-1] <= '9' {
		i--
	}
	if i == len(option) || i == 0 {
		return option, -1
	}
	n, err := strconv.Atoi(option[i:])
	if err != nil {
		return option, -1
	}
	return option[:i], n
}
