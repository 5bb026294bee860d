// Package coords provides the sky coordinate type used for pointing and
// source position values in configuration files.
package coords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownFrame is returned when a coordinate frame name is not recognized.
var ErrUnknownFrame = errors.New("coords: unknown coordinate frame")

// frames lists the supported coordinate frames.
var frames = map[string]bool{
	"icrs":     true,
	"fk5":      true,
	"fk4":      true,
	"galactic": true,
}

// SkyCoord is a sky position in a given frame. RA and Dec are stored in
// degrees; for the galactic frame they hold longitude and latitude.
type SkyCoord struct {
	RA    float64
	Dec   float64
	Frame string
}

// New builds a SkyCoord from textual angles and a frame name.
//
// Angles may be decimal degrees or sexagesimal. Sexagesimal right
// ascension ("10:30:00" or "10h30m00s") is read in hours; sexagesimal
// declination ("-5:15:00" or "-5d15m00s") in degrees.
func New(ra, dec, frame string) (SkyCoord, error) {
	frame = strings.ToLower(strings.TrimSpace(frame))
	if !frames[frame] {
		return SkyCoord{}, fmt.Errorf("%w: %q", ErrUnknownFrame, frame)
	}

	raDeg, err := parseAngle(ra, 15)
	if err != nil {
		return SkyCoord{}, fmt.Errorf("coords: bad right ascension %q: %w", ra, err)
	}
	decDeg, err := parseAngle(dec, 1)
	if err != nil {
		return SkyCoord{}, fmt.Errorf("coords: bad declination %q: %w", dec, err)
	}
	if decDeg < -90 || decDeg > 90 {
		return SkyCoord{}, fmt.Errorf("coords: declination %q out of range", dec)
	}

	return SkyCoord{RA: raDeg, Dec: decDeg, Frame: frame}, nil
}

func (c SkyCoord) String() string {
	return fmt.Sprintf("%g %g (%s)", c.RA, c.Dec, c.Frame)
}

// parseAngle converts an angle string to degrees. Decimal input is taken
// as degrees; sexagesimal input is scaled by sexaScale (15 for hour-based
// right ascension, 1 for declination).
func parseAngle(s string, sexaScale float64) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	parts := splitSexagesimal(s)
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errors.New("not a decimal or sexagesimal angle")
	}

	sign := 1.0
	if strings.HasPrefix(parts[0], "-") {
		sign = -1
		parts[0] = parts[0][1:]
	} else {
		parts[0] = strings.TrimPrefix(parts[0], "+")
	}

	var deg, scale float64 = 0, 1
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("bad sexagesimal field %q", part)
		}
		deg += v / scale
		scale *= 60
	}

	return sign * deg * sexaScale, nil
}

// splitSexagesimal splits "10:30:00", "10h30m00s", and "-5d15m00s" into
// their numeric fields.
func splitSexagesimal(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ':', 'h', 'd', 'm', 's', ' ':
			return true
		}
		return false
	})
}
