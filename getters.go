package configparseradv

import (
	"fmt"

	"github.com/folguinch/configparseradv/coords"
	"github.com/folguinch/configparseradv/units"
)

// Typed convenience accessors. Each forces the matching dtype and asserts
// the result; an absent key without a fallback yields the type's zero
// value. A fallback of the wrong type is an error.

func typeErr(v any, want string) error {
	return fmt.Errorf("configparseradv: fallback value %v (%T) is not a %s", v, v, want)
}

// GetString resolves key as a stripped string.
func (r *Resolver) GetString(section, key string, opts ...Option) (string, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeString))...)
	if err != nil || v == nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeErr(v, "string")
	}
	return s, nil
}

// GetBool resolves key as a boolean using the INI token rule.
func (r *Resolver) GetBool(section, key string, opts ...Option) (bool, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeBool))...)
	if err != nil || v == nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeErr(v, "bool")
	}
	return b, nil
}

// GetInt resolves key as an integer.
func (r *Resolver) GetInt(section, key string, opts ...Option) (int, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeInt))...)
	if err != nil || v == nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, typeErr(v, "int")
	}
	return n, nil
}

// GetFloat resolves key as a float64.
func (r *Resolver) GetFloat(section, key string, opts ...Option) (float64, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeFloat))...)
	if err != nil || v == nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, typeErr(v, "float64")
	}
	return f, nil
}

// GetPath resolves key as a filesystem path with "~" expanded.
func (r *Resolver) GetPath(section, key string, opts ...Option) (string, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypePath))...)
	if err != nil || v == nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeErr(v, "path")
	}
	return s, nil
}

// GetList resolves key as a list of strings split on the separator.
func (r *Resolver) GetList(section, key string, opts ...Option) ([]string, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeList))...)
	if err != nil || v == nil {
		return nil, err
	}
	l, ok := v.([]string)
	if !ok {
		return nil, typeErr(v, "[]string")
	}
	return l, nil
}

// GetIntList resolves key as a list of integers using the comma-aware
// splitting rule.
func (r *Resolver) GetIntList(section, key string, opts ...Option) ([]int, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeIntList))...)
	if err != nil || v == nil {
		return nil, err
	}
	l, ok := v.([]int)
	if !ok {
		return nil, typeErr(v, "[]int")
	}
	return l, nil
}

// GetFloatList resolves key as a list of float64 using the comma-aware
// splitting rule.
func (r *Resolver) GetFloatList(section, key string, opts ...Option) ([]float64, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeFloatList))...)
	if err != nil || v == nil {
		return nil, err
	}
	l, ok := v.([]float64)
	if !ok {
		return nil, typeErr(v, "[]float64")
	}
	return l, nil
}

// GetQuantity resolves key as a physical quantity. A units.Quantity
// fallback is returned unchanged; a bare numeric fallback is wrapped as a
// dimensionless scalar.
func (r *Resolver) GetQuantity(section, key string, opts ...Option) (units.Quantity, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeQuantity))...)
	if err != nil || v == nil {
		return units.Quantity{}, err
	}
	switch q := v.(type) {
	case units.Quantity:
		return q, nil
	case float64:
		return units.New(q, units.Dimensionless), nil
	case int:
		return units.New(float64(q), units.Dimensionless), nil
	}
	return units.Quantity{}, typeErr(v, "quantity")
}

// GetSkyCoord resolves key as a sky coordinate.
func (r *Resolver) GetSkyCoord(section, key string, opts ...Option) (coords.SkyCoord, error) {
	v, err := r.GetValue(section, key, append(opts, WithDType(DTypeSkyCoord))...)
	if err != nil || v == nil {
		return coords.SkyCoord{}, err
	}
	c, ok := v.(coords.SkyCoord)
	if !ok {
		return coords.SkyCoord{}, typeErr(v, "skycoord")
	}
	return c, nil
}
