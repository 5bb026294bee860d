package configparseradv

import (
	"fmt"
	"math"
)

// Batch accessors: map a per-key fallback over a list of keys. A single
// fallback broadcasts over every key; otherwise fallback and key counts
// must match.

// broadcast expands fallbacks to one per key, or def when none are given.
func broadcast[T any](n int, fallbacks []T, def T) ([]T, error) {
	switch len(fallbacks) {
	case n:
		if n > 0 {
			return fallbacks, nil
		}
		fallthrough
	case 0:
		out := make([]T, n)
		for i := range out {
			out[i] = def
		}
		return out, nil
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = fallbacks[0]
		}
		return out, nil
	}
	return nil, ErrFallbackMismatch
}

// GetKeys returns the raw values of keys in section. Absent keys resolve
// to their fallback, nil when none was given.
func (r *Resolver) GetKeys(section string, keys []string, fallbacks ...any) ([]any, error) {
	fbs, err := broadcast(len(keys), fallbacks, nil)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(keys))
	for i, key := range keys {
		v, err := r.GetValue(section, key, WithFallback(fbs[i]))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// GetFloatKeys returns the values of keys converted to float64. Absent
// keys resolve to their fallback, NaN when none was given.
func (r *Resolver) GetFloatKeys(section string, keys []string, fallbacks ...float64) ([]float64, error) {
	fbs, err := broadcast(len(keys), fallbacks, math.NaN())
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(keys))
	for i, key := range keys {
		f, err := r.GetFloat(section, key, WithFallback(fbs[i]))
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

// GetIntKeys returns the values of keys converted to int. Without
// fallbacks, an absent key is an error.
func (r *Resolver) GetIntKeys(section string, keys []string, fallbacks ...int) ([]int, error) {
	fbs, err := broadcast(len(keys), fallbacks, 0)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(keys))
	for i, key := range keys {
		opts := []Option{WithDType(DTypeInt)}
		if len(fallbacks) > 0 {
			opts = append(opts, WithFallback(fbs[i]))
		}
		v, err := r.GetValue(section, key, opts...)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("configparseradv: option %q not found in section %q", key, section)
		}
		n, ok := v.(int)
		if !ok {
			return nil, typeErr(v, "int")
		}
		values[i] = n
	}
	return values, nil
}

// GetBoolKeys returns the values of keys converted to bool. Absent keys
// resolve to their fallback, false when none was given.
func (r *Resolver) GetBoolKeys(section string, keys []string, fallbacks ...bool) ([]bool, error) {
	fbs, err := broadcast(len(keys), fallbacks, false)
	if err != nil {
		return nil, err
	}
	values := make([]bool, len(keys))
	for i, key := range keys {
		b, err := r.GetBool(section, key, WithFallback(fbs[i]))
		if err != nil {
			return nil, err
		}
		values[i] = b
	}
	return values, nil
}
