package configparseradv

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/folguinch/configparseradv/internal/optname"
)

// Resolver resolves logical keys in a Store to typed values. It wraps any
// Store rather than extending a parser, so the only contract it needs from
// a backend is raw text retrieval and option listing.
//
// A Resolver is stateless and safe for concurrent use as long as the
// underlying Store is not mutated during resolution.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for non-fatal resolution diagnostics
// (indexing misses). Default: zap.NewNop().
func WithLogger(logger *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver over store.
func New(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetValue resolves one logical key in one section to one typed value.
//
// The logical key may be backed by a single option ("key") or by a family
// of indexed options ("key0", "key1", ...). With WithIndex(n), the
// physical option "{key}{n}" takes precedence; otherwise the base option's
// value is split on the separator and element n is returned. A single
// unindexed value satisfies any index while AllowGlobal holds (the
// default); out-of-range indices degrade to the fallback with a warning.
//
// Conversion failures and unrecognized dtypes are returned as errors; all
// other irregularities resolve to the fallback.
func (r *Resolver) GetValue(section, key string, opts ...Option) (any, error) {
	v, _, err := r.Lookup(section, key, opts...)
	return v, err
}

// Lookup is GetValue plus the Origin of the resolved value, reporting
// which physical option (or fallback) satisfied the request.
func (r *Resolver) Lookup(section, key string, opts ...Option) (any, Origin, error) {
	return r.lookup(section, key, buildAccessOptions(opts))
}

func (r *Resolver) lookup(section, key string, o accessOptions) (any, Origin, error) {
	value, origin := r.resolveRaw(section, key, o)

	// Per-value strip applies to strings only; other fallback values
	// pass through untouched.
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}

	if o.dtype == DTypeNone || value == nil {
		return value, origin, nil
	}
	s, ok := value.(string)
	if !ok {
		// Already-typed fallbacks are returned unchanged.
		return value, origin, nil
	}

	converted, err := r.convert(s, o)
	if err != nil {
		return nil, origin, err
	}
	return converted, origin, nil
}

// resolveRaw runs the indexed-option lookup and fallback algorithm,
// returning the raw string or the fallback value.
func (r *Resolver) resolveRaw(section, key string, o accessOptions) (any, Origin) {
	present := r.optionSet(section)
	key = optname.Normalize(key)

	// An indexed option takes precedence over the base key.
	if o.indexed {
		sub := optname.Indexed(key, o.index)
		if present[sub] {
			raw, _ := r.store.Get(section, sub)
			return raw, OriginIndexedOption
		}
	}

	if !present[key] {
		return o.fallback, OriginFallback
	}
	raw, _ := r.store.Get(section, key)
	if !o.indexed {
		return raw, OriginOption
	}

	parts := strings.Split(raw, o.sep)
	if len(parts) == 1 {
		if o.index != 0 && !o.allowGlobal {
			r.logger.Warn("single value not allowed for non-zero index, using fallback",
				zap.String("section", section),
				zap.String("option", key),
				zap.Int("index", o.index))
			return o.fallback, OriginFallback
		}
		if o.index == 0 {
			return parts[0], OriginSplitValue
		}
		return parts[0], OriginGlobalValue
	}
	if o.index < 0 || o.index >= len(parts) {
		r.logger.Warn("option index out of range, using fallback",
			zap.String("section", section),
			zap.String("option", key),
			zap.Int("index", o.index),
			zap.Int("values", len(parts)))
		return o.fallback, OriginFallback
	}
	return parts[o.index], OriginSplitValue
}

// optionSet returns the section's option names as a membership set.
func (r *Resolver) optionSet(section string) map[string]bool {
	names := r.store.Options(section)
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[optname.Normalize(name)] = true
	}
	return set
}

// convert applies the dtype to a resolved string.
func (r *Resolver) convert(value string, o accessOptions) (any, error) {
	switch o.dtype {
	case DTypeString:
		return value, nil
	case DTypeBool:
		return ParseBool(value)
	case DTypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, convErr(value, "int", err)
		}
		return n, nil
	case DTypeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, convErr(value, "float", err)
		}
		return f, nil
	case DTypePath:
		return ExpandUser(value), nil
	case DTypeList:
		return SplitList(value, o.sep, 1)
	case DTypeIntList:
		return SplitInts(value, o.listSep(), 1)
	case DTypeFloatList:
		return SplitFloats(value, o.listSep(), 1)
	case DTypeQuantity:
		if value == "" {
			return nil, nil
		}
		return ParseQuantity(value)
	case DTypeSkyCoord:
		return ParseSkyCoord(value)
	}
	return nil, &UnsupportedTypeError{DType: o.dtype}
}

// listSep returns the separator handed to the comma-aware numeric list
// converters: the caller's separator when one was given explicitly,
// otherwise empty, which means arbitrary whitespace.
func (o accessOptions) listSep() string {
	if o.sepSet {
		return o.sep
	}
	return ""
}
