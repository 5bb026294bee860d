package configparseradv

// Store provides raw option text from an INI-style backend (file formats,
// environment variables, in-memory maps). Option names are expected to be
// canonical per internal/optname.Normalize; the backends in this module
// normalize on load.
//
// Resolution never mutates a Store.
type Store interface {
	// Get returns the raw string for option in section and whether the
	// option exists. Missing options must return ("", false), never fail.
	Get(section, option string) (string, bool)

	// Options returns the option names present in section. A missing
	// section yields an empty slice.
	Options(section string) []string
}

// DType selects the target conversion applied to a resolved value.
type DType string

// Supported conversion types. DTypeQuantity and DTypeSkyCoord dispatch to
// the units and coords packages.
const (
	DTypeNone      DType = ""
	DTypeString    DType = "string"
	DTypeBool      DType = "bool"
	DTypeInt       DType = "int"
	DTypeFloat     DType = "float"
	DTypePath      DType = "path"
	DTypeList      DType = "list"
	DTypeIntList   DType = "intlist"
	DTypeFloatList DType = "floatlist"
	DTypeQuantity  DType = "quantity"
	DTypeSkyCoord  DType = "skycoord"
)

// Origin describes which physical option satisfied a lookup.
type Origin int

const (
	// OriginFallback: the key was absent or the index missed; the
	// fallback value was used.
	OriginFallback Origin = iota

	// OriginOption: the base option's raw value, no indexing requested.
	OriginOption

	// OriginIndexedOption: the dedicated "{key}{n}" option.
	OriginIndexedOption

	// OriginSplitValue: element n of the base option's separated value.
	OriginSplitValue

	// OriginGlobalValue: a single unindexed value reused for a non-zero
	// index because allow-global was enabled.
	OriginGlobalValue
)

func (o Origin) String() string {
	switch o {
	case OriginOption:
		return "option"
	case OriginIndexedOption:
		return "indexed-option"
	case OriginSplitValue:
		return "split-value"
	case OriginGlobalValue:
		return "global-value"
	default:
		return "fallback"
	}
}

// accessOptions holds the per-call configuration of a lookup.
type accessOptions struct {
	fallback    any
	index       int
	indexed     bool
	sep         string
	sepSet      bool
	dtype       DType
	allowGlobal bool
}

func defaultAccessOptions() accessOptions {
	return accessOptions{
		sep:         " ",
		allowGlobal: true,
	}
}

// Option configures a single lookup using the functional options pattern.
type Option func(*accessOptions)

// WithFallback sets the value returned on all resolution failures.
// Default is nil (absent).
func WithFallback(v any) Option {
	return func(o *accessOptions) {
		o.fallback = v
	}
}

// WithIndex requests element n of the logical key's value family.
// Without it, the base option's raw value is returned whole.
func WithIndex(n int) Option {
	return func(o *accessOptions) {
		o.index = n
		o.indexed = true
	}
}

// WithSep sets the separator used to split multi-value strings.
// Default is a single space.
func WithSep(sep string) Option {
	return func(o *accessOptions) {
		o.sep = sep
		o.sepSet = true
	}
}

// WithDType sets the target conversion type.
func WithDType(dt DType) Option {
	return func(o *accessOptions) {
		o.dtype = dt
	}
}

// AllowGlobal controls whether a single unindexed value may satisfy a
// request for a non-zero index. Default: true.
func AllowGlobal(allow bool) Option {
	return func(o *accessOptions) {
		o.allowGlobal = allow
	}
}

func buildAccessOptions(opts []Option) accessOptions {
	o := defaultAccessOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
