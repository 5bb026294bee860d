package configparseradv

import "strings"

// Values returns a lazy iterator over the successive values of a logical
// key: index 0, 1, 2, ... until the first gap. A single unindexed value is
// never reused across indices during iteration, so a section holding only
// "key = a" yields exactly one value.
//
// Each call builds a fresh iterator starting at index 0.
func (r *Resolver) Values(section, key string, opts ...Option) *Iterator {
	return &Iterator{
		r:       r,
		section: section,
		key:     key,
		opts:    buildAccessOptions(opts),
	}
}

// Iterator produces the value family of one logical key, one element per
// Next call. It is single-pass and not safe for concurrent use.
type Iterator struct {
	r       *Resolver
	section string
	key     string
	opts    accessOptions
	n       int
	done    bool
	err     error
}

// Next resolves the value at the current index and advances. It returns
// false once the key family is exhausted or a conversion fails; check Err
// after iteration.
func (it *Iterator) Next() (any, bool) {
	if it.done {
		return nil, false
	}

	// Probe without conversion first: absent or empty means the family
	// ends here.
	probe := it.opts
	probe.indexed, probe.index = true, it.n
	probe.allowGlobal = false
	probe.dtype = DTypeNone
	probe.fallback = nil
	raw, _ := it.r.resolveRaw(it.section, it.key, probe)
	s, isStr := raw.(string)
	if raw == nil || (isStr && strings.TrimSpace(s) == "") {
		it.done = true
		return nil, false
	}

	full := it.opts
	full.indexed, full.index = true, it.n
	full.allowGlobal = false
	value, _, err := it.r.lookup(it.section, it.key, full)
	if err != nil {
		it.done = true
		it.err = err
		return nil, false
	}
	if value == nil {
		it.done = true
		return nil, false
	}

	it.n++
	return value, true
}

// Err returns the conversion error that stopped the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() ([]any, error) {
	var values []any
	for {
		v, ok := it.Next()
		if !ok {
			return values, it.err
		}
		values = append(values, v)
	}
}
