package storeenv

import (
	"os"
	"sort"
	"strings"

	"github.com/folguinch/configparseradv/internal/optname"
)

// Options configures environment variable store behavior.
type Options struct {
	// Prefix filters variables starting with prefix (stripped before
	// mapping). Empty = load all variables.
	Prefix string
}

// EnvStore is a configuration store over a snapshot of the process
// environment. Variables map to sections and options through a double
// underscore: PREFIX_SECTION__OPTION → section "section", option
// "option". Variables without a double underscore land in the "" section.
type EnvStore struct {
	opts     Options
	sections map[string]map[string]string
}

// New snapshots the current environment into a store.
func New(opts Options) *EnvStore {
	store := &EnvStore{
		opts:     opts,
		sections: make(map[string]map[string]string),
	}

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if opts.Prefix != "" {
			if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(opts.Prefix)) {
				continue
			}
			name = name[len(opts.Prefix):]
		}

		section, option, ok := strings.Cut(name, "__")
		if !ok {
			section, option = "", name
		}
		store.set(strings.ToLower(section), optname.Normalize(option), value)
	}

	return store
}

func (e *EnvStore) set(section, option, value string) {
	sec, ok := e.sections[section]
	if !ok {
		sec = make(map[string]string)
		e.sections[section] = sec
	}
	sec[option] = value
}

// Get implements configparseradv.Store.
func (e *EnvStore) Get(section, option string) (string, bool) {
	value, ok := e.sections[strings.ToLower(section)][optname.Normalize(option)]
	return value, ok
}

// Options implements configparseradv.Store. Names are returned sorted.
func (e *EnvStore) Options(section string) []string {
	sec := e.sections[strings.ToLower(section)]
	names := make([]string, 0, len(sec))
	for name := range sec {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns a human-readable identifier for this store.
func (e *EnvStore) Name() string {
	if e.opts.Prefix == "" {
		return "env"
	}
	return "env:" + e.opts.Prefix
}
