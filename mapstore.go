package configparseradv

import (
	"sort"

	"github.com/folguinch/configparseradv/internal/optname"
)

// MapStore is an in-memory Store, mainly for tests and programmatic
// configuration. Option names are normalized on write.
type MapStore struct {
	sections map[string]map[string]string
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{sections: make(map[string]map[string]string)}
}

// Set stores value under section/option, creating the section on demand.
func (m *MapStore) Set(section, option, value string) {
	sec, ok := m.sections[section]
	if !ok {
		sec = make(map[string]string)
		m.sections[section] = sec
	}
	sec[optname.Normalize(option)] = value
}

// SetSection stores a whole section at once.
func (m *MapStore) SetSection(section string, options map[string]string) {
	for option, value := range options {
		m.Set(section, option, value)
	}
}

// Get implements Store.
func (m *MapStore) Get(section, option string) (string, bool) {
	value, ok := m.sections[section][optname.Normalize(option)]
	return value, ok
}

// Options implements Store. Names are returned sorted.
func (m *MapStore) Options(section string) []string {
	sec := m.sections[section]
	names := make([]string, 0, len(sec))
	for name := range sec {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sections returns the section names present in the store, sorted.
func (m *MapStore) Sections() []string {
	names := make([]string, 0, len(m.sections))
	for name := range m.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
