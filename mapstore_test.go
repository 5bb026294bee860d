package configparseradv

import (
	"reflect"
	"testing"
)

func TestMapStore(t *testing.T) {
	store := NewMapStore()
	store.Set("source", "Name", "G333.23")
	store.SetSection("maps", map[string]string{"width0": "0.5", "width1": "1.2"})

	// Option names are normalized on write and lookup.
	value, ok := store.Get("source", "NAME")
	if !ok || value != "G333.23" {
		t.Errorf("Get = (%q, %v)", value, ok)
	}

	if options := store.Options("maps"); !reflect.DeepEqual(options, []string{"width0", "width1"}) {
		t.Errorf("Options = %v", options)
	}
	if options := store.Options("absent"); len(options) != 0 {
		t.Errorf("expected no options for absent section, got %v", options)
	}

	if sections := store.Sections(); !reflect.DeepEqual(sections, []string{"maps", "source"}) {
		t.Errorf("Sections = %v", sections)
	}
}
