// Package configparseradv resolves typed, multi-value, and unit-aware
// parameters from INI-style configuration stores.
//
// Quick Start:
//
//	store, err := storefile.Load("pipeline.cfg", storefile.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := configparseradv.New(store)
//
//	vel, err := cfg.GetQuantity("source", "vlsr")          // "4.5 km/s"
//	pos, err := cfg.GetSkyCoord("source", "position")       // "10.0 -5.2 icrs"
//	width, err := cfg.GetFloat("maps", "width", configparseradv.WithIndex(1))
//
// A logical key may hold one value or a family of values: either spread
// across sibling options ("width0", "width1", ...) or packed into one
// separated string ("width = 0.5 1.2"). WithIndex selects one element;
// Values iterates the whole family:
//
//	it := cfg.Values("maps", "width", configparseradv.WithDType(configparseradv.DTypeFloat))
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    ...
//	}
//
// Backends implement the two-method Store interface; storefile (INI, TOML,
// YAML), storeenv, and MapStore are provided.
package configparseradv
