// Package storefile loads configuration stores from INI, TOML, or YAML
// files.
//
// Format is auto-detected from extension (.ini/.cfg/.conf, .toml,
// .yaml/.yml).
//
// Example:
//
//	store, err := storefile.Load("pipeline.cfg", storefile.Options{Required: true})
//	cfg := configparseradv.New(store)
package storefile
