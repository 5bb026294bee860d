// Package storeenv loads a configuration store from environment
// variables.
//
// Variables map to sections and options through a double underscore:
//
//	PIPE_SOURCE__VLSR=4.5 km/s   →  section "source", option "vlsr"
//
// Example:
//
//	store := storeenv.New(storeenv.Options{Prefix: "PIPE_"})
//	cfg := configparseradv.New(store)
package storeenv
