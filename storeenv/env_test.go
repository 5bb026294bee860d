package storeenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PrefixAndMapping(t *testing.T) {
	t.Setenv("PIPE_SOURCE__VLSR", "4.5 km/s")
	t.Setenv("PIPE_SOURCE__NAME", "G333.23")
	t.Setenv("PIPE_GLOBAL", "yes")
	t.Setenv("OTHER_SOURCE__VLSR", "ignored")

	store := New(Options{Prefix: "PIPE_"})

	value, ok := store.Get("source", "vlsr")
	require.True(t, ok)
	assert.Equal(t, "4.5 km/s", value)

	assert.Equal(t, []string{"name", "vlsr"}, store.Options("source"))

	// No double underscore: empty section.
	value, ok = store.Get("", "global")
	require.True(t, ok)
	assert.Equal(t, "yes", value)

	// Prefix filters out other variables.
	_, ok = store.Get("source", "vlsr2")
	assert.False(t, ok)
}

func TestNew_CaseInsensitive(t *testing.T) {
	t.Setenv("PIPE_MAPS__WIDTH0", "0.5")

	store := New(Options{Prefix: "pipe_"})

	value, ok := store.Get("Maps", "WIDTH0")
	require.True(t, ok)
	assert.Equal(t, "0.5", value)
}

func TestEnvStore_Name(t *testing.T) {
	assert.Equal(t, "env", New(Options{}).Name())
	assert.Equal(t, "env:PIPE_", New(Options{Prefix: "PIPE_"}).Name())
}
