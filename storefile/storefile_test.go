package storefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_INI(t *testing.T) {
	path := writeFile(t, "pipeline.cfg", `
[DEFAULT]
telescope = ALMA

[source]
name = G333.23
vlsr = -87.0 km/s
position = 10.0 -5.2 icrs

[maps]
width = 0.5 1.2
width2 = 3.4
`)

	store, err := Load(path, Options{})
	require.NoError(t, err)

	value, ok := store.Get("source", "vlsr")
	require.True(t, ok)
	assert.Equal(t, "-87.0 km/s", value)

	// Defaults back every section.
	value, ok = store.Get("maps", "telescope")
	require.True(t, ok)
	assert.Equal(t, "ALMA", value)

	assert.Equal(t, []string{"telescope", "width", "width2"}, store.Options("maps"))
	assert.Equal(t, []string{"maps", "source"}, store.Sections())
}

func TestLoad_INI_CaseInsensitiveOptions(t *testing.T) {
	path := writeFile(t, "pipeline.cfg", `
[source]
Name = G333.23
`)

	store, err := Load(path, Options{})
	require.NoError(t, err)

	value, ok := store.Get("source", "name")
	require.True(t, ok)
	assert.Equal(t, "G333.23", value)
	assert.Equal(t, []string{"name"}, store.Options("source"))
}

func TestLoad_INI_Interpolation(t *testing.T) {
	path := writeFile(t, "pipeline.cfg", `
[paths]
base = /data/alma
cubes = %(base)s/cubes
`)

	store, err := Load(path, Options{})
	require.NoError(t, err)

	value, ok := store.Get("paths", "cubes")
	require.True(t, ok)
	assert.Equal(t, "/data/alma/cubes", value)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "pipeline.toml", `
telescope = "ALMA"

[source]
name = "G333.23"
vlsr = "-87.0 km/s"
channels = [1, 2, 3]

[source.continuum]
level = 0.05
`)

	store, err := Load(path, Options{})
	require.NoError(t, err)

	value, ok := store.Get("source", "name")
	require.True(t, ok)
	assert.Equal(t, "G333.23", value)

	// Arrays are joined so the multi-value accessors can split them.
	value, ok = store.Get("source", "channels")
	require.True(t, ok)
	assert.Equal(t, "1 2 3", value)

	// Nested tables flatten into dotted option names.
	value, ok = store.Get("source", "continuum.level")
	require.True(t, ok)
	assert.Equal(t, "0.05", value)

	// Top-level scalars act as defaults.
	value, ok = store.Get("source", "telescope")
	require.True(t, ok)
	assert.Equal(t, "ALMA", value)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", `
source:
  name: G333.23
  rms: 0.002
  flags: [usedust, uselines]
maps:
  width: 0.5 1.2
`)

	store, err := Load(path, Options{})
	require.NoError(t, err)

	value, ok := store.Get("source", "rms")
	require.True(t, ok)
	assert.Equal(t, "0.002", value)

	value, ok = store.Get("source", "flags")
	require.True(t, ok)
	assert.Equal(t, "usedust uselines", value)

	value, ok = store.Get("maps", "width")
	require.True(t, ok)
	assert.Equal(t, "0.5 1.2", value)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.cfg")

	store, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Empty(t, store.Sections())
	_, ok := store.Get("source", "name")
	assert.False(t, ok)

	_, err = Load(path, Options{Required: true})
	require.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "pipeline.json", `{}`)

	_, err := Load(path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestFileStore_Name(t *testing.T) {
	path := writeFile(t, "pipeline.cfg", "[source]\nname = x\n")

	store, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "file:pipeline.cfg", store.Name())
}
