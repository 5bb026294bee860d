package storefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/folguinch/configparseradv/internal/optname"
)

// Options configures file store behavior.
type Options struct {
	// Format: "ini", "toml", or "yaml". Auto-detected from extension if empty.
	Format string

	// Required: if true, a missing file causes an error. Default: false
	// (yields an empty store).
	Required bool
}

// FileStore is a read-only configuration store backed by one file.
// Options living in the defaults section (INI "[DEFAULT]", or top-level
// scalars in TOML/YAML) are visible from every section, configparser
// style.
type FileStore struct {
	path     string
	sections map[string]map[string]string
	defaults map[string]string
}

// Load reads and parses path into a FileStore.
func Load(path string, opts Options) (*FileStore, error) {
	store := &FileStore{
		path:     path,
		sections: make(map[string]map[string]string),
		defaults: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required config file not found: %s: %w", path, err)
			}
			return store, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	switch format {
	case "ini":
		err = store.loadINI(data)
	case "toml":
		err = store.loadTOML(data)
	case "yaml", "yml":
		err = store.loadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: ini, toml, yaml)", format)
	}
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Get implements configparseradv.Store. The defaults section backs every
// lookup that misses in the named section.
func (s *FileStore) Get(section, option string) (string, bool) {
	option = optname.Normalize(option)
	if value, ok := s.sections[section][option]; ok {
		return value, true
	}
	value, ok := s.defaults[option]
	return value, ok
}

// Options implements configparseradv.Store. Defaults-section options are
// included, names are sorted.
func (s *FileStore) Options(section string) []string {
	sec, ok := s.sections[section]
	if !ok && len(s.defaults) == 0 {
		return nil
	}
	set := make(map[string]bool, len(sec)+len(s.defaults))
	for name := range sec {
		set[name] = true
	}
	if ok {
		// Defaults leak into existing sections only, like configparser.
		for name := range s.defaults {
			set[name] = true
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sections returns the section names present in the file, sorted.
func (s *FileStore) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns a human-readable identifier for this store.
func (s *FileStore) Name() string {
	return "file:" + filepath.Base(s.path)
}

// loadINI parses INI data. Key lookups are case-insensitive and values
// are resolved recursively, so "%(name)s" references work.
func (s *FileStore) loadINI(data []byte) error {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return fmt.Errorf("parse INI file %s: %w", s.path, err)
	}
	for _, sec := range f.Sections() {
		target := make(map[string]string, len(sec.Keys()))
		for _, key := range sec.Keys() {
			target[optname.Normalize(key.Name())] = key.String()
		}
		if sec.Name() == ini.DefaultSection {
			s.defaults = target
			continue
		}
		s.sections[sec.Name()] = target
	}
	return nil
}

func (s *FileStore) loadTOML(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse TOML file %s: %w", s.path, err)
	}
	s.shapeSections(raw)
	return nil
}

func (s *FileStore) loadYAML(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse YAML file %s: %w", s.path, err)
	}
	s.shapeSections(raw)
	return nil
}

// shapeSections maps a decoded document onto the section/option model:
// top-level tables become sections (nested tables flattened into dotted
// option names), top-level scalars become defaults.
func (s *FileStore) shapeSections(raw map[string]any) {
	for key, value := range raw {
		switch v := value.(type) {
		case map[string]any:
			sec := make(map[string]string)
			flatten("", v, sec)
			s.sections[key] = sec
		default:
			s.defaults[optname.Normalize(key)] = stringify(value)
		}
	}
}

// flatten writes nested maps into result with dot-separated option names.
func flatten(prefix string, value map[string]any, result map[string]string) {
	for key, val := range value {
		name := optname.Normalize(key)
		if prefix != "" {
			name = prefix + "." + name
		}
		if nested, ok := val.(map[string]any); ok {
			flatten(name, nested, result)
			continue
		}
		result[name] = stringify(val)
	}
}

// stringify renders a decoded value back to option text. Arrays become
// space-separated strings so the multi-value accessors can split them.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = stringify(elem)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg", ".conf":
		return "ini"
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
