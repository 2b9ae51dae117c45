package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pv-battery-sizing/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Catalog holds every technology table, keyed by id.
type Catalog struct {
	Batteries map[string]model.BatteryTechSpec `yaml:"batteries"`
	Modules   map[string]model.PVModuleSpec    `yaml:"modules"`
	Inverters map[string]Inverter              `yaml:"inverters"`
	Cities    map[string]City                  `yaml:"cities"`
	Profiles  map[string]Profile               `yaml:"profiles"`
	Tariffs   map[string]Tariff                `yaml:"tariffs"`
	Subsidies map[string]Subsidy               `yaml:"subsidies"`
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	c, err := parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded defaults invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog file and merges it over the built-in catalog.
// Entries in the file replace built-in entries with the same id.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	override, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	c := Default()
	c.Merge(override)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Save writes the catalog as YAML.
func (c *Catalog) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// DefaultPath returns the catalog file named by CATALOG_FILE, or "" for the
// built-in catalog.
func DefaultPath() string {
	return os.Getenv("CATALOG_FILE")
}

// Open loads path, or the built-in catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.fillIDs()
	return &c, nil
}

// Merge overlays every entry of o onto c.
func (c *Catalog) Merge(o *Catalog) {
	if o == nil {
		return
	}
	c.Batteries = mergeMap(c.Batteries, o.Batteries)
	c.Modules = mergeMap(c.Modules, o.Modules)
	c.Inverters = mergeMap(c.Inverters, o.Inverters)
	c.Cities = mergeMap(c.Cities, o.Cities)
	c.Profiles = mergeMap(c.Profiles, o.Profiles)
	c.Tariffs = mergeMap(c.Tariffs, o.Tariffs)
	c.Subsidies = mergeMap(c.Subsidies, o.Subsidies)
}

func (c *Catalog) Validate() error {
	for id, b := range c.Batteries {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("battery %q: %w", id, err)
		}
	}
	for id, m := range c.Modules {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("module %q: %w", id, err)
		}
	}
	for id, city := range c.Cities {
		if city.Irradiation <= 0 {
			return fmt.Errorf("city %q: irradiation must be > 0", id)
		}
	}
	for id, t := range c.Tariffs {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tariff %q: %w", id, err)
		}
	}
	return nil
}

func (c *Catalog) fillIDs() {
	for id, v := range c.Batteries {
		v.ID = id
		c.Batteries[id] = v
	}
	for id, v := range c.Modules {
		v.ID = id
		c.Modules[id] = v
	}
	for id, v := range c.Inverters {
		v.ID = id
		c.Inverters[id] = v
	}
	for id, v := range c.Cities {
		v.ID = id
		c.Cities[id] = v
	}
	for id, v := range c.Profiles {
		v.ID = id
		c.Profiles[id] = v
	}
	for id, v := range c.Tariffs {
		v.ID = id
		c.Tariffs[id] = v
	}
	for id, v := range c.Subsidies {
		v.ID = id
		c.Subsidies[id] = v
	}
}

func mergeMap[V any](base, override map[string]V) map[string]V {
	if base == nil {
		base = make(map[string]V, len(override))
	}
	for k, v := range override {
		base[k] = v
	}
	return base
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
