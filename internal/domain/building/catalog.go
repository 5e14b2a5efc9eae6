package building

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the fixed mapping from building type to definition.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	defs  map[Type]Definition
	types []Type
}

// NewCatalog validates the definitions and builds a read-only catalog
func NewCatalog(defs map[Type]Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog must define at least one building type")
	}

	c := &Catalog{
		defs:  make(map[Type]Definition, len(defs)),
		types: make([]Type, 0, len(defs)),
	}
	for t, def := range defs {
		if t == "" {
			return nil, fmt.Errorf("building type key cannot be empty")
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("building %s: %w", t, err)
		}
		c.defs[t] = def
		c.types = append(c.types, t)
	}
	sort.Slice(c.types, func(i, j int) bool { return c.types[i] < c.types[j] })

	return c, nil
}

// Parse builds a catalog from YAML keyed by building type
func Parse(raw []byte) (*Catalog, error) {
	var defs map[Type]Definition
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse building catalog: %w", err)
	}
	return NewCatalog(defs)
}

// Load reads a catalog file from disk
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building catalog: %w", err)
	}
	return Parse(raw)
}

// Default returns the catalog embedded in the binary
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded building catalog is invalid: %v", err))
	}
	return c
}

// Lookup returns the definition for a type, or false for unknown keys
func (c *Catalog) Lookup(t Type) (Definition, bool) {
	def, ok := c.defs[t]
	return def, ok
}

// All returns a copy of the full mapping
func (c *Catalog) All() map[Type]Definition {
	out := make(map[Type]Definition, len(c.defs))
	for t, def := range c.defs {
		out[t] = def
	}
	return out
}

// Types returns the building keys in lexical order
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}
