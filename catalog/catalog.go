// Package catalog owns the static property dataset. The seed ships
// embedded in the binary; an external YAML file can replace it via
// CATALOG_PATH. Once loaded the catalog is read-only.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dharti/models"
)

//go:embed data/properties.yaml
var seedYAML []byte

type seedFile struct {
	Properties []models.Property `yaml:"properties"`
}

// Catalog is the immutable property list plus an id index.
type Catalog struct {
	props []models.Property
	byID  map[string]int
}

// Load returns the built-in catalog, or the one at path when non-empty.
// Unlike user state, a broken catalog file is a startup error: there is
// nothing sensible to show without listing data.
func Load(path string) (*Catalog, error) {
	data := seedYAML
	if path != "" {
		external, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = external
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(seed.Properties) == 0 {
		return nil, fmt.Errorf("catalog contains no properties")
	}

	byID := make(map[string]int, len(seed.Properties))
	for i, p := range seed.Properties {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate property id %q", p.ID)
		}
		byID[p.ID] = i
	}

	return &Catalog{props: seed.Properties, byID: byID}, nil
}

// Properties returns the full catalog in seed order. Callers get a copy
// of the slice header over shared backing data; records are treated as
// immutable everywhere.
func (c *Catalog) Properties() []models.Property {
	out := make([]models.Property, len(c.props))
	copy(out, c.props)
	return out
}

// ByID looks up a single property. The second return is false when the
// id is not in the catalog.
func (c *Catalog) ByID(id string) (models.Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Property{}, false
	}
	return c.props[i], true
}

func (c *Catalog) Len() int {
	return len(c.props)
}
