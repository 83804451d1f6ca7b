package simulator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the ordered set of candidate values the simulator picks from.
type Catalog struct {
	Companies  []string `yaml:"companies"`
	Sizes      []string `yaml:"sizes"`
	Industries []string `yaml:"industries"`
	Countries  []string `yaml:"countries"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse simulator catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// DefaultCatalog returns the embedded reference catalog.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic("embedded simulator catalog is invalid: " + err.Error())
	}
	return c
}

// Validate checks that every candidate list is non-empty.
func (c Catalog) Validate() error {
	lists := []struct {
		name   string
		values []string
	}{
		{"companies", c.Companies},
		{"sizes", c.Sizes},
		{"industries", c.Industries},
		{"countries", c.Countries},
	}
	for _, l := range lists {
		if len(l.values) == 0 {
			return fmt.Errorf("simulator catalog: %s must not be empty", l.name)
		}
	}
	return nil
}
