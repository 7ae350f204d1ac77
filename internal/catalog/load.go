package catalog

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return FromYAML(defaultCatalog)
}

// Load reads a catalog file. An empty path loads the embedded default.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	c, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

// FromYAML decodes and validates a catalog document. Unknown keys are rejected
// so a typo in content cannot silently drop data.
func FromYAML(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
