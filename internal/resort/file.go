package resort

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the YAML document shape for a resort override file.
type registryFile struct {
	Resorts []Resort `yaml:"resorts"`
}

// LoadFile reads a YAML resort catalog and returns a registry built from it.
// The file replaces the built-in catalog entirely; order in the file defines
// registration order.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resort file: %w", err)
	}

	var doc registryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing resort file: %w", err)
	}
	if len(doc.Resorts) == 0 {
		return nil, fmt.Errorf("resort file %s: %w", path, ErrInvalidResort)
	}

	reg, err := NewRegistry(doc.Resorts)
	if err != nil {
		return nil, fmt.Errorf("resort file %s: %w", path, err)
	}
	return reg, nil
}
