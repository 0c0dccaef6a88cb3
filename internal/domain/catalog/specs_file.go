package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type specsDocument struct {
	Models []ModelSpec `yaml:"models"`
}

// LoadSpecsFile parses a models config file and returns the specs it defines.
// The file replaces the built-in table wholesale; entries still go through the
// registry invariant checks in NewRegistry.
func LoadSpecsFile(path string) ([]ModelSpec, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("models config path is empty")
	}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read models config %q: %w", cleanPath, err)
	}

	var doc specsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse models config %q: %w", cleanPath, err)
	}

	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("models config %q has no models defined", cleanPath)
	}

	return doc.Models, nil
}
