package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Loader reads a catalog file. An empty path selects the embedded seed.
type Loader struct {
	filePath string
}

// NewLoader creates a new catalog loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where the catalog comes from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded seed"
	}
	return l.filePath
}

// Load reads and parses the catalog file
func (l *Loader) Load() (File, error) {
	if l.filePath == "" {
		return Parse(seedYAML)
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML. Unknown fields are rejected so typos in the
// file do not silently drop data.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return f, nil
}
