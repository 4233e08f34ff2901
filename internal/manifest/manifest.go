// Package manifest reads and validates the .pre-commit-hooks.yaml file
// that the pre-commit framework consumes to discover this hook.
package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where pre-commit expects the hook manifest.
const DefaultPath = ".pre-commit-hooks.yaml"

// Hook describes a single hook entry in the manifest.
type Hook struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Entry         string   `yaml:"entry"`
	Language      string   `yaml:"language"`
	Files         string   `yaml:"files,omitempty"`
	Types         []string `yaml:"types,omitempty"`
	Args          []string `yaml:"args,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	RequireSerial bool     `yaml:"require_serial,omitempty"`
}

// Manifest is the top-level document: a plain list of hooks.
type Manifest []Hook

// Load reads and parses a manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	return m, nil
}

// Validate checks the framework's required fields and that file
// patterns compile.
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("manifest declares no hooks")
	}

	seenIDs := make(map[string]bool)

	for i, h := range m {
		if h.ID == "" {
			return fmt.Errorf("hook at index %d missing id", i)
		}
		if seenIDs[h.ID] {
			return fmt.Errorf("duplicate hook id %s", h.ID)
		}
		seenIDs[h.ID] = true

		if h.Name == "" {
			return fmt.Errorf("hook %s missing name", h.ID)
		}
		if h.Entry == "" {
			return fmt.Errorf("hook %s missing entry", h.ID)
		}
		if h.Language == "" {
			return fmt.Errorf("hook %s missing language", h.ID)
		}
		if h.Files != "" {
			if _, err := regexp.Compile(h.Files); err != nil {
				return fmt.Errorf("hook %s has invalid files pattern: %w", h.ID, err)
			}
		}
	}

	return nil
}
