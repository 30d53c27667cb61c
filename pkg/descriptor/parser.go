// pkg/descriptor/parser.go
package descriptor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OverlayName is the optional sibling file merged on top of a descriptor
const OverlayName = "devshell.local.yaml"

// Load reads and validates a descriptor file
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return spec, nil
}

// LoadWithOverlay loads a descriptor and, when a devshell.local.yaml exists
// next to it, merges the overlay on top
func LoadWithOverlay(path string) (*Spec, error) {
	spec, err := Load(path)
	if err != nil {
		return nil, err
	}

	overlayPath := filepath.Join(filepath.Dir(path), OverlayName)
	data, err := os.ReadFile(overlayPath)
	if err != nil {
		if os.IsNotExist(err) {
			return spec, nil
		}
		return nil, fmt.Errorf("reading overlay: %w", err)
	}

	overlay, err := ParseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", overlayPath, err)
	}

	return Merge(spec, overlay), nil
}

// Parse parses and validates descriptor YAML
func Parse(data []byte) (*Spec, error) {
	var spec Spec

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// ParseOverlay parses overlay YAML
func ParseOverlay(data []byte) (*Overlay, error) {
	var overlay Overlay

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil {
		return nil, err
	}

	return &overlay, nil
}

// Validate checks the descriptor for structural problems
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("descriptor name is required")
	}

	if err := checkNames("tools", s.Tools); err != nil {
		return err
	}
	if err := checkNames("libraries", s.Libraries); err != nil {
		return err
	}

	for key := range s.Env {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("env contains an empty variable name")
		}
	}

	for i, line := range s.Init {
		if strings.TrimSpace(line) == "" {
			return fmt.Errorf("init line %d is empty", i+1)
		}
	}

	return nil
}

func checkNames(field string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s contains an empty name", field)
		}
		if seen[name] {
			return fmt.Errorf("%s declares %q more than once", field, name)
		}
		seen[name] = true
	}
	return nil
}
