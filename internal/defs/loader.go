// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRules reads a YAML rules file. Keys missing from the file keep their
// DefaultRules value.
func LoadRules(path string) (Rules, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := ParseRules(file)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded rules from %s", path)
	return rules, nil
}

// ParseRules decodes YAML on top of DefaultRules and validates the result.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}
