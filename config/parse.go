package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseFile loads a Config from a file. The file extension is used to
// determine the configuration format (JSON or YAML).
func ParseFile(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yml", ".yaml":
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if ext == ".json" {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseYAML loads a Config from YAML. Unknown keys are rejected.
func ParseYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseJSON loads a Config from JSON
func ParseJSON(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load merges the defaults, the optional file at path and the override,
// in that order, and validates the result.
func Load(path string, override *Config) (*Config, error) {
	result := Default()
	if path != "" {
		fileConfig, err := ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		result = Merge(result, fileConfig)
	}
	if override != nil {
		result = Merge(result, override)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
