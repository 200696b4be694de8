// Package config provides configuration for the libshelf CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Output OutputConfig `yaml:"output"`
}

// StoreConfig locates the JSON store file.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Quiet bool `yaml:"quiet"` // suppress non-error informational output
}

// Load reads a YAML config file and applies defaults and environment
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, err
	}

	if config.Store.Path == "" {
		config.Store.Path = "library.json"
	}

	// Environment overrides win over the file.
	if p := os.Getenv("LIBSHELF_STORE"); p != "" {
		config.Store.Path = p
	}
	if os.Getenv("LIBSHELF_QUIET") == "true" {
		config.Output.Quiet = true
	}

	return &config, nil
}
