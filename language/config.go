package language

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Config is the declarative part of a language, read from config.toml.
type Config struct {
	// Name identifies the language (e.g., "Rust"). Unique within a registry.
	Name string `toml:"name" json:"name"`

	// PathSuffixes lists keys matched against a path. Each entry is either a
	// bare extension ("rs") or a whole filename ("Makefile").
	PathSuffixes []string `toml:"path_suffixes" json:"path_suffixes"`

	// Grammar names the compiled-in grammar to parse with.
	// If empty, the bundle directory name is used.
	Grammar string `toml:"grammar" json:"grammar,omitempty"`
}

// ParseConfig decodes a config.toml document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Name == "" {
		return Config{}, fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	return cfg, nil
}

// matches reports whether any suffix equals one of the candidate keys.
func (c *Config) matches(filename, extension string) bool {
	for _, suffix := range c.PathSuffixes {
		if suffix == filename || (extension != "" && suffix == extension) {
			return true
		}
	}
	return false
}
