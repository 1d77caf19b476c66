package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/facet/codec"
)

// Config is the YAML form of the catalog options:
//
//	roles: [display, entity]
//	accept_fields: [entity.Task.sg_status_list]
//	ignore_fields: []
//	fully_qualified_names: false
//	leaf_depth: 1
//	project_id: 85
//	codec: go-json
type Config struct {
	Roles               []string `yaml:"roles,omitempty"`
	AcceptFields        []string `yaml:"accept_fields,omitempty"`
	IgnoreFields        []string `yaml:"ignore_fields,omitempty"`
	FullyQualifiedNames *bool    `yaml:"fully_qualified_names,omitempty"`
	LeafDepth           *int     `yaml:"leaf_depth,omitempty"`
	ProjectID           *int     `yaml:"project_id,omitempty"`
	Codec               string   `yaml:"codec,omitempty"`
}

// Validate checks the settings that cannot be checked by decoding alone.
func (c Config) Validate() error {
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, c.Codec)
	}
	if c.LeafDepth != nil && *c.LeafDepth < 0 {
		return fmt.Errorf("catalog: leaf_depth must not be negative, got %d", *c.LeafDepth)
	}
	return nil
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("catalog: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("catalog: %w", err)
	}
	return ParseConfig(data)
}
