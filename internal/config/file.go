package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/freecell-go/internal/errors"
)

// LoadFile reads a YAML configuration file over the defaults. Keys that
// are absent keep their default values; unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := NewConfig()
	if err := cfg.decodeYAML(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeYAML overlays YAML data onto c.
func (c *Config) decodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	var twos struct {
		Rules struct {
			ExemptTwos *bool `yaml:"exempt_twos"`
		} `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &twos); err == nil && twos.Rules.ExemptTwos != nil {
		c.exemptTwosSet = true
	}
	return nil
}
