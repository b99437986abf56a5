// Package config loads the optional owolayout.yaml next to the markup being
// inspected.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/logging"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "owolayout.yaml"

// Config represents owolayout.yaml.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Logging  logging.Config `yaml:"logging"`
	Entities []EntityConfig `yaml:"entities"`
}

// ViewportConfig is the size of the virtual screen the tree is laid out in.
type ViewportConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// EntityConfig declares an entity type of the demo host.
type EntityConfig struct {
	ID     string  `yaml:"id"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate checks the identifier and that the bounding box is positive.
func (e EntityConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required, validation.By(identifier)),
		validation.Field(&e.Width, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&e.Height, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

func identifier(value any) error {
	s, _ := value.(string)
	if _, err := core.ParseIdentifier(s); err != nil {
		return validation.NewError("validation_identifier", err.Error())
	}
	return nil
}

// Resolved contains configuration with defaults applied.
type Resolved struct {
	Dir      string
	Viewport ViewportConfig
	Logging  logging.Config
	Entities []EntityConfig
}

// Validate checks the resolved values.
func (r Resolved) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Viewport),
		validation.Field(&r.Entities),
	)
}

// Validate requires a positive viewport.
func (v ViewportConfig) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Width, validation.Required, validation.Min(1)),
		validation.Field(&v.Height, validation.Required, validation.Min(1)),
	)
}

// DefaultEntities are the demo entity types used when the config names none.
var DefaultEntities = []EntityConfig{
	{ID: "minecraft:pig", Width: 0.9, Height: 0.9},
	{ID: "minecraft:cow", Width: 0.9, Height: 1.4},
	{ID: "minecraft:zombie", Width: 0.6, Height: 1.95},
	{ID: "minecraft:player", Width: 0.6, Height: 1.8},
}

// LoadOptional reads owolayout.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads owolayout.yaml (if present), applies defaults and validates
// the result.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	viewport := cfg.Viewport
	if viewport.Width == 0 {
		viewport.Width = 320
	}
	if viewport.Height == 0 {
		viewport.Height = 240
	}

	logCfg := cfg.Logging
	if strings.TrimSpace(logCfg.Level) == "" {
		logCfg.Level = "warn"
	}

	entities := cfg.Entities
	if len(entities) == 0 {
		entities = DefaultEntities
	}

	resolved := &Resolved{
		Dir:      dir,
		Viewport: viewport,
		Logging:  logCfg,
		Entities: entities,
	}
	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return resolved, nil
}

// ParseSize parses a WIDTHxHEIGHT viewport override such as "640x480".
func ParseSize(s string) (ViewportConfig, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return ViewportConfig{}, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	var v ViewportConfig
	if _, err := fmt.Sscanf(w+" "+h, "%d %d", &v.Width, &v.Height); err != nil {
		return ViewportConfig{}, fmt.Errorf("size %q: %w", s, err)
	}
	if err := v.Validate(); err != nil {
		return ViewportConfig{}, fmt.Errorf("size %q: %w", s, err)
	}
	return v, nil
}
