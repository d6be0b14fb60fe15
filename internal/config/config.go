package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldview/internal/field"
)

const (
	DefaultParamsFile  = "sim_params.json"
	DefaultOrientation = "cartesian"
	DefaultTheme       = "cyberpunk"

	// DerivePctDensityError turns a divergence dump into percent density error.
	DerivePctDensityError = "pct_density_error"
)

type Config struct {
	RunDir      string        `yaml:"run_dir"`
	ParamsFile  string        `yaml:"params_file"`
	Orientation string        `yaml:"orientation"`
	Theme       string        `yaml:"theme"`
	Panels      []PanelConfig `yaml:"panels"`
}

// PanelConfig names one field file and how to show it.
type PanelConfig struct {
	Title   string     `yaml:"title"`
	File    string     `yaml:"file"`
	Kind    field.Kind `yaml:"kind"`
	Derive  string     `yaml:"derive,omitempty"`
	Min     float64    `yaml:"min"`
	Max     float64    `yaml:"max"`
	Palette string     `yaml:"palette,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		RunDir:      ".",
		ParamsFile:  DefaultParamsFile,
		Orientation: DefaultOrientation,
		Theme:       DefaultTheme,
		Panels:      defaultPanels(".txt"),
	}
}

func defaultPanels(ext string) []PanelConfig {
	return []PanelConfig{
		{Title: "Velocity", File: "sim_velocity" + ext, Kind: field.Vector},
		{Title: "Color", File: "sim_color" + ext, Kind: field.Scalar, Min: 0, Max: 1, Palette: "viridis"},
		{
			Title: "Pct density error", File: "sim_divergence" + ext, Kind: field.Scalar,
			Derive: DerivePctDensityError, Min: 0, Max: 100, Palette: "hot",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks panel kinds, derivations, color limits and orientation.
func (c *Config) Validate() error {
	if c.ParamsFile == "" {
		return fmt.Errorf("%w: params_file is empty", ErrInvalidConfig)
	}
	switch c.Orientation {
	case "cartesian", "ij":
	default:
		return fmt.Errorf("%w: orientation must be cartesian or ij, got %q", ErrInvalidConfig, c.Orientation)
	}
	if len(c.Panels) == 0 {
		return fmt.Errorf("%w: no panels", ErrInvalidConfig)
	}
	for i, p := range c.Panels {
		if p.File == "" {
			return fmt.Errorf("%w: panel %d has no file", ErrInvalidConfig, i)
		}
		if !p.Kind.Valid() {
			return fmt.Errorf("%w: panel %q: %v", ErrInvalidConfig, p.Title, field.ErrInvalidKind)
		}
		switch p.Derive {
		case "":
		case DerivePctDensityError:
			if p.Kind != field.Scalar {
				return fmt.Errorf("%w: panel %q: %s needs a scalar field", ErrInvalidConfig, p.Title, p.Derive)
			}
		default:
			return fmt.Errorf("%w: panel %q: unknown derive %q", ErrInvalidConfig, p.Title, p.Derive)
		}
		if p.Kind == field.Scalar && p.Max <= p.Min {
			return fmt.Errorf("%w: panel %q: max %v must exceed min %v", ErrInvalidConfig, p.Title, p.Max, p.Min)
		}
	}
	return nil
}
