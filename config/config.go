// Package config loads wfc run configurations from YAML.
//
// A configuration names the catalog source (a sample grid for the overlapping
// model, or a rule document for the tiled model), the output grid and the run
// policy:
//
//	model: overlapping
//	sample: samples/flowers.yaml
//	pattern_size: 3
//	periodic_input: true
//	symmetry: 8
//	ground: -1
//	width: 48
//	height: 48
//	seed: 1
//	retries: 10
//
// Relative paths are resolved against the directory of the configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/ruleset"
	"github.com/katalvlaran/wfc/solver"
)

// ErrInvalidConfig indicates a configuration that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Model kinds.
const (
	ModelOverlapping = "overlapping"
	ModelTiled       = "tiled"
)

// Config is one run configuration.
type Config struct {
	Model string `yaml:"model"`

	// Overlapping model.
	Sample        string `yaml:"sample"`
	PatternSize   int    `yaml:"pattern_size"`
	PeriodicInput bool   `yaml:"periodic_input"`
	Symmetry      int    `yaml:"symmetry"`
	Ground        *int   `yaml:"ground"`

	// Tiled model.
	Rules  string `yaml:"rules"`
	Subset string `yaml:"subset"`

	// Output and run policy.
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Periodic bool  `yaml:"periodic"`
	Seed     int64 `yaml:"seed"`
	Retries  int   `yaml:"retries"`
	// SliceSteps bounds each Run call; 0 runs each attempt to completion.
	SliceSteps int    `yaml:"slice_steps"`
	Snapshot   string `yaml:"snapshot"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model:         ModelOverlapping,
		PatternSize:   2,
		PeriodicInput: true,
		Symmetry:      8,
		Width:         32,
		Height:        32,
		Seed:          1,
		Retries:       10,
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	c.resolve(filepath.Dir(path))
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Sample, &c.Rules, &c.Snapshot} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks field ranges and that the model has its source.
func (c Config) Validate() error {
	switch c.Model {
	case ModelOverlapping:
		if c.Sample == "" {
			return fmt.Errorf("%w: overlapping model needs a sample", ErrInvalidConfig)
		}
		if c.PatternSize < 1 {
			return fmt.Errorf("%w: pattern_size %d", ErrInvalidConfig, c.PatternSize)
		}
		if c.Symmetry < 1 || c.Symmetry > 8 {
			return fmt.Errorf("%w: symmetry %d not in 1..8", ErrInvalidConfig, c.Symmetry)
		}
	case ModelTiled:
		if c.Rules == "" {
			return fmt.Errorf("%w: tiled model needs rules", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown model %q", ErrInvalidConfig, c.Model)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: output %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Retries < 0 || c.SliceSteps < 0 {
		return fmt.Errorf("%w: retries and slice_steps must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Budget returns the per-call step budget.
func (c Config) Budget() solver.Budget {
	if c.SliceSteps == 0 {
		return solver.Unbounded()
	}
	return solver.Steps(c.SliceSteps)
}

// CatalogOptions returns the catalog options the configuration selects.
func (c Config) CatalogOptions() []catalog.Option {
	opts := []catalog.Option{
		catalog.WithPatternSize(c.PatternSize),
		catalog.WithPeriodicInput(c.PeriodicInput),
		catalog.WithSymmetry(c.Symmetry),
	}
	if c.Ground != nil {
		opts = append(opts, catalog.WithGround(*c.Ground))
	}
	if c.Subset != "" {
		opts = append(opts, catalog.WithSubset(c.Subset))
	}
	return opts
}

// Catalog loads the configured source and builds its catalog.
func (c Config) Catalog() (*catalog.Catalog, error) {
	switch c.Model {
	case ModelOverlapping:
		s, err := ruleset.LoadSample(c.Sample)
		if err != nil {
			return nil, err
		}
		return catalog.BuildFromSamples(s, c.CatalogOptions()...)
	case ModelTiled:
		doc, err := ruleset.Load(c.Rules)
		if err != nil {
			return nil, err
		}
		return ruleset.Build(doc, c.CatalogOptions()...)
	}
	return nil, fmt.Errorf("%w: unknown model %q", ErrInvalidConfig, c.Model)
}
