package kriging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config gathers the parameters of a semivariogram fit and of the
// predictions made with it.
type Config struct {
	Semivariance struct {
		// MaxRange bounds the lag sequence.
		MaxRange float64 `yaml:"maxRange"`

		// StepSize is the half width of every lag bin.
		StepSize float64 `yaml:"stepSize"`
	} `yaml:"semivariance"`

	Fit struct {
		Families        []ModelType `yaml:"families"`
		NumberOfRanges  int         `yaml:"numberOfRanges"`
		SillFractions   []float64   `yaml:"sillFractions"`
		NuggetFractions []float64   `yaml:"nuggetFractions"`
		MinLags         int         `yaml:"minLags"`
		WeightByPairs   bool        `yaml:"weightByPairs"`
		Refine          bool        `yaml:"refine"`
	} `yaml:"fit"`

	Prediction struct {
		NumberOfObservations int     `yaml:"numberOfObservations"`
		SearchRadius         float64 `yaml:"searchRadius"`

		// Workers bounds the goroutines used by PredictMany.
		Workers int `yaml:"workers"`
	} `yaml:"prediction"`
}

// DefaultConfig returns a configuration with default values. MaxRange,
// StepSize and SearchRadius depend on the data and are left at zero.
func DefaultConfig() *Config {
	cfg := &Config{}

	fit := DefaultFitOptions()
	cfg.Fit.Families = append([]ModelType(nil), fit.Families...)
	cfg.Fit.NumberOfRanges = fit.NumberOfRanges
	cfg.Fit.SillFractions = append([]float64(nil), fit.SillFractions...)
	cfg.Fit.NuggetFractions = append([]float64(nil), fit.NuggetFractions...)
	cfg.Fit.MinLags = fit.MinLags
	cfg.Fit.WeightByPairs = fit.WeightByPairs
	cfg.Fit.Refine = fit.Refine

	cfg.Prediction.NumberOfObservations = 8
	cfg.Prediction.Workers = runtime.NumCPU()

	return cfg
}

// LoadConfig overlays the kriging settings found in path on DefaultConfig.
// A path that does not exist yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("kriging settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("kriging settings %s: decode yaml: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kriging settings %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML, creating the parent directory of path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode kriging settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("kriging settings directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that have no usable meaning when negative or
// unknown.
func (c *Config) Validate() error {
	if c.Semivariance.MaxRange < 0 {
		return fmt.Errorf("semivariance.maxRange must not be negative, got %v", c.Semivariance.MaxRange)
	}
	if c.Semivariance.StepSize < 0 {
		return fmt.Errorf("semivariance.stepSize must not be negative, got %v", c.Semivariance.StepSize)
	}
	for _, f := range c.Fit.Families {
		if _, err := ModelFunc(f); err != nil {
			return fmt.Errorf("fit.families: %w", err)
		}
	}
	if c.Fit.MinLags < 0 {
		return fmt.Errorf("fit.minLags must not be negative, got %d", c.Fit.MinLags)
	}
	if c.Prediction.NumberOfObservations < 0 {
		return fmt.Errorf("prediction.numberOfObservations must not be negative, got %d", c.Prediction.NumberOfObservations)
	}
	if c.Prediction.SearchRadius < 0 {
		return fmt.Errorf("prediction.searchRadius must not be negative, got %v", c.Prediction.SearchRadius)
	}
	return nil
}

// Lags returns the lag sequence described by the semivariance section.
func (c *Config) Lags() []float64 {
	return LagSequence(c.Semivariance.MaxRange, c.Semivariance.StepSize)
}

func (c *Config) FitOptions() FitOptions {
	return FitOptions{
		Families:        c.Fit.Families,
		NumberOfRanges:  c.Fit.NumberOfRanges,
		SillFractions:   c.Fit.SillFractions,
		NuggetFractions: c.Fit.NuggetFractions,
		MinLags:         c.Fit.MinLags,
		WeightByPairs:   c.Fit.WeightByPairs,
		Refine:          c.Fit.Refine,
	}
}
