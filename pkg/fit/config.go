// Package fit contains the LTC fitting engine: the stratified
// Monte-Carlo estimators, the derivative-free minimizer, the grid
// traversal driver and the render-time table packing.
package fit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Method names accepted by Config.Method
const (
	MethodSimplex = "simplex"
	MethodGonum   = "gonum"
)

// Config holds the fitting parameters. Zero values are replaced with
// the reference defaults by Validate.
type Config struct {
	// N is the table resolution in both the view-angle and roughness
	// dimensions
	N int `yaml:"N"`

	// NSamples is the side of the stratified sample grid; each
	// estimator evaluates NSamples*NSamples pairs
	NSamples int `yaml:"NSamples"`

	// MinAlpha floors roughness and lobe scales away from singular
	// configurations
	MinAlpha float64 `yaml:"min_alpha"`

	// Epsilon is the initial simplex perturbation size
	Epsilon float64 `yaml:"epsilon"`

	// Tolerance terminates the minimizer once the simplex extent
	// shrinks below it
	Tolerance float64 `yaml:"tolerance"`

	// MaxIterations caps the minimizer; hitting the cap is not an
	// error, the best point found is used
	MaxIterations int `yaml:"max_iterations"`

	// Method selects the minimizer: "simplex" (built-in, reference
	// numerics) or "gonum" (gonum/optimize Nelder-Mead)
	Method string `yaml:"method"`
}

// DefaultConfig returns the reference fitting parameters
func DefaultConfig() Config {
	return Config{
		N:             64,
		NSamples:      32,
		MinAlpha:      0.0001,
		Epsilon:       0.05,
		Tolerance:     1e-5,
		MaxIterations: 100,
		Method:        MethodSimplex,
	}
}

// LoadConfig reads a YAML config file; fields left unset fall back to
// the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	config.Validate()
	return config, nil
}

// Validate replaces zero or negative fields with their defaults. Any
// positive grid size is accepted; N=1 degrades to a single cell.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.N <= 0 {
		c.N = defaults.N
	}
	if c.NSamples <= 0 {
		c.NSamples = defaults.NSamples
	}
	if c.MinAlpha <= 0 {
		c.MinAlpha = defaults.MinAlpha
	}
	if c.Epsilon <= 0 {
		c.Epsilon = defaults.Epsilon
	}
	if c.Tolerance <= 0 {
		c.Tolerance = defaults.Tolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaults.MaxIterations
	}
	if c.Method == "" {
		c.Method = defaults.Method
	}
}
