// Package config holds the run configuration of the occuprob command: which
// partition-function contributions to combine, the temperature grid and the
// output settings. It is loaded from YAML and overlaid by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/occuprob/partition"
	"github.com/katalvlaran/occuprob/results"
)

var (
	// ErrNoContribution indicates a selection with nothing enabled.
	ErrNoContribution = errors.New("config: at least one partition function must be selected")

	// ErrConflict indicates two mutually exclusive contributions selected together.
	ErrConflict = errors.New("config: conflicting contributions")

	// ErrInvalid indicates an out-of-range setting.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the complete run configuration.
type Config struct {
	Contributions Selection         `yaml:"contributions"`
	Temperature   TemperatureConfig `yaml:"temperature"`
	Output        OutputConfig      `yaml:"output"`
}

// Selection enumerates the contributions to combine. Electronic and Spin are
// mutually exclusive, as are Classical and Quantum.
type Selection struct {
	// Electronic adds the electronic term without spin degeneracy.
	Electronic bool `yaml:"electronic"`
	// Spin adds the electronic term weighted by spin multiplicity.
	Spin bool `yaml:"spin"`
	// Classical adds the classical harmonic vibrational term.
	Classical bool `yaml:"classical"`
	// Quantum adds the quantum harmonic vibrational term.
	Quantum bool `yaml:"quantum"`
	// Rotational adds the rigid-rotor term.
	Rotational bool `yaml:"rotational"`
}

// TemperatureConfig defines the grid Min, Min+Step, ... up to Max (K).
type TemperatureConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// OutputConfig controls the result files.
type OutputConfig struct {
	// Prefix for <prefix>_p.dat and <prefix>_c.dat; empty derives it from
	// the input path.
	Prefix string `yaml:"prefix"`
	// Plot also renders <prefix>_p.<format> and <prefix>_c.<format>.
	Plot   bool    `yaml:"plot"`
	Format string  `yaml:"format"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Temperature: TemperatureConfig{Min: 0, Max: 500, Step: 1},
		Output:      OutputConfig{Format: "pdf", Width: 8, Height: 6},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the selection and value ranges.
func (c *Config) Validate() error {
	if err := c.Contributions.Validate(); err != nil {
		return err
	}
	t := c.Temperature
	if t.Min < 0 {
		return fmt.Errorf("%w: temperature.min must be >= 0", ErrInvalid)
	}
	if t.Max < t.Min {
		return fmt.Errorf("%w: temperature.max must be >= temperature.min", ErrInvalid)
	}
	if t.Step <= 0 {
		return fmt.Errorf("%w: temperature.step must be > 0", ErrInvalid)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: output.width and output.height must be > 0", ErrInvalid)
	}
	if c.Output.Plot && !knownFormat(c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want one of %s)", ErrInvalid, c.Output.Format, strings.Join(results.Formats, ", "))
	}

	return nil
}

// Grid builds the temperature grid.
func (c *Config) Grid() (partition.Grid, error) {
	return partition.Span(c.Temperature.Min, c.Temperature.Max, c.Temperature.Step)
}

// Validate rejects empty and conflicting selections.
func (s Selection) Validate() error {
	if s.Electronic && s.Spin {
		return fmt.Errorf("%w: electronic and spin", ErrConflict)
	}
	if s.Classical && s.Quantum {
		return fmt.Errorf("%w: classical and quantum", ErrConflict)
	}
	if !(s.Electronic || s.Spin || s.Classical || s.Quantum || s.Rotational) {
		return ErrNoContribution
	}

	return nil
}

// Build returns the selected contributions in the fixed order electronic,
// vibrational, rotational.
func (s Selection) Build() ([]partition.Contribution, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var out []partition.Contribution
	switch {
	case s.Spin:
		out = append(out, partition.NewElectronic(partition.WithSpin()))
	case s.Electronic:
		out = append(out, partition.NewElectronic())
	}
	switch {
	case s.Quantum:
		out = append(out, partition.NewQuantumHarmonic())
	case s.Classical:
		out = append(out, partition.NewClassicalHarmonic())
	}
	if s.Rotational {
		out = append(out, partition.NewRotational())
	}

	return out, nil
}

// String lists the selected contributions, e.g. "spin+quantum+rotational".
func (s Selection) String() string {
	var names []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.Electronic, "electronic"},
		{s.Spin, "spin"},
		{s.Classical, "classical"},
		{s.Quantum, "quantum"},
		{s.Rotational, "rotational"},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "+")
}

func knownFormat(format string) bool {
	for _, f := range results.Formats {
		if strings.EqualFold(format, f) {
			return true
		}
	}

	return false
}
