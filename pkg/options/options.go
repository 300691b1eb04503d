// Package options holds the tunable construction parameters for a
// hierarchy and their YAML loading, modeled on the teacher's pkg/config.
package options

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures a Hierarchy at construction time. The zero value is
// not valid; use Defaults or Load.
type Options struct {
	MinLevel               int     `yaml:"min_level"`
	MinIndexedLevel        int     `yaml:"min_indexed_level"`
	MaxFullyAllocatedLevel int     `yaml:"max_fully_allocated_level"`
	InitLevels             int     `yaml:"init_levels"`
	Fanout                 int     `yaml:"fanout"`
	Epsilon                int     `yaml:"epsilon"`
}

// Defaults mirrors the source implementation's compile-time constants.
func Defaults() Options {
	return Options{
		MinLevel:               6,
		MinIndexedLevel:        18,
		MaxFullyAllocatedLevel: 15,
		InitLevels:             9,
		Fanout:                 32,
		Epsilon:                8,
	}
}

// Load reads Options from a YAML document at path, starting from Defaults
// and overriding only the fields present in the file.
func Load(path string) (Options, error) {
	opts := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Validate checks the preconditions spec.md §4.3 and §6 require of a
// configuration before it can back a Hierarchy.
func (o Options) Validate() error {
	if o.MinIndexedLevel <= o.MinLevel {
		return fmt.Errorf("%w: min_indexed_level (%d) must exceed min_level (%d)", ErrInvalidOptions, o.MinIndexedLevel, o.MinLevel)
	}
	if 2*o.Epsilon >= (1 << o.MinIndexedLevel) {
		return fmt.Errorf("%w: 2*epsilon (%d) must be less than 2^min_indexed_level (%d)", ErrInvalidOptions, 2*o.Epsilon, 1<<o.MinIndexedLevel)
	}
	if o.Fanout <= 0 {
		return fmt.Errorf("%w: fanout must be positive, got %d", ErrInvalidOptions, o.Fanout)
	}
	if o.MaxFullyAllocatedLevel < o.MinLevel {
		return fmt.Errorf("%w: max_fully_allocated_level (%d) must be >= min_level (%d)", ErrInvalidOptions, o.MaxFullyAllocatedLevel, o.MinLevel)
	}
	return nil
}
