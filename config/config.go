// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config defines the input data used by the tour and the sorting
// comparison. A configuration may be loaded from a YAML file; keys missing in
// the file keep their default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds the inputs of all tour sections.
type Config struct {
	Chain   []int   `yaml:"chain"`
	Sort    []int   `yaml:"sort"`
	Search  Search  `yaml:"search"`
	Compare Compare `yaml:"compare"`
}

// Search holds the input of the searching section. Values must be sorted in
// ascending order for binary search to be meaningful.
type Search struct {
	Values []int `yaml:"values"`
	Target int   `yaml:"target"`
}

// Compare controls the benchmark comparing the sorting algorithms.
type Compare struct {
	Size   int   `yaml:"size"`   // < number of elements per input
	Rounds int   `yaml:"rounds"` // < number of inputs sorted by each algorithm
	Seed   int64 `yaml:"seed"`   // < seed of the random input generator
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Chain: []int{1, 2, 3},
		Sort:  []int{64, 34, 25, 12, 22, 11, 90},
		Search: Search{
			Values: []int{2, 3, 4, 10, 40},
			Target: 10,
		},
		Compare: Compare{
			Size:   1000,
			Rounds: 5,
			Seed:   42,
		},
	}
}

// Load reads a configuration from the given YAML file on top of the default
// configuration and validates the result. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document on top of the default configuration and
// validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used by all tour sections.
func (c Config) Validate() error {
	var errs []error
	if len(c.Chain) == 0 {
		errs = append(errs, errors.New("chain needs at least one value"))
	}
	if !slices.IsSorted(c.Search.Values) {
		errs = append(errs, fmt.Errorf("search values must be sorted in ascending order, got %v", c.Search.Values))
	}
	if c.Compare.Size < 0 {
		errs = append(errs, fmt.Errorf("compare size must not be negative, got %d", c.Compare.Size))
	}
	if c.Compare.Rounds < 1 {
		errs = append(errs, fmt.Errorf("compare rounds must be at least 1, got %d", c.Compare.Rounds))
	}
	return errors.Join(errs...)
}
