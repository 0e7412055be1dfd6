// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name ConfigLoader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
}

// NewLoader creates a Loader that reads from the given path,
// typically .taggr.yaml in the repository being tagged.
func NewLoader(configPath string) Loader {
	return &fileLoader{
		configPath: configPath,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	TagPolicy       *Policy   `yaml:"tagPolicy"`
	AllowedBranches *[]string `yaml:"allowedBranches"`
	TagMessage      *string   `yaml:"tagMessage"`
}

// Load reads the config file, merges with defaults, validates, and returns
// the config. A missing file yields the defaults.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	cfg := Defaults()

	// #nosec G304 -- configPath comes from the --config flag
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	if partial.TagPolicy != nil {
		cfg.TagPolicy = *partial.TagPolicy
	}
	if partial.AllowedBranches != nil {
		cfg.AllowedBranches = *partial.AllowedBranches
	}
	if partial.TagMessage != nil {
		cfg.TagMessage = *partial.TagMessage
	}

	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}
