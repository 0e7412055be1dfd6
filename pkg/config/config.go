// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Config holds the taggr configuration.
type Config struct {
	TagPolicy       Policy   `yaml:"tagPolicy"`
	AllowedBranches []string `yaml:"allowedBranches"`
	TagMessage      string   `yaml:"tagMessage"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		TagPolicy:       PolicyDescribe,
		AllowedBranches: []string{"master", "main"},
		TagMessage:      "Tag created by taggr",
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("tagPolicy", c.TagPolicy),
		validation.Name("allowedBranches", validation.HasValidationFunc(func(ctx context.Context) error {
			if len(c.AllowedBranches) == 0 {
				return errors.Errorf(ctx, "allowedBranches must not be empty")
			}
			for _, branch := range c.AllowedBranches {
				if branch == "" {
					return errors.Errorf(ctx, "allowedBranches must not contain empty names")
				}
			}
			return nil
		})),
		validation.Name("tagMessage", validation.NotEmptyString(c.TagMessage)),
	}.Validate(ctx)
}

// AllowsBranch returns true if the given branch may be tagged.
func (c Config) AllowsBranch(branch string) bool {
	for _, allowed := range c.AllowedBranches {
		if branch == allowed {
			return true
		}
	}
	return false
}
