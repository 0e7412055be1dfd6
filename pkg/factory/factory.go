// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bborbe/errors"

	"github.com/sbmueller/semver-taggr/pkg/config"
	"github.com/sbmueller/semver-taggr/pkg/git"
	"github.com/sbmueller/semver-taggr/pkg/prompt"
	"github.com/sbmueller/semver-taggr/pkg/status"
	"github.com/sbmueller/semver-taggr/pkg/tagger"
)

// Factory wires the taggr components for one repository.
type Factory struct {
	workDir    string
	configPath string
}

// New creates a Factory for the repository at workDir. configPath is
// resolved relative to workDir when not absolute.
func New(workDir string, configPath string) *Factory {
	return &Factory{
		workDir:    workDir,
		configPath: configPath,
	}
}

// Config loads and validates the configuration.
func (f *Factory) Config(ctx context.Context) (config.Config, error) {
	path := f.configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.workDir, path)
	}
	cfg, err := config.NewLoader(path).Load(ctx)
	if err != nil {
		return config.Config{}, errors.Wrap(ctx, err, "load config")
	}
	return cfg, nil
}

// Repo creates the git repository collaborator.
func (f *Factory) Repo(cfg config.Config) git.Repo {
	return git.NewRepo(f.workDir, cfg.TagPolicy)
}

// Tagger creates the tag workflow with interactive prompts on stdin/stdout.
func (f *Factory) Tagger(cfg config.Config) tagger.Tagger {
	return tagger.NewTagger(
		f.Repo(cfg),
		prompt.NewPrompter(os.Stdin, os.Stdout),
		cfg,
	)
}

// StatusChecker creates the read-only version inspector.
func (f *Factory) StatusChecker(cfg config.Config) status.Checker {
	return status.NewChecker(f.Repo(cfg))
}
