// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tagger

import (
	"context"
	"log"

	"github.com/bborbe/errors"

	"github.com/sbmueller/semver-taggr/pkg/config"
	"github.com/sbmueller/semver-taggr/pkg/git"
	"github.com/sbmueller/semver-taggr/pkg/prompt"
	"github.com/sbmueller/semver-taggr/pkg/semver"
)

// Options are the per-invocation switches passed down from the CLI.
type Options struct {
	// BumpKind preselects the bump non-interactively when non-empty.
	BumpKind semver.BumpKind
	// Force skips the allowed-branch guard.
	Force bool
	// DryRun prints the new tag without creating it.
	DryRun bool
	// SkipConfirm suppresses the confirmation prompt.
	SkipConfirm bool
	// Debug enables verbose logging.
	Debug bool
}

// Tagger runs the tag workflow once:
// locate latest version tag, parse, bump, format, confirm, create.
//
//counterfeiter:generate -o ../../mocks/tagger.go --fake-name Tagger . Tagger
type Tagger interface {
	Run(ctx context.Context, opts Options) error
}

// tagger implements Tagger.
type tagger struct {
	repo     git.Repo
	prompter prompt.Prompter
	cfg      config.Config
}

// NewTagger creates a new Tagger.
func NewTagger(
	repo git.Repo,
	prompter prompt.Prompter,
	cfg config.Config,
) Tagger {
	return &tagger{
		repo:     repo,
		prompter: prompter,
		cfg:      cfg,
	}
}

// Run executes the workflow. Every fallible step aborts immediately; nothing
// is created until locate, parse, bump and the guards have all succeeded.
func (t *tagger) Run(ctx context.Context, opts Options) error {
	if err := t.checkBranch(ctx, opts); err != nil {
		return err
	}

	latest, err := t.repo.LatestVersionTag(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "find latest version tag")
	}
	if opts.Debug {
		log.Printf("taggr: latest version tag is %s", latest)
	}

	version, err := semver.Parse(ctx, latest)
	if err != nil {
		return errors.Wrap(ctx, err, "parse latest tag")
	}
	log.Printf("taggr: last tagged version: %d.%d.%d", version.Major, version.Minor, version.Patch)

	kind := opts.BumpKind
	if kind == "" {
		kind, err = t.prompter.SelectBumpKind(ctx)
		if err != nil {
			return errors.Wrap(ctx, err, "select bump kind")
		}
	}
	if opts.Debug {
		log.Printf("taggr: bumping %s", kind)
	}

	next, err := version.Bump(ctx, kind)
	if err != nil {
		return errors.Wrap(ctx, err, "bump version")
	}
	newTag := next.String()

	exists, err := t.repo.TagExists(ctx, newTag)
	if err != nil {
		return errors.Wrap(ctx, err, "check tag existence")
	}
	if exists {
		return errors.Errorf(ctx, "tag %s already exists", newTag)
	}

	if !opts.SkipConfirm {
		ok, err := t.prompter.Confirm(ctx, "Create new tag "+newTag+"?", true)
		if err != nil {
			return errors.Wrap(ctx, err, "confirm tag creation")
		}
		if !ok {
			log.Printf("taggr: aborting")
			return nil
		}
	}

	if opts.DryRun {
		log.Printf("taggr: dry-run, would create tag %s", newTag)
		return nil
	}

	identity, err := t.repo.UserIdentity(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "resolve user identity")
	}
	if opts.Debug {
		log.Printf("taggr: tagging as %s <%s>", identity.Name, identity.Email)
	}

	if err := t.repo.CreateAnnotatedTag(ctx, newTag, t.cfg.TagMessage); err != nil {
		return errors.Wrap(ctx, err, "create annotated tag")
	}

	log.Printf("taggr: annotated tag created: %s", newTag)
	return nil
}

// checkBranch enforces the allowed-branch guard unless forced.
func (t *tagger) checkBranch(ctx context.Context, opts Options) error {
	if opts.Force {
		return nil
	}
	branch, err := t.repo.CurrentBranch(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "get current branch")
	}
	if !t.cfg.AllowsBranch(branch) {
		return errors.Errorf(
			ctx,
			"branch '%s' is not allowed for tagging, use --force to override",
			branch,
		)
	}
	return nil
}
