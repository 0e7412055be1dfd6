// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"context"
	stderrors "errors"

	"github.com/bborbe/errors"

	"github.com/sbmueller/semver-taggr/pkg/git"
	"github.com/sbmueller/semver-taggr/pkg/semver"
)

// Status describes the current version state of a repository.
type Status struct {
	Branch    string `json:"branch"`
	LatestTag string `json:"latest_tag,omitempty"`
	Major     uint64 `json:"major"`
	Minor     uint64 `json:"minor"`
	Patch     uint64 `json:"patch"`
	NextMajor string `json:"next_major,omitempty"`
	NextMinor string `json:"next_minor,omitempty"`
	NextPatch string `json:"next_patch,omitempty"`
	Untagged  bool   `json:"untagged,omitempty"`
}

// Checker inspects a repository's version state.
//
//counterfeiter:generate -o ../../mocks/status-checker.go --fake-name StatusChecker . Checker
type Checker interface {
	GetStatus(ctx context.Context) (*Status, error)
}

// checker implements Checker.
type checker struct {
	repo git.Repo
}

// NewChecker creates a new Checker.
func NewChecker(repo git.Repo) Checker {
	return &checker{
		repo: repo,
	}
}

// GetStatus resolves the latest version tag and precomputes the candidate
// next tag for every bump kind. A repository without qualifying tags is
// reported as untagged, not as an error.
func (c *checker) GetStatus(ctx context.Context) (*Status, error) {
	branch, err := c.repo.CurrentBranch(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get current branch")
	}

	st := &Status{
		Branch: branch,
	}

	latest, err := c.repo.LatestVersionTag(ctx)
	if err != nil {
		if stderrors.Is(err, git.ErrNoVersionTag) {
			st.Untagged = true
			return st, nil
		}
		return nil, errors.Wrap(ctx, err, "find latest version tag")
	}
	st.LatestTag = latest

	version, err := semver.Parse(ctx, latest)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "parse latest tag")
	}
	st.Major = version.Major
	st.Minor = version.Minor
	st.Patch = version.Patch

	for _, kind := range semver.AvailableBumpKinds {
		next, err := version.Bump(ctx, kind)
		if err != nil {
			return nil, errors.Wrapf(ctx, err, "bump %s", kind)
		}
		switch kind {
		case semver.BumpKindMajor:
			st.NextMajor = next.String()
		case semver.BumpKindMinor:
			st.NextMinor = next.String()
		case semver.BumpKindPatch:
			st.NextPatch = next.String()
		}
	}

	return st, nil
}
