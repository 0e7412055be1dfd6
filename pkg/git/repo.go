// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"

	"github.com/sbmueller/semver-taggr/pkg/config"
)

// ErrNoVersionTag is returned when no version-shaped tag qualifies under the
// selected resolution policy. There is no fallback to a commit identifier.
var ErrNoVersionTag = stderrors.New("no version tag found")

// versionTagGlob matches tags containing three dot-separated numeric groups,
// optionally surrounded by arbitrary text.
const versionTagGlob = "*[0-9]*.[0-9]*.[0-9]*"

// Identity is the committer identity from the repository configuration.
type Identity struct {
	Name  string
	Email string
}

// Repo provides read access to a git repository plus annotated tag creation.
//
//counterfeiter:generate -o ../../mocks/repo.go --fake-name Repo . Repo
type Repo interface {
	CurrentBranch(ctx context.Context) (string, error)
	LatestVersionTag(ctx context.Context) (string, error)
	TagExists(ctx context.Context, name string) (bool, error)
	UserIdentity(ctx context.Context) (Identity, error)
	CreateAnnotatedTag(ctx context.Context, name string, message string) error
}

// repo implements Repo by shelling out to git.
type repo struct {
	workDir string
	policy  config.Policy
}

// NewRepo creates a Repo for the repository at workDir using the given tag
// resolution policy.
func NewRepo(workDir string, policy config.Policy) Repo {
	return &repo{
		workDir: workDir,
		policy:  policy,
	}
}

// CurrentBranch returns the name of the checked-out branch.
func (r *repo) CurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(ctx, err, "get current branch: %s", stderr.String())
	}
	return strings.TrimSpace(string(output)), nil
}

// LatestVersionTag returns the most recent version-shaped tag under the
// configured policy. Returns ErrNoVersionTag if no tag qualifies.
func (r *repo) LatestVersionTag(ctx context.Context) (string, error) {
	if r.policy == config.PolicyAll {
		return r.lastVersionTag(ctx)
	}
	return r.describeVersionTag(ctx)
}

// describeVersionTag resolves the nearest version-shaped tag reachable from
// the checked-out commit. If the commit itself is tagged, that tag wins.
func (r *repo) describeVersionTag(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(
		ctx,
		"git", "describe", "--tags", "--abbrev=0", "--match", versionTagGlob,
	)
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		// git describe exits non-zero when no matching tag is reachable
		return "", errors.Wrapf(ctx, ErrNoVersionTag, "describe: %s", strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(output)), nil
}

// lastVersionTag enumerates all version-shaped tags without ancestry
// filtering and returns the last one in git's lexicographic refname order.
func (r *repo) lastVersionTag(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "tag", "--list", versionTagGlob)
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(ctx, err, "list tags: %s", stderr.String())
	}

	tags := strings.Fields(strings.TrimSpace(string(output)))
	if len(tags) == 0 {
		return "", errors.Wrap(ctx, ErrNoVersionTag, "list tags")
	}
	return tags[len(tags)-1], nil
}

// TagExists returns true if a tag with the given name already exists.
func (r *repo) TagExists(ctx context.Context, name string) (bool, error) {
	// #nosec G204 -- tag name is produced by the version formatter
	cmd := exec.CommandContext(ctx, "git", "tag", "--list", name)
	cmd.Dir = r.workDir
	output, err := cmd.Output()
	if err != nil {
		return false, errors.Wrap(ctx, err, "list tag")
	}
	return strings.TrimSpace(string(output)) == name, nil
}

// UserIdentity reads user.name and user.email from the git configuration.
// Annotated tags require both, so missing values are an error.
func (r *repo) UserIdentity(ctx context.Context) (Identity, error) {
	name, err := r.configValue(ctx, "user.name")
	if err != nil {
		return Identity{}, errors.Wrap(ctx, err, "read user.name")
	}
	email, err := r.configValue(ctx, "user.email")
	if err != nil {
		return Identity{}, errors.Wrap(ctx, err, "read user.email")
	}
	return Identity{
		Name:  name,
		Email: email,
	}, nil
}

// configValue reads a single git config value, failing on empty values.
func (r *repo) configValue(ctx context.Context, key string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", key)
	cmd.Dir = r.workDir
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(ctx, err, "git config %s", key)
	}
	value := strings.TrimSpace(string(output))
	if value == "" {
		return "", errors.Errorf(ctx, "git config %s is empty", key)
	}
	return value, nil
}

// CreateAnnotatedTag creates one annotated tag at the checked-out commit.
func (r *repo) CreateAnnotatedTag(ctx context.Context, name string, message string) error {
	// #nosec G204 -- tag name is produced by the version formatter
	cmd := exec.CommandContext(ctx, "git", "tag", "-a", name, "-m", message)
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "create annotated tag: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}
