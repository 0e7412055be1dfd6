// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Policy defines how the latest version tag is resolved.
//
// PolicyDescribe is ancestry-aware: it selects the version-shaped tag nearest
// to the checked-out commit, considering only tags reachable from it. When
// multiple tags point at the same commit, git describe's own deterministic
// pick is taken as-is.
//
// PolicyAll ignores reachability: it enumerates every version-shaped tag in
// the repository and selects the last one in git's default lexicographic
// refname order. This is the weaker policy and must be opted into.
const (
	PolicyDescribe Policy = "describe"
	PolicyAll      Policy = "all"
)

// AvailablePolicies contains all valid tag resolution policies.
var AvailablePolicies = Policies{PolicyDescribe, PolicyAll}

// Policy is a string-based enum for tag resolution policies.
type Policy string

func (p Policy) String() string {
	return string(p)
}

func (p Policy) Validate(ctx context.Context) error {
	if !AvailablePolicies.Contains(p) {
		return errors.Wrapf(ctx, validation.Error, "unknown tag policy '%s'", p)
	}
	return nil
}

func (p Policy) Ptr() *Policy {
	return &p
}

// Policies is a collection of Policy values.
type Policies []Policy

func (p Policies) Contains(policy Policy) bool {
	return collection.Contains(p, policy)
}
