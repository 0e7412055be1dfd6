// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	stderrors "errors"
	"math"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// ErrInvalidBumpKind is returned when free-form input does not name one of
// the three bump kinds. There is no default bump.
var ErrInvalidBumpKind = stderrors.New("invalid bump kind")

// BumpKind selects which version component to increment.
const (
	BumpKindMajor BumpKind = "major"
	BumpKindMinor BumpKind = "minor"
	BumpKindPatch BumpKind = "patch"
)

// AvailableBumpKinds contains all valid bump kinds in selection order.
var AvailableBumpKinds = BumpKinds{BumpKindMajor, BumpKindMinor, BumpKindPatch}

// BumpKind is a string-based enum for version bump kinds.
type BumpKind string

func (b BumpKind) String() string {
	return string(b)
}

func (b BumpKind) Validate(ctx context.Context) error {
	if !AvailableBumpKinds.Contains(b) {
		return errors.Wrapf(ctx, validation.Error, "unknown bump kind '%s'", b)
	}
	return nil
}

func (b BumpKind) Ptr() *BumpKind {
	return &b
}

// BumpKinds is a collection of BumpKind values.
type BumpKinds []BumpKind

func (b BumpKinds) Contains(kind BumpKind) bool {
	return collection.Contains(b, kind)
}

// ParseBumpKind converts free-form input into a BumpKind.
// Anything outside major/minor/patch returns ErrInvalidBumpKind.
func ParseBumpKind(ctx context.Context, value string) (BumpKind, error) {
	kind := BumpKind(value)
	if !AvailableBumpKinds.Contains(kind) {
		return "", errors.Wrapf(ctx, ErrInvalidBumpKind, "'%s'", value)
	}
	return kind, nil
}

// Bump returns a new Version with the selected component incremented and all
// lower-order components reset to zero. Prefix and suffix carry over
// unchanged. Increment overflow returns ErrVersionOverflow, never wraparound.
func (v Version) Bump(ctx context.Context, kind BumpKind) (Version, error) {
	result := v
	switch kind {
	case BumpKindMajor:
		if v.Major == math.MaxUint64 {
			return Version{}, errors.Wrap(ctx, ErrVersionOverflow, "bump major")
		}
		result.Major = v.Major + 1
		result.Minor = 0
		result.Patch = 0
	case BumpKindMinor:
		if v.Minor == math.MaxUint64 {
			return Version{}, errors.Wrap(ctx, ErrVersionOverflow, "bump minor")
		}
		result.Minor = v.Minor + 1
		result.Patch = 0
	case BumpKindPatch:
		if v.Patch == math.MaxUint64 {
			return Version{}, errors.Wrap(ctx, ErrVersionOverflow, "bump patch")
		}
		result.Patch = v.Patch + 1
	default:
		return Version{}, errors.Wrapf(ctx, ErrInvalidBumpKind, "'%s'", kind)
	}
	return result, nil
}
