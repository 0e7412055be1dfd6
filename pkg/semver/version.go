// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bborbe/errors"
)

// ErrNoVersionInTag is returned when a tag contains no N.N.N version triple.
var ErrNoVersionInTag = stderrors.New("no version found in tag")

// ErrVersionOverflow is returned when a version component cannot be
// represented as uint64, either while parsing or after an increment.
var ErrVersionOverflow = stderrors.New("version component overflows")

// versionTriple matches one run of three dot-separated decimal groups.
var versionTriple = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// Version is a tag decomposed into prefix, numeric triple and suffix.
// Prefix and suffix are captured verbatim, including adjacent punctuation.
type Version struct {
	Prefix string
	Major  uint64
	Minor  uint64
	Patch  uint64
	Suffix string
}

// Parse extracts the version triple from a tag string.
// All non-overlapping N.N.N occurrences are scanned and the last one is
// selected, so in "a-1.0.0-2.5.9-b" the triple is 2.5.9 and the earlier
// numbers become part of the prefix.
// Returns ErrNoVersionInTag if the tag contains no triple and
// ErrVersionOverflow if a component exceeds uint64.
func Parse(ctx context.Context, tag string) (Version, error) {
	matches := versionTriple.FindAllStringSubmatchIndex(tag, -1)
	if matches == nil {
		return Version{}, errors.Wrapf(ctx, ErrNoVersionInTag, "parse tag '%s'", tag)
	}

	m := matches[len(matches)-1]

	major, err := parseComponent(ctx, tag[m[2]:m[3]])
	if err != nil {
		return Version{}, errors.Wrap(ctx, err, "parse major")
	}
	minor, err := parseComponent(ctx, tag[m[4]:m[5]])
	if err != nil {
		return Version{}, errors.Wrap(ctx, err, "parse minor")
	}
	patch, err := parseComponent(ctx, tag[m[6]:m[7]])
	if err != nil {
		return Version{}, errors.Wrap(ctx, err, "parse patch")
	}

	return Version{
		Prefix: tag[:m[0]],
		Major:  major,
		Minor:  minor,
		Patch:  patch,
		Suffix: tag[m[1]:],
	}, nil
}

// parseComponent parses one decimal version component as uint64.
func parseComponent(ctx context.Context, value string) (uint64, error) {
	result, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && stderrors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errors.Wrapf(ctx, ErrVersionOverflow, "component '%s'", value)
		}
		return 0, errors.Wrapf(ctx, err, "parse component '%s'", value)
	}
	return result, nil
}

// String reassembles prefix + major.minor.patch + suffix with canonical
// decimal formatting and no leading zeros.
func (v Version) String() string {
	return fmt.Sprintf("%s%d.%d.%d%s", v.Prefix, v.Major, v.Minor, v.Patch, v.Suffix)
}
