// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bborbe/errors"

	"github.com/sbmueller/semver-taggr/pkg/semver"
)

// Prompter asks the user for the workflow decisions taggr cannot make itself.
//
//counterfeiter:generate -o ../../mocks/prompter.go --fake-name Prompter . Prompter
type Prompter interface {
	SelectBumpKind(ctx context.Context) (semver.BumpKind, error)
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}

// prompter implements Prompter on a line-oriented reader/writer pair.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectBumpKind presents the three bump kinds and reads the selection,
// accepting either the list number or the kind name. There is no default:
// empty or unknown input is an error, never a silent bump.
func (p *prompter) SelectBumpKind(ctx context.Context) (semver.BumpKind, error) {
	fmt.Fprintln(p.out, "Which version to bump?")
	for i, kind := range semver.AvailableBumpKinds {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, kind)
	}
	fmt.Fprint(p.out, "> ")

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "read bump selection")
	}

	if index, err := strconv.Atoi(answer); err == nil {
		if index < 1 || index > len(semver.AvailableBumpKinds) {
			return "", errors.Wrapf(ctx, semver.ErrInvalidBumpKind, "selection %d", index)
		}
		return semver.AvailableBumpKinds[index-1], nil
	}

	return semver.ParseBumpKind(ctx, strings.ToLower(answer))
}

// Confirm asks a yes/no question. Empty input selects the default.
func (p *prompter) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	answer, err := p.readLine(ctx)
	if err != nil {
		return false, errors.Wrap(ctx, err, "read confirmation")
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Errorf(ctx, "unrecognized answer '%s'", answer)
	}
}

// readLine reads one trimmed line. EOF with pending input still yields the
// input, so piped answers without a trailing newline work.
func (p *prompter) readLine(ctx context.Context) (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(ctx, err, "read line")
	}
	if err == io.EOF && line == "" {
		return "", errors.Wrap(ctx, io.ErrUnexpectedEOF, "no input")
	}
	return strings.TrimSpace(line), nil
}
