// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"fmt"
	"strings"
)

// Formatter formats status for display.
//
//counterfeiter:generate -o ../../mocks/status-formatter.go --fake-name StatusFormatter . Formatter
type Formatter interface {
	Format(st *Status) string
}

// formatter implements Formatter.
type formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() Formatter {
	return &formatter{}
}

// Format formats status in human-readable format.
func (f *formatter) Format(st *Status) string {
	var b strings.Builder

	b.WriteString("Taggr Status\n")
	b.WriteString(fmt.Sprintf("  Branch:      %s\n", st.Branch))

	if st.Untagged {
		b.WriteString("  Latest tag:  none\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  Latest tag:  %s\n", st.LatestTag))
	b.WriteString(fmt.Sprintf("  Version:     %d.%d.%d\n", st.Major, st.Minor, st.Patch))
	b.WriteString(fmt.Sprintf("  Next major:  %s\n", st.NextMajor))
	b.WriteString(fmt.Sprintf("  Next minor:  %s\n", st.NextMinor))
	b.WriteString(fmt.Sprintf("  Next patch:  %s\n", st.NextPatch))

	return b.String()
}
