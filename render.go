// SPDX-License-Identifier: MIT

// Package densemat - textual grid renderer.

package densemat

import (
	"fmt"
	"strings"
)

// Formatting literals.
const (
	_fmtLead     = "\n"
	_fmtRowOpen  = "[ "
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// String renders the matrix as a human-readable grid: a leading
// newline, then one "[ v1 v2 ... vn ]" line per row. Every value is
// right-aligned to the width of the longest stringified element across
// the ENTIRE matrix, not per column. Read-only; intended for logs and
// debugging, not hot paths. An unfilled or zero-area matrix renders as
// just the leading newline.
// Complexity: O(rows×cols) time and space for formatting.
func (m *Matrix[T]) String() string {
	// Stringify once, tracking the global maximum width.
	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		cells[i] = fmt.Sprint(v)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	b.WriteString(_fmtLead)
	if m.c < 1 {
		return b.String()
	}
	for start := 0; start+m.c <= len(cells); start += m.c {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%*s", width, cells[start+j]))
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
