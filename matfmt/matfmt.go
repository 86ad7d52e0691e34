// Package matfmt renders matrices as fixed-width scientific-notation text,
// the layout used throughout the course sheets.
package matfmt

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// cellWidth is the printed width of one column: a %10.3e cell plus one
// separating space.
const cellWidth = 11

// Option adjusts the rendered layout.
type Option func(*config)

type config struct {
	rowLabels bool
	colLabels bool
}

// WithRowLabels prefixes each row with its index gutter (" i = 0 | ", "    1 | ", ...).
func WithRowLabels() Option {
	return func(c *config) { c.rowLabels = true }
}

// WithColLabels adds a column-index header row and a separator line.
func WithColLabels() Option {
	return func(c *config) { c.colLabels = true }
}

// Format renders m row by row with %10.3e cells, each followed by a single
// space. Rows are separated by newlines; there is no trailing newline.
// A nil or zero-sized matrix renders as the empty string.
func Format(m mat.Matrix, opts ...Option) string {
	if m == nil {
		return ""
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ""
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	if cfg.colLabels {
		b.WriteString(" [i,j] | ")
		b.WriteString("     j = 0 ")
		for j := 1; j < c; j++ {
			fmt.Fprintf(&b, "%10d ", j)
		}
		b.WriteByte('\n')
		b.WriteString("-------|-")
		b.WriteString(strings.Repeat("-", cellWidth*c))
		b.WriteByte('\n')
	}

	for i := 0; i < r; i++ {
		if cfg.rowLabels {
			if i == 0 {
				b.WriteString(" i = 0 | ")
			} else {
				fmt.Fprintf(&b, "%6d | ", i)
			}
		}
		for j := 0; j < c; j++ {
			fmt.Fprintf(&b, "%10.3e ", m.At(i, j))
		}
		if i < r-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
