// SPDX-License-Identifier: MIT
//
// Package progress renders advisory progress for long trial loops.
// Output never influences results; a Reporter may be dropped at any time.
package progress

import (
	"fmt"
	"io"
	"strings"
)

// Reporter receives progress as a fraction of work done.
type Reporter interface {
	// Begin starts a run of total steps under label.
	Begin(label string, total int)
	// Step reports that done of total steps have completed.
	Step(done int)
	// End finishes the run.
	End()
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Begin(string, int) {}
func (Nop) Step(int)          {}
func (Nop) End()              {}

// DefaultWidth is the bar width used when NewBar is given width ≤ 0.
const DefaultWidth = 40

// Bar redraws a single terminal line:
//
//	label: [#########               ] 37%
//
// Redraws happen only when the percentage changes.
type Bar struct {
	w     io.Writer
	width int
	fill  string

	label   string
	total   int
	percent int
}

// NewBar returns a Bar writing to w. Panics on nil w.
func NewBar(w io.Writer, width int) *Bar {
	if w == nil {
		panic("progress: NewBar(nil writer)")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	return &Bar{w: w, width: width, fill: "#", percent: -1}
}

func (b *Bar) Begin(label string, total int) {
	b.label, b.total, b.percent = label, total, -1
	b.Step(0)
}

func (b *Bar) Step(done int) {
	p := 100
	if b.total > 0 {
		p = done * 100 / b.total
	}
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	if p == b.percent {
		return
	}
	b.percent = p

	filled := b.width * p / 100
	bar := strings.Repeat(b.fill, filled) + strings.Repeat(" ", b.width-filled)
	fmt.Fprintf(b.w, "\r%s: [%s] %d%%", b.label, bar, p)
}

func (b *Bar) End() {
	b.Step(b.total)
	fmt.Fprintln(b.w)
}
