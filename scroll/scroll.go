// Copyright 2013 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scroll turns text into a schedule of column messages that
// scroll it right to left across the Launchpad Pro.
//
// The whole animation is computed up front; nothing here sends or
// waits. Column i of the rendered text enters at the right edge at
// i*Delay and moves one column left every Delay until it settles.
package scroll

import (
	"strings"
	"time"

	"github.com/rakyll/launchpad-pro/glyph"
	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/schedule"
	"github.com/rakyll/launchpad-pro/sysex"
)

// Defaults used for zero options.
const (
	DefaultText  = "Hello World!"
	DefaultDelay = 100 * time.Millisecond
	DefaultColor = 64
)

// maxTravel is how far a column can move: from the right edge to the
// left edge of the surface.
const maxTravel = grid.Size - 1

// Trailing blank columns appended so the text leaves the surface
// before the restore step.
const (
	punctuationPadding = 7
	letterPadding      = 9
)

// CycleMode selects how the color changes along the text.
type CycleMode int

const (
	// CycleAll advances the color on every column with a lit pixel.
	CycleAll CycleMode = iota
	// CycleNone keeps the starting color.
	CycleNone
)

// Options control one scroll.
type Options struct {
	Delay    time.Duration // per column step
	Color    byte          // starting color
	Cycle    CycleMode
	Loop     int           // remaining repeats, 0 scrolls once
	StartsAt time.Duration // offset of the first column

	// PreserveContent restores the surface that was shown before the
	// scroll instead of leaving it blank.
	PreserveContent bool

	// RevealContent draws the restored surface column by column from
	// the left instead of all at once.
	RevealContent bool
}

func (o Options) withDefaults() Options {
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.Color == 0 {
		o.Color = DefaultColor
	}
	return o
}

// Job is one scroll, ready to be dispatched.
type Job struct {
	Text     string
	Width    int
	Duration time.Duration
	Schedule *schedule.Schedule
	Options  Options
}

// Next returns the options of the following pass and whether there is
// one. The next pass is meant to be started at Duration, so its own
// StartsAt is zero.
func (j *Job) Next() (Options, bool) {
	if j.Options.Loop <= 0 {
		return Options{}, false
	}
	next := j.Options
	next.Loop--
	next.StartsAt = 0
	return next, true
}

// Render concatenates the glyphs of text into columns, dropping the
// characters without a glyph.
func Render(text string) [][glyph.Height]bool {
	var cols [][glyph.Height]bool
	for _, r := range text {
		b, ok := glyph.Lookup(r)
		if !ok {
			continue
		}
		for i := 0; i < b.Width(); i++ {
			cols = append(cols, b.Column(i))
		}
	}
	return cols
}

// Padding returns how many blank columns follow text.
func Padding(text string) int {
	if text != "" && strings.ContainsAny(text[len(text)-1:], ":;., ") {
		return punctuationPadding
	}
	return letterPadding
}

// Travel returns how many columns column i of a message width columns
// wide moves before the animation ends.
func Travel(i, width int) int {
	return min(maxTravel, width-1-i)
}

// NextColor advances a cycling color, staying within [2, 127].
func NextColor(c byte) byte {
	return (c+1)%126 + 2
}

// Build computes the complete schedule for text. saved is the surface
// that was shown before the scroll; it is restored when
// PreserveContent is set.
func Build(text string, opts Options, saved grid.Grid) *Job {
	opts = opts.withDefaults()
	if text == "" {
		text = DefaultText
	}
	text = glyph.Filter(text)

	cols := Render(text)
	if !opts.RevealContent {
		cols = append(cols, make([][glyph.Height]bool, Padding(text))...)
	}
	width := len(cols)

	s := schedule.New()
	color := opts.Color
	for i, pixels := range cols {
		if opts.Cycle == CycleAll && lit(pixels) {
			color = NextColor(color)
		}
		msg := sysex.Column(0, columnColors(pixels, color))
		for k := 0; k <= Travel(i, width); k++ {
			at := opts.StartsAt + opts.Delay*time.Duration(i+k)
			s.Add(at, withIndex(msg, byte(maxTravel-k)))
		}
	}

	target := grid.Empty()
	if opts.PreserveContent {
		target = saved
	}

	end := opts.StartsAt
	if width > 0 {
		end += opts.Delay * time.Duration(width-1)
	}
	var total time.Duration
	switch {
	case opts.RevealContent:
		for col := 0; col < grid.Size; col++ {
			s.Add(end+opts.Delay*time.Duration(col+1), sysex.Column(byte(col), target.Column(col)))
		}
		total = end + opts.Delay*(grid.Size+1)
	case opts.Loop == 0:
		if pads := grid.Apply(target); len(pads) > 0 {
			s.Add(end+opts.Delay, sysex.PadColors(pads...))
		}
		total = end + 2*opts.Delay
	default:
		total = end + opts.Delay
	}

	return &Job{
		Text:     text,
		Width:    width,
		Duration: total,
		Schedule: s,
		Options:  opts,
	}
}

func lit(pixels [glyph.Height]bool) bool {
	for _, p := range pixels {
		if p {
			return true
		}
	}
	return false
}

// columnColors flips a glyph column to bottom to top and pads it to
// the height of the surface.
func columnColors(pixels [glyph.Height]bool, color byte) [grid.Size]byte {
	var out [grid.Size]byte
	pad := (grid.Size - glyph.Height) / 2
	for row, on := range pixels {
		if on {
			out[pad+glyph.Height-1-row] = color
		}
	}
	return out
}

// withIndex copies a column frame and sets its column index.
func withIndex(msg []byte, index byte) []byte {
	out := append([]byte(nil), msg...)
	out[len(sysex.Header)+1] = index
	return out
}
