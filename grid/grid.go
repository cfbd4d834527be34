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

// Package grid maps the Launchpad Pro's 10x10 logical surface to
// the linear pad indices used on the wire.
//
// Row 0 is the top control strip (pads 91-98) and row 9 the bottom
// strip (pads 1-8). Columns 0 and 9 are the side control columns.
// The four corners have no pad:
//
//	index = (9 - row) * 10 + col
package grid

import (
	"github.com/pkg/errors"

	"github.com/rakyll/launchpad-pro/sysex"
)

// Size is the number of rows and columns of the logical surface.
const Size = 10

// SideLED is the index of the LED on the front edge of the device.
// It is not part of the 10x10 surface and can only be lit by index.
const SideLED byte = 99

// Cell is a velocity color 0..127, or Blank.
type Cell int

// Blank marks a cell that is not sent to the device.
const Blank Cell = -1

var (
	// ErrDimension is returned for surfaces that are not 10x10.
	ErrDimension = errors.New("grid: surface must be 10x10")

	// ErrCorner is returned when addressing one of the four corners.
	ErrCorner = errors.New("grid: corners have no pad")
)

// Grid is a 10x10 surface, indexed [row][col].
type Grid [Size][Size]Cell

// Empty returns a surface with every pad off and blank corners.
func Empty() Grid {
	return Filled(0)
}

// Filled returns a surface with every pad set to c and blank corners.
func Filled(c Cell) Grid {
	var g Grid
	for row := range g {
		for col := range g[row] {
			if IsCorner(row, col) {
				g[row][col] = Blank
				continue
			}
			g[row][col] = c
		}
	}
	return g
}

// Unset returns a surface where every cell is Blank.
func Unset() Grid {
	return Filled(Blank)
}

// New validates rows and copies them into a Grid.
func New(rows [][]Cell) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, errors.Wrapf(ErrDimension, "got %d rows", len(rows))
	}
	for i, r := range rows {
		if len(r) != Size {
			return g, errors.Wrapf(ErrDimension, "row %d has %d columns", i, len(r))
		}
		copy(g[i][:], r)
	}
	return g, nil
}

// Rows returns the surface as a slice of rows.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, Size)
	for i := range g {
		rows[i] = append([]Cell(nil), g[i][:]...)
	}
	return rows
}

// Column returns the colors of a column ordered bottom to top, the
// order expected by column messages. Blank cells become 0.
func (g Grid) Column(col int) [Size]byte {
	var out [Size]byte
	column := Transpose(g.Rows())[col]
	for i := range column {
		out[i] = Color(column[Size-1-i])
	}
	return out
}

// Row returns the colors of a row ordered left to right. Blank
// cells become 0.
func (g Grid) Row(row int) [Size]byte {
	var out [Size]byte
	for i, c := range g[row] {
		out[i] = Color(c)
	}
	return out
}

// Color turns a cell into the byte put on the wire. Blank is sent
// as off; values outside 0..127 are passed through.
func Color(c Cell) byte {
	if c == Blank {
		return 0
	}
	return byte(c)
}

// IsCorner reports whether (row, col) is one of the four cells with
// no pad.
func IsCorner(row, col int) bool {
	return (row == 0 || row == Size-1) && (col == 0 || col == Size-1)
}

// ToPadAddress returns the pad index of (row, col).
func ToPadAddress(row, col int) (byte, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, errors.Errorf("grid: (%d, %d) is off the surface", row, col)
	}
	if IsCorner(row, col) {
		return 0, errors.Wrapf(ErrCorner, "(%d, %d)", row, col)
	}
	return byte((Size-1-row)*Size + col), nil
}

// FromPadAddress is the inverse of ToPadAddress.
func FromPadAddress(index byte) (row, col int, ok bool) {
	if index >= Size*Size {
		return 0, 0, false
	}
	row = Size - 1 - int(index)/Size
	col = int(index) % Size
	if IsCorner(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Apply scans g row by row and returns the pads to send. Corners and
// Blank cells are skipped; cells set to 0 are sent to turn pads off.
func Apply(g Grid) []sysex.Pad {
	var pads []sysex.Pad
	for row := range g {
		for col, c := range g[row] {
			if c == Blank || IsCorner(row, col) {
				continue
			}
			pads = append(pads, sysex.Pad{
				Index: byte((Size-1-row)*Size + col),
				Color: byte(c),
			})
		}
	}
	return pads
}

// Transpose swaps the rows and columns of a rectangular matrix.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	out := make([][]T, len(m[0]))
	for col := range out {
		out[col] = make([]T, len(m))
		for row := range m {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// State remembers the last surface applied through the high level
// path. Pad, row and column senders bypass it, so it is a history
// rather than a mirror of the device. It is not safe for concurrent
// use.
type State struct {
	last    Grid
	applied int
}

// NewState returns a State that starts from an empty surface.
func NewState() *State {
	return &State{last: Empty()}
}

// RecordApplied stores g as the last applied surface.
func (s *State) RecordApplied(g Grid) {
	s.last = g
	s.applied++
}

// Last returns a copy of the last applied surface.
func (s *State) Last() Grid {
	return s.last
}

// Applied returns how many surfaces have been recorded.
func (s *State) Applied() int {
	return s.applied
}
