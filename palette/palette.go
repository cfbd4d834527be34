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

// Package palette draws the 128 velocity colors of the Launchpad Pro
// as a 16x8 sheet viewed through the inner 8x8 pads, paged left and
// right with the arrow buttons of the top strip.
package palette

import (
	"github.com/pkg/errors"

	"github.com/rakyll/launchpad-pro/grid"
)

const (
	// Columns is the width of the full sheet.
	Columns = 16
	// Visible is the number of sheet columns shown at once.
	Visible = 8
	// MaxOffset is the offset of the right most page.
	MaxOffset = Columns - Visible

	// ArrowColor lights an arrow that can be used.
	ArrowColor grid.Cell = 22
)

// Pads of the arrows on the top strip.
const (
	LeftArrow  byte = 93
	RightArrow byte = 94
)

// ErrOffset is returned for offsets outside [0, MaxOffset].
var ErrOffset = errors.New("palette: offset out of range")

// Direction is a paging direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Arrow returns the pad of the arrow for d.
func (d Direction) Arrow() byte {
	if d == Left {
		return LeftArrow
	}
	return RightArrow
}

// sheet is the palette stored as 16 rows of 8 ascending colors and
// viewed column wise: sheet[row][col] = col*8 + row.
var sheet = func() [][]grid.Cell {
	rows := make([][]grid.Cell, Columns)
	for i := range rows {
		rows[i] = make([]grid.Cell, Visible)
		for j := range rows[i] {
			rows[i][j] = grid.Cell(i*Visible + j)
		}
	}
	return grid.Transpose(rows)
}()

// CanPage reports whether the page at offset can move in direction d.
func CanPage(offset int, d Direction) bool {
	next := offset + int(d)
	return next >= 0 && next <= MaxOffset
}

// Render returns the surface showing the page at offset. The lowest
// color of each sheet column is at the bottom.
func Render(offset int) (grid.Grid, error) {
	if offset < 0 || offset > MaxOffset {
		return grid.Grid{}, errors.Wrapf(ErrOffset, "%d", offset)
	}
	g := grid.Empty()
	for row := 0; row < Visible; row++ {
		for col := 0; col < Visible; col++ {
			g[grid.Size-2-row][col+1] = sheet[row][offset+col]
		}
	}
	for _, d := range []Direction{Left, Right} {
		row, col, _ := grid.FromPadAddress(d.Arrow())
		if CanPage(offset, d) {
			g[row][col] = ArrowColor
		}
	}
	return g, nil
}

// ColorAt returns the palette color shown on pad index at offset.
func ColorAt(offset int, index byte) (byte, bool) {
	if offset < 0 || offset > MaxOffset {
		return 0, false
	}
	row, col, ok := grid.FromPadAddress(index)
	if !ok || row < 1 || row > Visible || col < 1 || col > Visible {
		return 0, false
	}
	return byte(sheet[grid.Size-2-row][offset+col-1]), true
}
