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

// Package glyph holds the bitmap font used to scroll text across the
// pad grid. Every glyph is 8 rows tall; widths vary per character
// and include the spacing column(s).
package glyph

import "strings"

// Height is the number of rows of every glyph.
const Height = 8

// Bitmap is one glyph, top row first. A '#' is a lit pixel.
type Bitmap [Height]string

// Width returns the number of columns of b.
func (b Bitmap) Width() int {
	return len(b[0])
}

// Column returns column i of b, top to bottom.
func (b Bitmap) Column(i int) [Height]bool {
	var col [Height]bool
	for row := range b {
		col[row] = b[row][i] == '#'
	}
	return col
}

// Lookup returns the glyph for r.
func Lookup(r rune) (Bitmap, bool) {
	b, ok := table[r]
	return b, ok
}

// Supported reports whether r has a glyph.
func Supported(r rune) bool {
	_, ok := table[r]
	return ok
}

// Filter drops the runes of s that have no glyph.
func Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if Supported(r) {
			return r
		}
		return -1
	}, s)
}

var table = map[rune]Bitmap{
	'A': {
		"...#...",
		"...#...",
		"..#.#..",
		"..#.#..",
		"..###..",
		".#...#.",
		".#...#.",
		".......",
	},
	'a': {
		".......",
		".......",
		"..###..",
		".....#.",
		"..####.",
		".#...#.",
		"..####.",
		".......",
	},
	'B': {
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".......",
	},
	'b': {
		".#.....",
		".#.....",
		".#.....",
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".......",
	},
	'C': {
		"..###..",
		".#...#.",
		".#.....",
		".#.....",
		".#.....",
		".#...#.",
		"..###..",
		".......",
	},
	'c': {
		".......",
		".......",
		"..####.",
		".#.....",
		".#.....",
		".#.....",
		"..####.",
		".......",
	},
	'D': {
		".###...",
		".#..#..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#..#..",
		".###...",
		".......",
	},
	'd': {
		".....#.",
		".....#.",
		"..####.",
		".#...#.",
		".#...#.",
		".#...#.",
		"..####.",
		".......",
	},
	'E': {
		".#####.",
		".#.....",
		".#.....",
		".####..",
		".#.....",
		".#.....",
		".#####.",
		".......",
	},
	'e': {
		".......",
		".......",
		"..###..",
		".#...#.",
		".#####.",
		".#.....",
		"..####.",
		".......",
	},
	'F': {
		".#####.",
		".#.....",
		".#.....",
		".####..",
		".#.....",
		".#.....",
		".#.....",
		".......",
	},
	'f': {
		"...##.",
		"..#...",
		"..#...",
		".####.",
		"..#...",
		"..#...",
		"..#...",
		"......",
	},
	'G': {
		"..####.",
		".#.....",
		".#.....",
		".#..##.",
		".#...#.",
		".#...#.",
		"..####.",
		".......",
	},
	'g': {
		".......",
		".......",
		"..####.",
		".#...#.",
		".#...#.",
		"..####.",
		".....#.",
		"..###..",
	},
	'H': {
		".#...#.",
		".#...#.",
		".#...#.",
		".#####.",
		".#...#.",
		".#...#.",
		".#...#.",
		".......",
	},
	'h': {
		".#.....",
		".#.....",
		".####..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".......",
	},
	'I': {
		".###.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
		".....",
	},
	'i': {
		".#..",
		"....",
		".#..",
		".#..",
		".#..",
		".#..",
		"..#.",
		"....",
	},
	'J': {
		"...##.",
		"....#.",
		"....#.",
		"....#.",
		"....#.",
		".#..#.",
		"..##..",
		"......",
	},
	'j': {
		"...#.",
		".....",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		".#.#.",
		"..#..",
	},
	'K': {
		".#...#.",
		".#..#..",
		".#.#...",
		".##....",
		".#.#...",
		".#..#..",
		".#...#.",
		".......",
	},
	'k': {
		".#....",
		".#....",
		".#..#.",
		".#.#..",
		".##...",
		".#.#..",
		".#..#.",
		"......",
	},
	'L': {
		".#.....",
		".#.....",
		".#.....",
		".#.....",
		".#.....",
		".#.....",
		".#####.",
		".......",
	},
	'l': {
		".#..",
		".#..",
		".#..",
		".#..",
		".#..",
		".#..",
		"..#.",
		"....",
	},
	'M': {
		".#...#.",
		".##.##.",
		".#.#.#.",
		".#.#.#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".......",
	},
	'm': {
		".......",
		".......",
		".##.#..",
		".#.#.#.",
		".#.#.#.",
		".#.#.#.",
		".#.#.#.",
		".......",
	},
	'N': {
		".#...#.",
		".##..#.",
		".##..#.",
		".#.#.#.",
		".#..##.",
		".#..##.",
		".#...#.",
		".......",
	},
	'n': {
		".......",
		".......",
		".####..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".......",
	},
	'O': {
		"..###..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'o': {
		".......",
		".......",
		"..###..",
		".#...#.",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'P': {
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".#.....",
		".#.....",
		".#.....",
		".......",
	},
	'p': {
		".......",
		".......",
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".#.....",
		".#.....",
	},
	'Q': {
		"..###..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#.#.#.",
		".#..#..",
		"..##.#.",
		".......",
	},
	'q': {
		".......",
		".......",
		"..####.",
		".#...#.",
		".#...#.",
		".#..##.",
		"..##.#.",
		".....#.",
	},
	'R': {
		".####..",
		".#...#.",
		".#...#.",
		".####..",
		".#.#...",
		".#..#..",
		".#...#.",
		".......",
	},
	'r': {
		"......",
		"......",
		".#.##.",
		".##...",
		".#....",
		".#....",
		".#....",
		"......",
	},
	'S': {
		"..###..",
		".#...#.",
		".##....",
		"..###..",
		".....#.",
		".#...#.",
		"..###..",
		".......",
	},
	's': {
		".......",
		".......",
		"..####.",
		".#.....",
		"..###..",
		".....#.",
		".####..",
		".......",
	},
	'T': {
		".#####.",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		".......",
	},
	't': {
		".....",
		"..#..",
		".###.",
		"..#..",
		"..#..",
		"..#..",
		"...#.",
		".....",
	},
	'U': {
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'u': {
		".......",
		".......",
		".#...#.",
		".#...#.",
		".#...#.",
		".#..##.",
		"..##.#.",
		".......",
	},
	'V': {
		".#...#.",
		".#...#.",
		".#...#.",
		"..#.#..",
		"..#.#..",
		"...#...",
		"...#...",
		".......",
	},
	'v': {
		".......",
		".......",
		".#...#.",
		".#...#.",
		"..#.#..",
		"..#.#..",
		"...#...",
		".......",
	},
	'W': {
		".#...#.",
		".#...#.",
		".#.#.#.",
		".#.#.#.",
		"..#.#..",
		"..#.#..",
		"..#.#..",
		".......",
	},
	'w': {
		".......",
		".......",
		".#.#.#.",
		".#.#.#.",
		".#.#.#.",
		"..#.#..",
		"..#.#..",
		".......",
	},
	'X': {
		".#...#.",
		".#...#.",
		"..#.#..",
		"...#...",
		"..#.#..",
		".#...#.",
		".#...#.",
		".......",
	},
	'x': {
		".......",
		".......",
		".#...#.",
		"..#.#..",
		"...#...",
		"..#.#..",
		".#...#.",
		".......",
	},
	'Y': {
		".#...#.",
		".#...#.",
		"..#.#..",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		".......",
	},
	'y': {
		".......",
		".......",
		".#...#.",
		".#...#.",
		".#...#.",
		"..####.",
		".....#.",
		"..###..",
	},
	'Z': {
		".#####.",
		".....#.",
		"....#..",
		"...#...",
		"..#....",
		".#.....",
		".#####.",
		".......",
	},
	'z': {
		".......",
		".......",
		".#####.",
		"....#..",
		"...#...",
		"..#....",
		".#####.",
		".......",
	},
	'0': {
		"..###..",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'1': {
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
		".....",
	},
	'2': {
		"..###..",
		".#...#.",
		".....#.",
		"..###..",
		".#.....",
		".#.....",
		".#####.",
		".......",
	},
	'3': {
		"..###..",
		".#...#.",
		".....#.",
		"...##..",
		".....#.",
		".#...#.",
		"..###..",
		".......",
	},
	'4': {
		"....#..",
		"...##..",
		"..#.#..",
		".#..#..",
		".#####.",
		"....#..",
		"....#..",
		".......",
	},
	'5': {
		".#####.",
		".#.....",
		".####..",
		".....#.",
		".....#.",
		".#...#.",
		"..###..",
		".......",
	},
	'6': {
		"..###..",
		".#...#.",
		".#.....",
		".####..",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'7': {
		".#####.",
		".....#.",
		"....#..",
		"...#...",
		"...#...",
		"..#....",
		"..#....",
		".......",
	},
	'8': {
		"..###..",
		".#...#.",
		".#...#.",
		"..###..",
		".#...#.",
		".#...#.",
		"..###..",
		".......",
	},
	'9': {
		"..###..",
		".#...#.",
		".#...#.",
		"..####.",
		".....#.",
		".#...#.",
		"..###..",
		".......",
	},
	'!': {
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
		"...",
		".#.",
		".#.",
	},
	'@': {
		"..###..",
		".#...#.",
		".#..##.",
		".#.#.#.",
		".#..##.",
		".#.....",
		"..###..",
		".......",
	},
	'#': {
		"..#.#..",
		"..#.#..",
		".#####.",
		"..#.#..",
		".#####.",
		"..#.#..",
		"..#.#..",
		".......",
	},
	'$': {
		"...#...",
		"..####.",
		".#.#...",
		"..###..",
		"...#.#.",
		".####..",
		"...#...",
		".......",
	},
	'%': {
		".##....",
		".##..#.",
		"....#..",
		"...#...",
		"..#....",
		".#..##.",
		"....##.",
		".......",
	},
	'^': {
		"...#...",
		"..#.#..",
		".#...#.",
		".......",
		".......",
		".......",
		".......",
		".......",
	},
	'&': {
		"..##...",
		".#..#..",
		".#..#..",
		"..##...",
		".#..##.",
		".#..#..",
		"..##.#.",
		".......",
	},
	'*': {
		".......",
		"...#...",
		".#####.",
		"..###..",
		".#####.",
		"...#...",
		".......",
		".......",
	},
	'(': {
		"..#.",
		".#..",
		".#..",
		".#..",
		".#..",
		".#..",
		"..#.",
		"....",
	},
	')': {
		".#..",
		"..#.",
		"..#.",
		"..#.",
		"..#.",
		"..#.",
		".#..",
		"....",
	},
	'_': {
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".#####.",
		".......",
	},
	'-': {
		"......",
		"......",
		"......",
		".####.",
		"......",
		"......",
		"......",
		"......",
	},
	'+': {
		".......",
		"...#...",
		"...#...",
		".#####.",
		"...#...",
		"...#...",
		".......",
		".......",
	},
	'=': {
		"......",
		"......",
		".####.",
		"......",
		".####.",
		"......",
		"......",
		"......",
	},
	'[': {
		".###.",
		".#...",
		".#...",
		".#...",
		".#...",
		".#...",
		".###.",
		".....",
	},
	'{': {
		"...#.",
		"..#..",
		"..#..",
		".#...",
		"..#..",
		"..#..",
		"...#.",
		".....",
	},
	']': {
		".###.",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		".###.",
		".....",
	},
	'}': {
		".#...",
		"..#..",
		"..#..",
		"...#.",
		"..#..",
		"..#..",
		".#...",
		".....",
	},
	';': {
		"......",
		"......",
		".##...",
		".##...",
		"......",
		".##...",
		"..#...",
		".#....",
	},
	':': {
		"......",
		"......",
		".##...",
		".##...",
		"......",
		".##...",
		".##...",
		"......",
	},
	'\'': {
		"..#.",
		"..#.",
		".#..",
		"....",
		"....",
		"....",
		"....",
		"....",
	},
	'"': {
		".#.#.",
		".#.#.",
		".#.#.",
		".....",
		".....",
		".....",
		".....",
		".....",
	},
	'<': {
		"....#.",
		"...#..",
		"..#...",
		".#....",
		"..#...",
		"...#..",
		"....#.",
		"......",
	},
	'>': {
		".#....",
		"..#...",
		"...#..",
		"....#.",
		"...#..",
		"..#...",
		".#....",
		"......",
	},
	'.': {
		"......",
		"......",
		"......",
		"......",
		"......",
		".##...",
		".##...",
		"......",
	},
	',': {
		"......",
		"......",
		"......",
		"......",
		"......",
		".##...",
		"..#...",
		".#....",
	},
	'?': {
		"..###..",
		".#...#.",
		".....#.",
		"....#..",
		"...#...",
		".......",
		"...#...",
		".......",
	},
	'/': {
		".......",
		".....#.",
		"....#..",
		"...#...",
		"..#....",
		".#.....",
		".......",
		".......",
	},
	'|': {
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
	},
	'\\': {
		".......",
		".#.....",
		"..#....",
		"...#...",
		"....#..",
		".....#.",
		".......",
		".......",
	},
	' ': {
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
	},
}
