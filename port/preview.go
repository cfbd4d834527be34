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

package port

import (
	"io"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/sysex"
)

// Preview is a Sender that keeps a model of the surface and draws it
// in a terminal. Palette colors are approximated.
type Preview struct {
	w io.Writer

	mu    sync.Mutex
	cells [grid.Size][grid.Size]colorful.Color
}

// NewPreview returns a Preview drawing to w after every message. A nil
// w only keeps the model.
func NewPreview(w io.Writer) *Preview {
	return &Preview{w: w}
}

// Send implements Sender.
func (p *Preview) Send(msg []byte) error {
	p.mu.Lock()
	p.apply(msg)
	out := p.render()
	p.mu.Unlock()
	if p.w == nil {
		return nil
	}
	_, err := io.WriteString(p.w, "\x1b[H"+out+"\n")
	return err
}

// Listen implements Listener. A preview has no input.
func (p *Preview) Listen(Handler) (func(), error) {
	return func() {}, nil
}

// Close implements Port.
func (p *Preview) Close() error { return nil }

// Hex returns the color shown on the pad at row, col.
func (p *Preview) Hex(row, col int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cells[row][col].Hex()
}

// Render draws the surface, top row first.
func (p *Preview) Render() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.render()
}

func (p *Preview) render() string {
	lines := make([]string, 0, grid.Size)
	for row := 0; row < grid.Size; row++ {
		var line strings.Builder
		for col := 0; col < grid.Size; col++ {
			if col > 0 {
				line.WriteString(" ")
			}
			if grid.IsCorner(row, col) {
				line.WriteString(" ")
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.cells[row][col].Hex()))
			line.WriteString(style.Render("■"))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (p *Preview) apply(msg []byte) {
	if len(msg) == 3 && msg[0]&0xf0 == 0x90 {
		p.set(msg[1], PaletteColor(msg[2]))
		return
	}
	t, payload, ok := sysex.Parse(msg)
	if !ok {
		return
	}
	switch t {
	case sysex.TypePadColor, sysex.TypePadFlash, sysex.TypePadPulse:
		for i := 0; i+1 < len(payload); i += 2 {
			p.set(payload[i], PaletteColor(payload[i+1]))
		}
	case sysex.TypePadRGB:
		for i := 0; i+3 < len(payload); i += 4 {
			p.set(payload[i], rgb(payload[i+1], payload[i+2], payload[i+3]))
		}
	case sysex.TypeColColor:
		if len(payload) != grid.Size+1 || payload[0] >= grid.Size {
			return
		}
		col := int(payload[0])
		for i, c := range payload[1:] {
			p.cells[grid.Size-1-i][col] = PaletteColor(c)
		}
	case sysex.TypeRowColor:
		if len(payload) != grid.Size+1 || payload[0] >= grid.Size {
			return
		}
		row := grid.Size - 1 - int(payload[0])
		for i, c := range payload[1:] {
			p.cells[row][i] = PaletteColor(c)
		}
	case sysex.TypeGridColor:
		if len(payload) == 1 {
			p.fill(PaletteColor(payload[0]), false)
		}
	case sysex.TypeGridRGB:
		if len(payload) == 4 {
			p.fill(rgb(payload[1], payload[2], payload[3]), payload[0] == 1)
		}
	}
}

func (p *Preview) set(index byte, c colorful.Color) {
	if row, col, ok := grid.FromPadAddress(index); ok {
		p.cells[row][col] = c
	}
}

func (p *Preview) fill(c colorful.Color, inner bool) {
	for row := range p.cells {
		for col := range p.cells[row] {
			if inner && (row == 0 || row == grid.Size-1 || col == 0 || col == grid.Size-1) {
				continue
			}
			p.cells[row][col] = c
		}
	}
}

func rgb(r, g, b byte) colorful.Color {
	return colorful.Color{R: float64(r) / 63, G: float64(g) / 63, B: float64(b) / 63}
}

// PaletteColor approximates a palette color. 0 is off, 1 to 3 are
// greys and the rest walk the hue circle in groups of four shades.
func PaletteColor(c byte) colorful.Color {
	switch {
	case c == 0:
		return colorful.Color{}
	case c < 4:
		v := float64(c) / 3
		return colorful.Color{R: v, G: v, B: v}
	}
	n := int(c) - 4
	hue := math.Mod(float64(n/4)*360/14, 360)
	value := []float64{1, 0.85, 0.55, 0.3}[n%4]
	return colorful.Hsv(hue, 1, value)
}

var _ Port = (*Preview)(nil)
