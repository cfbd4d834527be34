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

package launchpad

import (
	"context"
	"time"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/palette"
	"github.com/rakyll/launchpad-pro/sysex"
)

// InvalidFlashStep is the interval between the blinks that signal a
// press with no effect.
const InvalidFlashStep = 100 * time.Millisecond

// PaletteState is the on-device color picker. Saved is set exactly
// while the palette is open. Closing turns off the pads Saved leaves
// blank.
type PaletteState struct {
	Open          bool
	SelectedColor byte
	ColumnOffset  int
	Saved         *grid.Grid
}

// Palette returns a copy of the palette state.
func (l *Launchpad) Palette() PaletteState {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.palette
	if p.Saved != nil {
		saved := *p.Saved
		p.Saved = &saved
	}
	return p
}

// Listen decodes and handles inbound messages until ctx is done.
func (l *Launchpad) Listen(ctx context.Context) error {
	if l.in == nil {
		return ErrNoPort
	}
	stop, err := l.in.Listen(func(msg []byte) {
		l.HandleEvent(sysex.Decode(msg))
	})
	if err != nil {
		return err
	}
	<-ctx.Done()
	stop()
	return ctx.Err()
}

// HandleEvent applies one inbound event. Events are handled one at a
// time; hooks run after the state has been updated.
func (l *Launchpad) HandleEvent(ev sysex.Event) {
	var hooks []func()
	l.mu.Lock()
	switch e := ev.(type) {
	case sysex.ControlOn:
		l.controlOn(e.Control)
	case sysex.ControlOff:
		l.controlOff(e.Control)
	case sysex.NoteOn:
		l.noteOn(e.Note)
	case sysex.LayoutEcho:
		l.layout = e.Layout
		l.log.WithField("layout", e.Layout).Info("launchpad: layout set")
	case sysex.LayoutStatus:
		l.layout = e.Layout
		l.log.WithField("layout", e.Layout).Info("launchpad: layout reported")
	case sysex.ModeStatus:
		l.mode = e.Mode
		l.log.WithField("mode", e.Mode).Info("launchpad: mode reported")
	case sysex.ScrollEnd:
		if l.onScrollEnd != nil {
			hooks = append(hooks, l.onScrollEnd)
		}
	default:
		l.log.WithField("event", ev).Debug("launchpad: ignoring event")
	}
	l.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	if l.onEvent != nil {
		l.onEvent(ev)
	}
}

func (l *Launchpad) controlOn(control byte) {
	if control == l.toggle {
		if l.palette.Open {
			l.closePalette()
		} else {
			l.openPalette()
			l.pressedAt = l.now()
		}
		return
	}
	if !l.palette.Open {
		return
	}
	switch control {
	case palette.Left.Arrow():
		l.page(palette.Left)
	case palette.Right.Arrow():
		l.page(palette.Right)
	default:
		l.invalidFlash(control)
	}
}

func (l *Launchpad) controlOff(control byte) {
	if control != l.toggle {
		return
	}
	pressedAt := l.pressedAt
	l.pressedAt = time.Time{}
	if !l.palette.Open || pressedAt.IsZero() {
		return
	}
	if l.now().Sub(pressedAt) > l.holdThreshold {
		l.closePalette()
	}
}

func (l *Launchpad) noteOn(note byte) {
	if !l.palette.Open {
		return
	}
	color, ok := palette.ColorAt(l.palette.ColumnOffset, note)
	if !ok {
		return
	}
	l.palette.SelectedColor = color
	l.log.WithField("color", color).Info("launchpad: color selected")
	l.logErr(l.Flash(sysex.Pad{Index: l.toggle, Color: color}), "marking selected color")
}

func (l *Launchpad) openPalette() {
	saved := l.state.Last()
	l.palette.Open = true
	l.palette.Saved = &saved
	l.showPalette()
	l.log.WithField("offset", l.palette.ColumnOffset).Debug("launchpad: palette open")
}

func (l *Launchpad) closePalette() {
	saved := l.palette.Saved
	l.palette.Open = false
	l.palette.Saved = nil
	if saved != nil {
		// Blank cells are not sent, so clear what the palette lit there.
		if hasBlank(*saved) {
			l.logErr(l.send(sysex.Fill(0)), "clearing palette")
		}
		l.logErr(l.applyGrid(*saved), "restoring surface")
	}
	l.logErr(l.SetPad(l.toggle, 0), "clearing palette toggle")
	l.log.Debug("launchpad: palette closed")
}

func hasBlank(g grid.Grid) bool {
	for row := range g {
		for col, c := range g[row] {
			if c == grid.Blank && !grid.IsCorner(row, col) {
				return true
			}
		}
	}
	return false
}

func (l *Launchpad) page(d palette.Direction) {
	if !palette.CanPage(l.palette.ColumnOffset, d) {
		l.invalidFlash(d.Arrow())
		return
	}
	l.palette.ColumnOffset += int(d)
	l.showPalette()
}

func (l *Launchpad) showPalette() {
	g, err := palette.Render(l.palette.ColumnOffset)
	if err != nil {
		l.logErr(err, "rendering palette")
		return
	}
	l.logErr(l.applyGrid(g), "showing palette")
	l.logErr(l.Flash(sysex.Pad{Index: l.toggle, Color: l.validColor}), "marking palette toggle")
}

// invalidFlash blinks the pad at index and puts back the color the
// recorded surface has there.
func (l *Launchpad) invalidFlash(index byte) {
	var restore byte
	if row, col, ok := grid.FromPadAddress(index); ok {
		restore = grid.Color(l.state.Last()[row][col])
	}
	inv := l.invalidColor
	l.ColorCycle(index, []byte{inv, 0, inv, 0, inv, restore}, InvalidFlashStep, false)
}

func (l *Launchpad) logErr(err error, what string) {
	if err != nil {
		l.log.WithError(err).Error("launchpad: " + what)
	}
}
