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
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/schedule"
	"github.com/rakyll/launchpad-pro/sysex"
)

// ClearDelay separates the scroll stop from the blanking frame when
// AllOff is delayed.
const ClearDelay = 50 * time.Millisecond

// SetPad lights the pad at index with a palette color.
func (l *Launchpad) SetPad(index, color byte) error {
	return l.send(sysex.PadColors(sysex.Pad{Index: index, Color: color}))
}

// SetPads lights several pads with a single message.
func (l *Launchpad) SetPads(pads ...sysex.Pad) error {
	if len(pads) == 0 {
		return nil
	}
	return l.send(sysex.PadColors(pads...))
}

// Flash makes pads blink between their color and off.
func (l *Launchpad) Flash(pads ...sysex.Pad) error {
	if len(pads) == 0 {
		return nil
	}
	return l.send(sysex.Flash(pads...))
}

// Pulse makes pads fade in and out.
func (l *Launchpad) Pulse(pads ...sysex.Pad) error {
	if len(pads) == 0 {
		return nil
	}
	return l.send(sysex.Pulse(pads...))
}

// SetPadRGB lights pads with 6-bit RGB components.
func (l *Launchpad) SetPadRGB(pads ...sysex.RGB) error {
	if len(pads) == 0 {
		return nil
	}
	return l.send(sysex.PadRGBs(pads...))
}

// SetGridRGB fills the surface with one RGB color. mode 0 covers the
// whole 10x10 surface, 1 only the inner 8x8 pads.
func (l *Launchpad) SetGridRGB(mode, r, g, b byte) error {
	return l.send(sysex.FillRGB(mode, r, g, b))
}

// SetRow lights a row from left to right. The device numbers rows
// from the bottom strip, so index 0 is grid row 9. Blank cells are
// sent as off.
func (l *Launchpad) SetRow(index int, cells [grid.Size]grid.Cell) error {
	if index < 0 || index >= grid.Size {
		return errors.Wrapf(grid.ErrDimension, "launchpad: row %d", index)
	}
	return l.send(sysex.Row(byte(index), normalize(cells)))
}

// SetColumn lights the column at index (0 is the left strip) from
// bottom to top. Blank cells are sent as off.
func (l *Launchpad) SetColumn(index int, cells [grid.Size]grid.Cell) error {
	if index < 0 || index >= grid.Size {
		return errors.Wrapf(grid.ErrDimension, "launchpad: column %d", index)
	}
	return l.send(sysex.Column(byte(index), normalize(cells)))
}

func normalize(cells [grid.Size]grid.Cell) [grid.Size]byte {
	var out [grid.Size]byte
	for i, c := range cells {
		out[i] = grid.Color(c)
	}
	return out
}

// SetAllColor fills every pad with color and records the filled
// surface as the last applied one.
func (l *Launchpad) SetAllColor(color byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.send(sysex.Fill(color)); err != nil {
		return err
	}
	l.state.RecordApplied(grid.Filled(grid.Cell(color)))
	return nil
}

// AllOff stops any firmware scroll and turns every pad off, after
// delay. The recorded surface is left alone.
func (l *Launchpad) AllOff(delay time.Duration) error {
	if delay <= 0 {
		if err := l.StopScroll(); err != nil {
			return err
		}
		return l.send(sysex.Fill(0))
	}
	s := schedule.New()
	s.Add(delay, sysex.StopScroll())
	s.Add(delay+ClearDelay, sysex.Fill(0))
	l.dispatcher.Dispatch(s)
	return nil
}

// ApplyGrid sends every addressable cell of g that is not Blank in a
// single message and records g as the last applied surface.
func (l *Launchpad) ApplyGrid(g grid.Grid) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyGrid(g)
}

func (l *Launchpad) applyGrid(g grid.Grid) error {
	if err := l.SetPads(grid.Apply(g)...); err != nil {
		return err
	}
	l.state.RecordApplied(g)
	return nil
}

// ApplyRows is ApplyGrid for a surface given as rows. Anything other
// than 10 rows of 10 cells is reported and nothing is sent.
func (l *Launchpad) ApplyRows(rows [][]grid.Cell) error {
	g, err := grid.New(rows)
	if err != nil {
		l.log.WithError(err).Error("launchpad: rejected surface")
		return err
	}
	return l.ApplyGrid(g)
}

// ColorCycle lights the pad at index with each of colors in turn,
// step apart. With offAtEnd the pad is turned off one step after the
// last color, unless that color already is off. No colors, no frames.
func (l *Launchpad) ColorCycle(index byte, colors []byte, step time.Duration, offAtEnd bool) {
	if len(colors) == 0 {
		return
	}
	if offAtEnd && colors[len(colors)-1] != 0 {
		colors = append(colors[:len(colors):len(colors)], 0)
	}
	s := schedule.New()
	for i, c := range colors {
		s.Add(step*time.Duration(i), sysex.PadColors(sysex.Pad{Index: index, Color: c}))
	}
	l.dispatcher.Dispatch(s)
}

// SetLayout switches the device layout. The device echoes the new
// layout back, which is how Layout learns about it.
func (l *Launchpad) SetLayout(layout byte) error {
	return l.send(sysex.SetLayout(layout))
}

// RequestLayout asks the device for its current layout.
func (l *Launchpad) RequestLayout() error {
	return l.send(sysex.QueryLayout())
}

// SetMode switches between Ableton and standalone mode.
func (l *Launchpad) SetMode(mode byte) error {
	return l.send(sysex.SetMode(mode))
}

// RequestMode asks the device for its current mode.
func (l *Launchpad) RequestMode() error {
	return l.send(sysex.QueryMode())
}

// NoteOn sends a raw note on, which in note and drum layouts lights
// the pad playing that note.
func (l *Launchpad) NoteOn(channel, note, velocity uint8) error {
	return l.send(midi.NoteOn(channel, note, velocity))
}

// NoteOff sends a raw note off.
func (l *Launchpad) NoteOff(channel, note uint8) error {
	return l.send(midi.NoteOff(channel, note))
}
