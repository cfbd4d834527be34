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

// Package launchpad drives a Novation Launchpad Pro in programmer
// layout: pad colors, flashing and pulsing, scrolling text, layout
// switching and an on-device color palette.
package launchpad

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/port"
	"github.com/rakyll/launchpad-pro/schedule"
	"github.com/rakyll/launchpad-pro/sysex"
)

// ErrNoPort is returned by operations that need a port the
// Launchpad was built without.
var ErrNoPort = errors.New("launchpad: no port")

// DeviceName is matched against port names when discovering the device.
const DeviceName = "Launchpad Pro"

// Control buttons of the top strip.
const (
	ControlUp      byte = 91
	ControlDown    byte = 92
	ControlLeft    byte = 93
	ControlRight   byte = 94
	ControlSession byte = 95
	ControlNote    byte = 96
	ControlDevice  byte = 97
	ControlUser    byte = 98
)

// Defaults of the palette interaction.
const (
	DefaultPaletteToggle = ControlDevice
	DefaultHoldThreshold = 700 * time.Millisecond
	DefaultValidColor    = 21
	DefaultInvalidColor  = 5
)

// Launchpad represents a device behind an output and, optionally,
// an input port.
type Launchpad struct {
	ctx        context.Context
	out        port.Sender
	in         port.Listener
	closer     io.Closer
	dispatcher schedule.Dispatcher
	log        logrus.FieldLogger
	now        func() time.Time

	toggle        byte
	holdThreshold time.Duration
	validColor    byte
	invalidColor  byte
	onScrollEnd   func()
	onEvent       func(sysex.Event)

	initialLayout byte
	initialGrid   *grid.Grid

	mu        sync.Mutex
	state     *grid.State
	palette   PaletteState
	pressedAt time.Time
	layout    byte
	mode      byte
}

// Option configures a Launchpad.
type Option func(*Launchpad)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Launchpad) { l.log = log }
}

// WithInput sets the port inbound messages are read from.
func WithInput(in port.Listener) Option {
	return func(l *Launchpad) { l.in = in }
}

// WithDispatcher replaces the dispatcher delayed messages are handed to.
func WithDispatcher(d schedule.Dispatcher) Option {
	return func(l *Launchpad) { l.dispatcher = d }
}

// WithContext bounds the default dispatcher: once ctx is done,
// delayed messages that have not been sent yet are dropped.
func WithContext(ctx context.Context) Option {
	return func(l *Launchpad) { l.ctx = ctx }
}

// WithClock replaces time.Now for hold detection.
func WithClock(now func() time.Time) Option {
	return func(l *Launchpad) { l.now = now }
}

// WithLayout selects the layout set on construction.
func WithLayout(layout byte) Option {
	return func(l *Launchpad) { l.initialLayout = layout }
}

// WithGrid applies g on construction instead of turning every pad off.
func WithGrid(g grid.Grid) Option {
	return func(l *Launchpad) { l.initialGrid = &g }
}

// WithPaletteToggle selects the control that opens and closes the palette.
func WithPaletteToggle(control byte) Option {
	return func(l *Launchpad) { l.toggle = control }
}

// WithHoldThreshold sets how long the palette toggle must be held for
// its release to close the palette.
func WithHoldThreshold(d time.Duration) Option {
	return func(l *Launchpad) { l.holdThreshold = d }
}

// WithColors sets the colors used to signal valid and invalid presses.
func WithColors(valid, invalid byte) Option {
	return func(l *Launchpad) {
		l.validColor = valid
		l.invalidColor = invalid
	}
}

// WithScrollEnd registers fn to be called when the firmware scroller
// reports the end of a pass.
func WithScrollEnd(fn func()) Option {
	return func(l *Launchpad) { l.onScrollEnd = fn }
}

// WithEventHook registers fn to observe every decoded inbound event
// after it has been handled.
func WithEventHook(fn func(sysex.Event)) Option {
	return func(l *Launchpad) { l.onEvent = fn }
}

// New returns a Launchpad writing to out. It selects the layout and
// resets the surface. A nil out is reported and leaves the Launchpad
// usable only for its state: every send returns ErrNoPort.
func New(out port.Sender, opts ...Option) *Launchpad {
	l := &Launchpad{
		ctx:           context.Background(),
		out:           out,
		log:           logrus.StandardLogger(),
		now:           time.Now,
		toggle:        DefaultPaletteToggle,
		holdThreshold: DefaultHoldThreshold,
		validColor:    DefaultValidColor,
		invalidColor:  DefaultInvalidColor,
		initialLayout: sysex.LayoutProgrammer,
		state:         grid.NewState(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dispatcher == nil {
		l.dispatcher = schedule.NewTimerDispatcher(l.ctx, port.SenderFunc(l.send), l.log)
	}
	if out == nil {
		l.log.Error("launchpad: invalid output port")
		return l
	}
	if l.in == nil {
		l.log.Warn("launchpad: no input port, inbound events are not handled")
	}

	if err := l.SetLayout(l.initialLayout); err != nil {
		l.log.WithError(err).Error("launchpad: setting layout")
	}
	var err error
	if l.initialGrid != nil {
		err = l.ApplyGrid(*l.initialGrid)
	} else {
		err = l.SetAllColor(0)
	}
	if err != nil {
		l.log.WithError(err).Error("launchpad: resetting surface")
	}
	return l
}

// Open discovers the connected Launchpad Pro through portmidi and
// returns a Launchpad reading from and writing to it.
func Open(opts ...Option) (*Launchpad, error) {
	resolved := &Launchpad{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(resolved)
	}
	p, err := port.OpenPortMIDI(DeviceName, resolved.log)
	if err != nil {
		return nil, err
	}
	l := New(p, append([]Option{WithInput(p)}, opts...)...)
	l.closer = p
	return l, nil
}

// Close closes the underlying port if the Launchpad opened it.
func (l *Launchpad) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Launchpad) send(msg []byte) error {
	if l.out == nil {
		return ErrNoPort
	}
	return errors.Wrap(l.out.Send(msg), "launchpad: send")
}

// Grid returns the last surface applied with ApplyGrid or
// SetAllColor. Pad, row and column setters do not update it.
func (l *Launchpad) Grid() grid.Grid {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Last()
}

// Layout returns the layout last reported by the device.
func (l *Launchpad) Layout() byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.layout
}

// Mode returns the mode last reported by the device.
func (l *Launchpad) Mode() byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}
