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
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakyll/launchpad-pro/scroll"
	"github.com/rakyll/launchpad-pro/sysex"
)

// ScrollingTextBuilder builds a text for the device's own scroller.
type ScrollingTextBuilder struct {
	l       *Launchpad
	color   byte
	loop    bool
	content []sysex.Content
}

// Text returns a builder for a text scrolled once by the device in
// the given palette color.
func (l *Launchpad) Text(color byte) *ScrollingTextBuilder {
	return &ScrollingTextBuilder{l: l, color: color}
}

// TextLoop returns a builder for a text the device scrolls until
// StopScroll is sent.
func (l *Launchpad) TextLoop(color byte) *ScrollingTextBuilder {
	return &ScrollingTextBuilder{l: l, color: color, loop: true}
}

// Add appends a text snippet scrolled at speed, which is clamped to
// 1-7. Characters outside printable ASCII are dropped when performing.
func (s *ScrollingTextBuilder) Add(speed byte, text string) *ScrollingTextBuilder {
	if speed > sysex.MaxSpeed {
		speed = sysex.MaxSpeed
	} else if speed < sysex.MinSpeed {
		speed = sysex.MinSpeed
	}
	s.content = append(s.content, sysex.Speed(speed))
	s.content = append(s.content, sysex.Text(text)...)
	return s
}

// Perform sends the text to the device.
func (s *ScrollingTextBuilder) Perform() error {
	msg, rejected := sysex.Scroll(s.color, s.loop, s.content...)
	for _, c := range rejected {
		s.l.log.WithField("content", c.String()).Warn("launchpad: dropping unsupported scroll content")
	}
	return s.l.send(msg)
}

// StopScroll stops the device's own scroller.
func (l *Launchpad) StopScroll() error {
	return l.send(sysex.StopScroll())
}

// ScrollText scrolls text across the surface column by column and
// returns how long it takes, loops excluded. Each loop is started
// when the previous pass ends, from the surface recorded at that time.
func (l *Launchpad) ScrollText(text string, opts scroll.Options) time.Duration {
	saved := l.Grid()
	job := scroll.Build(text, opts, saved)
	if next, ok := job.Next(); ok {
		job.Schedule.Call(job.Duration, func() {
			l.ScrollText(job.Text, next)
		})
	}
	l.log.WithFields(logrus.Fields{
		"schedule": job.Schedule.ID(),
		"text":     job.Text,
		"width":    job.Width,
		"duration": job.Duration,
		"loop":     job.Options.Loop,
	}).Debug("launchpad: scrolling text")
	l.dispatcher.Dispatch(job.Schedule)
	return job.Duration
}

// ShowText is ScrollText for text already split into lines, which are
// joined by a space.
func (l *Launchpad) ShowText(lines []string, opts scroll.Options) time.Duration {
	return l.ScrollText(strings.Join(lines, " "), opts)
}
