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

// Package port defines the MIDI transport capabilities consumed by
// the controller and provides transports backed by portmidi, by the
// gomidi drivers, and by a terminal preview.
package port

import "github.com/pkg/errors"

// ErrNotFound is returned when no device matches the requested name.
var ErrNotFound = errors.New("port: no launchpad pro is connected")

// Sender writes one complete MIDI message.
type Sender interface {
	Send(msg []byte) error
}

// Handler receives one complete inbound MIDI message.
type Handler func(msg []byte)

// Listener delivers inbound messages until stop is called.
type Listener interface {
	Listen(h Handler) (stop func(), err error)
}

// Port is a two way connection to a device.
type Port interface {
	Sender
	Listener
	Close() error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(msg []byte) error

// Send calls f(msg).
func (f SenderFunc) Send(msg []byte) error {
	return f(msg)
}
