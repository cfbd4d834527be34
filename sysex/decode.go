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

package sysex

import (
	"bytes"

	"gitlab.com/gomidi/midi/v2"
)

// MIDI status bytes, channel bits masked off.
const (
	StatusNoteOff       = 0x80
	StatusNoteOn        = 0x90
	StatusControlChange = 0xb0
	StatusCodeMask      = 0xf0
	StatusSysEx         = 0xf0
)

// Event is an inbound message decoded by Decode.
type Event interface {
	event()
}

// NoteOn is a pad press.
type NoteOn struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
}

// NoteOff is a pad release.
type NoteOff struct {
	Channel uint8
	Note    uint8
}

// ControlOn is a control button press (value 127).
type ControlOn struct {
	Channel uint8
	Control uint8
}

// ControlOff is a control button release (value 0).
type ControlOff struct {
	Channel uint8
	Control uint8
}

// Control is any other control change value.
type Control struct {
	Channel uint8
	Control uint8
	Value   uint8
}

// LayoutEcho is the device acknowledging a layout selection.
type LayoutEcho struct {
	Layout byte
}

// LayoutStatus is the reply to QueryLayout.
type LayoutStatus struct {
	Layout byte
}

// ModeStatus is the reply to QueryMode.
type ModeStatus struct {
	Mode byte
}

// ScrollEnd is sent by the device after each pass of the firmware
// scroller.
type ScrollEnd struct{}

// DeviceSysEx is a Launchpad Pro frame with a type this package does
// not interpret.
type DeviceSysEx struct {
	Raw []byte
}

// GenericSysEx is a sysex frame from some other vendor or device.
type GenericSysEx struct {
	Raw []byte
}

// Unrecognized is everything else.
type Unrecognized struct {
	Raw []byte
}

func (NoteOn) event()       {}
func (NoteOff) event()      {}
func (ControlOn) event()    {}
func (ControlOff) event()   {}
func (Control) event()      {}
func (LayoutEcho) event()   {}
func (LayoutStatus) event() {}
func (ModeStatus) event()   {}
func (ScrollEnd) event()    {}
func (DeviceSysEx) event()  {}
func (GenericSysEx) event() {}
func (Unrecognized) event() {}

// Decode classifies a raw inbound message. It never fails: input it
// cannot make sense of is returned as Unrecognized.
func Decode(raw []byte) Event {
	raw = bytes.Clone(raw)
	if len(raw) == 0 {
		return Unrecognized{Raw: raw}
	}
	if raw[0] == StatusSysEx {
		if len(raw) < 2 || raw[len(raw)-1] != Terminator {
			return Unrecognized{Raw: raw}
		}
		return decodeSysEx(raw)
	}

	switch raw[0] & StatusCodeMask {
	case StatusNoteOn, StatusNoteOff, StatusControlChange:
		if len(raw) != 3 || (raw[1]|raw[2])&0x80 != 0 {
			return Unrecognized{Raw: raw}
		}
	default:
		return Unrecognized{Raw: raw}
	}

	var ch, data1, data2 uint8
	msg := midi.Message(raw)
	switch {
	case msg.GetNoteOn(&ch, &data1, &data2):
		return NoteOn{Channel: ch, Note: data1, Velocity: data2}
	case msg.GetNoteOff(&ch, &data1, &data2):
		return NoteOff{Channel: ch, Note: data1}
	case msg.GetControlChange(&ch, &data1, &data2):
		switch data2 {
		case 127:
			return ControlOn{Channel: ch, Control: data1}
		case 0:
			return ControlOff{Channel: ch, Control: data1}
		}
		return Control{Channel: ch, Control: data1, Value: data2}
	}
	return Unrecognized{Raw: raw}
}

func decodeSysEx(raw []byte) Event {
	t, data, ok := Parse(raw)
	if !ok {
		return GenericSysEx{Raw: raw}
	}
	switch t {
	case TypeLayoutSet:
		if len(data) > 0 {
			return LayoutEcho{Layout: data[0]}
		}
	case TypeLayoutStatus:
		if len(data) > 0 {
			return LayoutStatus{Layout: data[0]}
		}
	case TypeModeStatus:
		if len(data) > 0 {
			return ModeStatus{Mode: data[0]}
		}
	case TypeScrollEnd:
		return ScrollEnd{}
	}
	return DeviceSysEx{Raw: raw}
}
