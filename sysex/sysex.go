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

// Package sysex encodes and decodes the system exclusive messages
// understood by the Novation Launchpad Pro.
//
// Every frame has the shape
//
//	F0 00 20 29 02 10 <type> <payload...> F7
package sysex

import (
	"bytes"

	"gitlab.com/gomidi/midi/v2"
)

// Type is the control byte that selects what a frame does.
type Type byte

const (
	TypePadRGB       Type = 0x08 // index, r, g, b quads
	TypePadColor     Type = 0x0a // index, color pairs
	TypeColColor     Type = 0x0c // column index + 10 colors, bottom to top
	TypeRowColor     Type = 0x0d // row index + 10 colors, left to right
	TypeGridColor    Type = 0x0e // single fill color
	TypeGridRGB      Type = 0x0f // grid mode, r, g, b
	TypeScrollText   Type = 0x14 // color, loop, content
	TypeScrollEnd    Type = 0x15 // sent by the device after each scroll pass
	TypeModeSet      Type = 0x21 // 0 = Ableton, 1 = standalone
	TypePadFlash     Type = 0x23
	TypePadPulse     Type = 0x28
	TypeLayoutSet    Type = 0x2c // 0 = note, 1 = drum, 2 = fader, 3 = programmer
	TypeModeStatus   Type = 0x2d
	TypeLayoutStatus Type = 0x2f
)

var typeNames = map[Type]string{
	TypePadRGB:       "pad-rgb",
	TypePadColor:     "pad-color",
	TypeColColor:     "col-color",
	TypeRowColor:     "row-color",
	TypeGridColor:    "grid-color",
	TypeGridRGB:      "grid-rgb",
	TypeScrollText:   "scroll-text",
	TypeScrollEnd:    "scroll-end",
	TypeModeSet:      "mode-set",
	TypePadFlash:     "pad-flash",
	TypePadPulse:     "pad-pulse",
	TypeLayoutSet:    "layout-set",
	TypeModeStatus:   "mode-status",
	TypeLayoutStatus: "layout-status",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Header starts every Launchpad Pro frame.
var Header = [6]byte{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10}

// Terminator ends every frame.
const Terminator = 0xf7

// Layouts accepted by TypeLayoutSet.
const (
	LayoutNote       byte = 0x00
	LayoutDrum       byte = 0x01
	LayoutFader      byte = 0x02
	LayoutProgrammer byte = 0x03
)

// Modes accepted by TypeModeSet.
const (
	ModeAbleton    byte = 0x00
	ModeStandalone byte = 0x01
)

// Encode wraps the payload in the Launchpad Pro envelope.
// Status queries pass no payload and get none on the wire.
func Encode(t Type, payload ...byte) []byte {
	body := make([]byte, 0, len(Header)+len(payload))
	body = append(body, Header[1:]...)
	body = append(body, byte(t))
	body = append(body, payload...)
	return []byte(midi.SysEx(body))
}

// Parse is the reverse of Encode. It reports false for frames
// that were not produced for this device family.
func Parse(msg []byte) (Type, []byte, bool) {
	if len(msg) < len(Header)+2 || msg[len(msg)-1] != Terminator {
		return 0, nil, false
	}
	if !bytes.Equal(msg[:len(Header)], Header[:]) {
		return 0, nil, false
	}
	return Type(msg[len(Header)]), msg[len(Header)+1 : len(msg)-1], true
}

// Pad pairs a pad index with a velocity color.
type Pad struct {
	Index byte
	Color byte
}

// RGB is a pad index with an explicit color, each channel 0..63.
type RGB struct {
	Index   byte
	R, G, B byte
}

func flatten(pads []Pad) []byte {
	out := make([]byte, 0, 2*len(pads))
	for _, p := range pads {
		out = append(out, p.Index, p.Color)
	}
	return out
}

// PadColors lights each pad with its color.
func PadColors(pads ...Pad) []byte {
	return Encode(TypePadColor, flatten(pads)...)
}

// Flash starts the hardware flash on each pad. The pads keep
// flashing until they receive a note on or another sysex frame.
func Flash(pads ...Pad) []byte {
	return Encode(TypePadFlash, flatten(pads)...)
}

// Pulse starts the hardware pulse on each pad. Stopped the same way
// as Flash.
func Pulse(pads ...Pad) []byte {
	return Encode(TypePadPulse, flatten(pads)...)
}

// Column sets the ten colors of a column, bottom to top. Corner
// entries are placeholders and must be present.
func Column(index byte, colors [10]byte) []byte {
	return Encode(TypeColColor, append([]byte{index}, colors[:]...)...)
}

// Row sets the ten colors of a row, left to right. Rows are
// numbered from the bottom strip.
func Row(index byte, colors [10]byte) []byte {
	return Encode(TypeRowColor, append([]byte{index}, colors[:]...)...)
}

// Fill sets every pad to color.
func Fill(color byte) []byte {
	return Encode(TypeGridColor, color)
}

// PadRGBs lights pads with explicit colors.
func PadRGBs(pads ...RGB) []byte {
	out := make([]byte, 0, 4*len(pads))
	for _, p := range pads {
		out = append(out, p.Index, p.R, p.G, p.B)
	}
	return Encode(TypePadRGB, out...)
}

// FillRGB sets every pad to an explicit color. Mode 0 covers the
// full 10x10 surface, mode 1 only the inner 8x8.
func FillRGB(mode, r, g, b byte) []byte {
	return Encode(TypeGridRGB, mode, r, g, b)
}

// SetLayout selects a device layout.
func SetLayout(layout byte) []byte {
	return Encode(TypeLayoutSet, layout)
}

// QueryLayout asks the device for its current layout.
func QueryLayout() []byte {
	return Encode(TypeLayoutStatus)
}

// SetMode switches between Ableton and standalone mode.
func SetMode(mode byte) []byte {
	return Encode(TypeModeSet, mode)
}

// QueryMode asks the device for its current mode.
func QueryMode() []byte {
	return Encode(TypeModeStatus)
}

// StopScroll is the dataless scroll frame that stops the firmware
// text scroller.
func StopScroll() []byte {
	return Encode(TypeScrollText)
}

// Scroll starts the firmware text scroller. Content that cannot be
// put on the wire is left out and returned so the caller can report it.
func Scroll(color byte, loop bool, content ...Content) ([]byte, []Content) {
	var flag byte
	if loop {
		flag = 1
	}
	codes, rejected := EncodeContent(content)
	return Encode(TypeScrollText, append([]byte{color, flag}, codes...)...), rejected
}
