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

import "fmt"

type contentKind uint8

const (
	kindInvalid contentKind = iota
	kindChar
	kindSpeed
)

// Speed markers accepted inside scrolling text.
const (
	MinSpeed     byte = 1
	MaxSpeed     byte = 7
	DefaultSpeed byte = 4
)

// Content is one element of a scrolling text message: either a
// printable ASCII character or a speed marker. The zero value is
// not valid content.
type Content struct {
	kind  contentKind
	char  rune
	speed byte
}

// Char returns a character element.
func Char(r rune) Content {
	return Content{kind: kindChar, char: r}
}

// Speed returns a speed marker element. Speeds outside [1, 7]
// are rejected when encoding.
func Speed(s byte) Content {
	return Content{kind: kindSpeed, speed: s}
}

// Text returns one character element per rune of s.
func Text(s string) []Content {
	out := make([]Content, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}

// Byte returns the wire value of c.
func (c Content) Byte() (byte, bool) {
	switch c.kind {
	case kindChar:
		if c.char < 0x20 || c.char > 0x7e {
			return 0, false
		}
		return byte(c.char), true
	case kindSpeed:
		if c.speed < MinSpeed || c.speed > MaxSpeed {
			return 0, false
		}
		return c.speed, true
	}
	return 0, false
}

func (c Content) String() string {
	switch c.kind {
	case kindChar:
		return fmt.Sprintf("char(%q)", c.char)
	case kindSpeed:
		return fmt.Sprintf("speed(%d)", c.speed)
	}
	return "invalid"
}

// EncodeContent maps characters to their ASCII codes and leaves
// speed markers untouched.
func EncodeContent(content []Content) (codes []byte, rejected []Content) {
	codes = make([]byte, 0, len(content))
	for _, c := range content {
		b, ok := c.Byte()
		if !ok {
			rejected = append(rejected, c)
			continue
		}
		codes = append(codes, b)
	}
	return codes, rejected
}
