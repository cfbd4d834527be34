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
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // registers the rtmidi driver
)

// GoMIDI is a device reached through the gomidi driver registry.
type GoMIDI struct {
	in   drivers.In
	out  drivers.Out
	send func(msg midi.Message) error

	mu sync.Mutex
}

// OpenGoMIDI opens the first input and output ports whose names
// contain name.
func OpenGoMIDI(name string) (*GoMIDI, error) {
	in := findIn(name)
	out := findOut(name)
	if in == nil || out == nil {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, errors.Wrap(err, "port: opening output")
	}
	return &GoMIDI{in: in, out: out, send: send}, nil
}

func findIn(name string) drivers.In {
	for _, in := range midi.GetInPorts() {
		if strings.Contains(in.String(), name) {
			return in
		}
	}
	return nil
}

func findOut(name string) drivers.Out {
	for _, out := range midi.GetOutPorts() {
		if strings.Contains(out.String(), name) {
			return out
		}
	}
	return nil
}

// InPorts lists the names of the available input ports.
func InPorts() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// OutPorts lists the names of the available output ports.
func OutPorts() []string {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// Send implements Sender.
func (g *GoMIDI) Send(msg []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.send(midi.Message(msg))
}

// Listen implements Listener. Sysex frames are delivered whole.
func (g *GoMIDI) Listen(h Handler) (stop func(), err error) {
	stop, err = midi.ListenTo(g.in, func(msg midi.Message, timestampms int32) {
		h(msg.Bytes())
	}, midi.UseSysEx())
	if err != nil {
		return nil, errors.Wrap(err, "port: listening")
	}
	return stop, nil
}

// Close closes both ports and the driver.
func (g *GoMIDI) Close() error {
	errIn := g.in.Close()
	errOut := g.out.Close()
	midi.CloseDriver()
	if errIn != nil {
		return errIn
	}
	return errOut
}

var _ Port = (*GoMIDI)(nil)
