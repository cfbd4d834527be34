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
	"time"

	"github.com/pkg/errors"
	"github.com/rakyll/portmidi"
	"github.com/sirupsen/logrus"
)

const (
	// MaxEventsPerPoll bounds a single read from the input stream.
	MaxEventsPerPoll = 1024
	// PollingPeriod is the pause between two reads.
	PollingPeriod = 10 * time.Millisecond
)

// PortMIDI is a device reached through portmidi. Sends are serialized.
type PortMIDI struct {
	in  *portmidi.Stream
	out *portmidi.Stream
	log logrus.FieldLogger

	mu sync.Mutex
}

// OpenPortMIDI initializes portmidi and opens the input and output
// streams of the first device whose name contains name. Read errors
// are reported to log, the standard logger when nil.
func OpenPortMIDI(name string, log logrus.FieldLogger) (*PortMIDI, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := portmidi.Initialize(); err != nil {
		return nil, errors.Wrap(err, "port: initializing portmidi")
	}
	input, output, err := discover(name)
	if err != nil {
		portmidi.Terminate()
		return nil, err
	}
	in, err := portmidi.NewInputStream(input, MaxEventsPerPoll)
	if err != nil {
		portmidi.Terminate()
		return nil, errors.Wrap(err, "port: opening input stream")
	}
	out, err := portmidi.NewOutputStream(output, MaxEventsPerPoll, 0)
	if err != nil {
		in.Close()
		portmidi.Terminate()
		return nil, errors.Wrap(err, "port: opening output stream")
	}
	return &PortMIDI{in: in, out: out, log: log}, nil
}

func discover(name string) (input portmidi.DeviceID, output portmidi.DeviceID, err error) {
	in := -1
	out := -1
	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if !strings.Contains(info.Name, name) {
			continue
		}
		if info.IsInputAvailable && in == -1 {
			in = i
		}
		if info.IsOutputAvailable && out == -1 {
			out = i
		}
	}
	if in == -1 || out == -1 {
		return 0, 0, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return portmidi.DeviceID(in), portmidi.DeviceID(out), nil
}

// Send writes msg, as a sysex frame when it starts with 0xF0.
func (p *PortMIDI) Send(msg []byte) error {
	if len(msg) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if msg[0] == 0xf0 {
		return p.out.WriteSysExBytes(portmidi.Time(), msg)
	}
	var data1, data2 int64
	if len(msg) > 1 {
		data1 = int64(msg[1])
	}
	if len(msg) > 2 {
		data2 = int64(msg[2])
	}
	return p.out.WriteShort(int64(msg[0]), data1, data2)
}

// Listen polls the input stream from a goroutine and passes every
// message to h until stop is called.
func (p *PortMIDI) Listen(h Handler) (stop func(), err error) {
	done := make(chan struct{})
	go poll(p.in, h, p.log, done)
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

type eventReader interface {
	Read(max int) ([]portmidi.Event, error)
}

// poll reads r until done is closed. A failed read, such as a sysex
// overflowing the stream buffer, is logged and polling goes on.
func poll(r eventReader, h Handler, log logrus.FieldLogger, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}
		time.Sleep(PollingPeriod)
		evts, err := r.Read(MaxEventsPerPoll)
		if err != nil {
			log.WithError(err).Warn("port: reading portmidi input")
			continue
		}
		for _, evt := range evts {
			h(eventBytes(evt))
		}
	}
}

func eventBytes(evt portmidi.Event) []byte {
	if len(evt.SysEx) > 0 {
		return evt.SysEx
	}
	return []byte{byte(evt.Status), byte(evt.Data1), byte(evt.Data2)}
}

// Close closes both streams and terminates portmidi.
func (p *PortMIDI) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	errIn := p.in.Close()
	errOut := p.out.Close()
	portmidi.Terminate()
	if errIn != nil {
		return errIn
	}
	return errOut
}

var _ Port = (*PortMIDI)(nil)
