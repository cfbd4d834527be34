package port

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rakyll/portmidi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeReader struct {
	mu    sync.Mutex
	reads []func() ([]portmidi.Event, error)
}

func (r *fakeReader) Read(max int) ([]portmidi.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reads) == 0 {
		return nil, nil
	}
	next := r.reads[0]
	r.reads = r.reads[1:]
	return next()
}

func TestPollSurvivesReadErrors(t *testing.T) {
	r := &fakeReader{reads: []func() ([]portmidi.Event, error){
		func() ([]portmidi.Event, error) { return nil, errors.New("sysex overflow") },
		func() ([]portmidi.Event, error) {
			return []portmidi.Event{{Status: 0x90, Data1: 11, Data2: 100}}, nil
		},
	}}
	log, hook := test.NewNullLogger()

	got := make(chan []byte, 1)
	done := make(chan struct{})
	defer close(done)
	go poll(r, func(msg []byte) { got <- msg }, log, done)

	select {
	case msg := <-got:
		if expected := []byte{0x90, 11, 100}; !bytes.Equal(expected, msg) {
			t.Errorf("expected %x, got %x", expected, msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected polling to go on after a read error")
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected the read error to be logged")
	}
	if expected, got := logrus.WarnLevel, entry.Level; expected != got {
		t.Errorf("expected level %v, got %v", expected, got)
	}
}

func TestEventBytesPrefersSysEx(t *testing.T) {
	frame := []byte{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10, 0x15, 0xf7}
	if got := eventBytes(portmidi.Event{Status: 0xf0, SysEx: frame}); !bytes.Equal(frame, got) {
		t.Errorf("expected %x, got %x", frame, got)
	}
}
