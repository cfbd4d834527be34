package schedule_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakyll/launchpad-pro/schedule"
)

func TestBatchesAreOrdered(t *testing.T) {
	s := schedule.New()
	s.Add(300*time.Millisecond, []byte{3})
	s.Add(0, []byte{0})
	s.Add(100*time.Millisecond, []byte{1}, []byte{1, 1})
	s.Add(300*time.Millisecond, []byte{3, 3})

	batches := s.Batches()
	if expected, got := 3, len(batches); expected != got {
		t.Fatalf("expected %d batches, got %d", expected, got)
	}
	for i, at := range []time.Duration{0, 100 * time.Millisecond, 300 * time.Millisecond} {
		if expected, got := at, batches[i].At; expected != got {
			t.Errorf("batch %d: expected offset %v, got %v", i, expected, got)
		}
	}
	if expected, got := 5, s.Len(); expected != got {
		t.Errorf("expected %d messages, got %d", expected, got)
	}
	if expected, got := 2, len(s.At(300*time.Millisecond)); expected != got {
		t.Errorf("expected %d messages at 300ms, got %d", expected, got)
	}
	if got := s.At(time.Second); got != nil {
		t.Errorf("expected nothing at 1s, got %v", got)
	}
}

func TestScheduleIDsAreUnique(t *testing.T) {
	if a, b := schedule.New().ID(), schedule.New().ID(); a == "" || a == b {
		t.Errorf("expected distinct ids, got %q and %q", a, b)
	}
}

type recorder struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (r *recorder) Send(msg []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recorder) sent() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.msgs...)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestTimerDispatcherFiresInOrder(t *testing.T) {
	out := &recorder{}
	d := schedule.NewTimerDispatcher(context.Background(), out, quietLogger())

	s := schedule.New()
	s.Add(20*time.Millisecond, []byte{2})
	s.Add(10*time.Millisecond, []byte{1})
	s.Add(0, []byte{0})
	done := make(chan struct{})
	s.Call(30*time.Millisecond, func() { close(done) })
	d.Dispatch(s)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout")
	}
	got := out.sent()
	if expected := [][]byte{{0}, {1}, {2}}; len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i, msg := range got {
		if !bytes.Equal([]byte{byte(i)}, msg) {
			t.Errorf("message %d: got %v", i, msg)
		}
	}
}

func TestTimerDispatcherCancel(t *testing.T) {
	out := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	d := schedule.NewTimerDispatcher(ctx, out, quietLogger())

	s := schedule.New()
	s.Add(time.Hour, []byte{1})
	d.Dispatch(s)
	cancel()

	time.Sleep(20 * time.Millisecond)
	if got := out.sent(); len(got) != 0 {
		t.Errorf("expected nothing to be sent, got %v", got)
	}
}
