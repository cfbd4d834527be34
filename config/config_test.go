package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakyll/launchpad-pro/config"
	"github.com/rakyll/launchpad-pro/port"
	"github.com/rakyll/launchpad-pro/scroll"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchpad.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := write(t, `
driver = "preview"
log_level = "debug"

[scroll]
delay_ms = 50
cycle = "none"
loop = 2

[palette]
toggle = 98
`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if expected, got := config.DriverPreview, c.Driver; expected != got {
		t.Errorf("expected driver %q, got %q", expected, got)
	}
	if expected, got := byte(98), c.Palette.Toggle; expected != got {
		t.Errorf("expected toggle %d, got %d", expected, got)
	}
	if expected, got := 700, c.Palette.HoldMS; expected != got {
		t.Errorf("expected the default hold of %dms, got %d", expected, got)
	}

	opts := c.ScrollOptions()
	if expected, got := 50*time.Millisecond, opts.Delay; expected != got {
		t.Errorf("expected delay %v, got %v", expected, got)
	}
	if expected, got := scroll.CycleNone, opts.Cycle; expected != got {
		t.Errorf("expected cycle %v, got %v", expected, got)
	}
	if expected, got := 2, opts.Loop; expected != got {
		t.Errorf("expected loop %d, got %d", expected, got)
	}
	if !opts.PreserveContent {
		t.Error("expected preserve to default to true")
	}
}

func TestLoadRejects(t *testing.T) {
	for _, body := range []string{
		`driver = "serial"`,
		`layout = 7`,
		`log_level = "loud"`,
		`colour = 5`,
		"[scroll]\ncycle = \"some\"",
		`driver = `,
	} {
		if _, err := config.Load(write(t, body)); err == nil {
			t.Errorf("expected %q to be rejected", body)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Error(err)
	}
}

func TestOpenPortFailureReturnsNilPort(t *testing.T) {
	c := config.Default()
	c.Driver = config.DriverRtMIDI
	c.Port = "no such device 4c1f"
	p, err := c.OpenPort(logrus.New())
	if !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if p != nil {
		t.Errorf("expected a nil port, got %#v", p)
	}
}
