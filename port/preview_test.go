package port_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rakyll/launchpad-pro/port"
	"github.com/rakyll/launchpad-pro/sysex"
)

func send(t *testing.T, p *port.Preview, msg []byte) {
	t.Helper()
	if err := p.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func TestPreviewTracksFrames(t *testing.T) {
	p := port.NewPreview(nil)
	send(t, p, sysex.Fill(5))
	if expected, got := port.PaletteColor(5).Hex(), p.Hex(5, 5); expected != got {
		t.Errorf("expected %s after fill, got %s", expected, got)
	}

	send(t, p, sysex.PadColors(sysex.Pad{Index: 81, Color: 0}))
	if expected, got := "#000000", p.Hex(1, 1); expected != got {
		t.Errorf("expected %s, got %s", expected, got)
	}

	send(t, p, sysex.Column(3, [10]byte{7}))
	if expected, got := port.PaletteColor(7).Hex(), p.Hex(9, 3); expected != got {
		t.Errorf("expected the column to start at the bottom, got %s", got)
	}

	send(t, p, sysex.Row(0, [10]byte{0, 9}))
	if expected, got := port.PaletteColor(9).Hex(), p.Hex(9, 1); expected != got {
		t.Errorf("expected row 0 to be the bottom strip, got %s", got)
	}

	send(t, p, []byte{0x90, 55, 3})
	if expected, got := port.PaletteColor(3).Hex(), p.Hex(4, 5); expected != got {
		t.Errorf("expected note on to light the pad, got %s", got)
	}
}

func TestPreviewInnerRGBFill(t *testing.T) {
	p := port.NewPreview(nil)
	send(t, p, sysex.FillRGB(1, 63, 0, 0))
	if expected, got := "#ff0000", p.Hex(5, 5); expected != got {
		t.Errorf("expected %s, got %s", expected, got)
	}
	if expected, got := "#000000", p.Hex(0, 5); expected != got {
		t.Errorf("expected the border to be left alone, got %s", got)
	}
}

func TestPreviewIgnoresForeignFrames(t *testing.T) {
	p := port.NewPreview(nil)
	before := p.Render()
	send(t, p, []byte{0xf0, 0x7e, 0x7f, 0x06, 0x01, 0xf7})
	send(t, p, sysex.Column(12, [10]byte{5}))
	if p.Render() != before {
		t.Error("expected foreign and malformed frames to be ignored")
	}
}

func TestPreviewDraws(t *testing.T) {
	var buf bytes.Buffer
	p := port.NewPreview(&buf)
	send(t, p, sysex.Fill(0))
	if !strings.HasPrefix(buf.String(), "\x1b[H") {
		t.Errorf("expected the cursor to be homed, got %q", buf.String())
	}
	if expected, got := 10, len(strings.Split(p.Render(), "\n")); expected != got {
		t.Errorf("expected %d lines, got %d", expected, got)
	}
}

func TestPaletteColorRange(t *testing.T) {
	for c := 0; c < 128; c++ {
		col := port.PaletteColor(byte(c))
		if !col.IsValid() {
			t.Errorf("color %d: invalid %v", c, col)
		}
	}
}
