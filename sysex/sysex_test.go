package sysex_test

import (
	"bytes"
	"testing"

	"github.com/rakyll/launchpad-pro/sysex"
)

func TestEncodeGridColor(t *testing.T) {
	expected := []byte{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10, 0x0e, 0x64, 0xf7}
	if got := sysex.Fill(100); !bytes.Equal(expected, got) {
		t.Fatalf("expected % x, got % x", expected, got)
	}
	if got := sysex.Encode(sysex.TypeGridColor, 100); !bytes.Equal(expected, got) {
		t.Fatalf("expected % x, got % x", expected, got)
	}
}

func TestEncodePadColor(t *testing.T) {
	expected := []byte{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10, 0x0a, 0x00, 0x06, 0x01, 0x11, 0xf7}
	got := sysex.PadColors(sysex.Pad{Index: 0, Color: 6}, sysex.Pad{Index: 1, Color: 17})
	if !bytes.Equal(expected, got) {
		t.Fatalf("expected % x, got % x", expected, got)
	}
}

func TestEncodeWithoutPayload(t *testing.T) {
	for _, test := range []struct {
		msg  []byte
		kind sysex.Type
	}{
		{sysex.QueryLayout(), sysex.TypeLayoutStatus},
		{sysex.QueryMode(), sysex.TypeModeStatus},
		{sysex.StopScroll(), sysex.TypeScrollText},
	} {
		expected := []byte{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10, byte(test.kind), 0xf7}
		if !bytes.Equal(expected, test.msg) {
			t.Errorf("%s: expected % x, got % x", test.kind, expected, test.msg)
		}
	}
}

func TestEncodeTypes(t *testing.T) {
	pads := []sysex.Pad{{Index: 11, Color: 5}}
	for _, test := range []struct {
		msg     []byte
		kind    sysex.Type
		payload []byte
	}{
		{sysex.Flash(pads...), sysex.TypePadFlash, []byte{11, 5}},
		{sysex.Pulse(pads...), sysex.TypePadPulse, []byte{11, 5}},
		{sysex.SetLayout(sysex.LayoutProgrammer), sysex.TypeLayoutSet, []byte{3}},
		{sysex.SetMode(sysex.ModeStandalone), sysex.TypeModeSet, []byte{1}},
		{sysex.FillRGB(1, 63, 0, 10), sysex.TypeGridRGB, []byte{1, 63, 0, 10}},
		{sysex.PadRGBs(sysex.RGB{Index: 99, R: 1, G: 2, B: 3}), sysex.TypePadRGB, []byte{99, 1, 2, 3}},
		{
			sysex.Column(9, [10]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 0}),
			sysex.TypeColColor,
			[]byte{9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 0},
		},
		{
			sysex.Row(0, [10]byte{0, 9, 9, 9, 9, 9, 9, 9, 9, 0}),
			sysex.TypeRowColor,
			[]byte{0, 0, 9, 9, 9, 9, 9, 9, 9, 9, 0},
		},
	} {
		kind, payload, ok := sysex.Parse(test.msg)
		if !ok {
			t.Errorf("%s: frame % x did not parse", test.kind, test.msg)
			continue
		}
		if expected, got := test.kind, kind; expected != got {
			t.Errorf("expected type %s, got %s", expected, got)
		}
		if !bytes.Equal(test.payload, payload) {
			t.Errorf("%s: expected payload % x, got % x", test.kind, test.payload, payload)
		}
	}
}

func TestScrollContent(t *testing.T) {
	content := []sysex.Content{sysex.Speed(4)}
	content = append(content, sysex.Text("Hi")...)
	content = append(content, sysex.Speed(6), sysex.Content{})

	msg, rejected := sysex.Scroll(6, false, content...)
	_, payload, ok := sysex.Parse(msg)
	if !ok {
		t.Fatalf("frame % x did not parse", msg)
	}
	if expected := []byte{6, 0, 4, 72, 105, 6}; !bytes.Equal(expected, payload) {
		t.Fatalf("expected payload %v, got %v", expected, payload)
	}
	if expected, got := 1, len(rejected); expected != got {
		t.Fatalf("expected %d rejected element, got %d", expected, got)
	}
}

func TestScrollRejectsOutOfRange(t *testing.T) {
	codes, rejected := sysex.EncodeContent([]sysex.Content{
		sysex.Speed(0),
		sysex.Speed(8),
		sysex.Char('é'),
		sysex.Char('\n'),
		sysex.Char('A'),
		sysex.Speed(7),
	})
	if expected := []byte{'A', 7}; !bytes.Equal(expected, codes) {
		t.Errorf("expected %v, got %v", expected, codes)
	}
	if expected, got := 4, len(rejected); expected != got {
		t.Errorf("expected %d rejected, got %d", expected, got)
	}
}

func TestScrollLoopFlag(t *testing.T) {
	msg, _ := sysex.Scroll(72, true, sysex.Text("A")...)
	_, payload, _ := sysex.Parse(msg)
	if expected := []byte{72, 1, 'A'}; !bytes.Equal(expected, payload) {
		t.Errorf("expected %v, got %v", expected, payload)
	}
}

func TestParseRejectsForeignFrames(t *testing.T) {
	for _, msg := range [][]byte{
		nil,
		{0xf0, 0xf7},
		{0xf0, 0x00, 0x20, 0x29, 0x02, 0x18, 0x0e, 0x00, 0xf7},
		{0xf0, 0x00, 0x20, 0x29, 0x02, 0x10, 0x0e, 0x00},
	} {
		if _, _, ok := sysex.Parse(msg); ok {
			t.Errorf("expected % x to be rejected", msg)
		}
	}
}
