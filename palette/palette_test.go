package palette_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/palette"
)

func TestRenderFirstPage(t *testing.T) {
	g, err := palette.Render(0)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		row, col int
		expected grid.Cell
	}{
		{8, 1, 0},  // bottom left pad
		{1, 1, 7},  // top left pad
		{8, 8, 56}, // bottom right pad
		{1, 8, 63}, // top right pad
		{0, 3, 0},  // left arrow is off on the first page
		{0, 4, palette.ArrowColor},
		{0, 0, grid.Blank},
		{5, 0, 0},
		{9, 5, 0},
	} {
		if got := g[test.row][test.col]; test.expected != got {
			t.Errorf("(%d, %d): expected %d, got %d", test.row, test.col, test.expected, got)
		}
	}
}

func TestRenderLastPage(t *testing.T) {
	g, err := palette.Render(palette.MaxOffset)
	if err != nil {
		t.Fatal(err)
	}
	if expected, got := grid.Cell(127), g[1][8]; expected != got {
		t.Errorf("expected %d top right, got %d", expected, got)
	}
	if expected, got := palette.ArrowColor, g[0][3]; expected != got {
		t.Errorf("expected the left arrow lit, got %d", got)
	}
	if expected, got := grid.Cell(0), g[0][4]; expected != got {
		t.Errorf("expected the right arrow off, got %d", got)
	}
}

func TestRenderRejectsOffsets(t *testing.T) {
	for _, offset := range []int{-1, palette.MaxOffset + 1} {
		if _, err := palette.Render(offset); errors.Cause(err) != palette.ErrOffset {
			t.Errorf("offset %d: expected ErrOffset, got %v", offset, err)
		}
	}
}

func TestCanPage(t *testing.T) {
	if palette.CanPage(0, palette.Left) {
		t.Errorf("expected the first page to refuse paging left")
	}
	if !palette.CanPage(0, palette.Right) {
		t.Errorf("expected the first page to page right")
	}
	if palette.CanPage(palette.MaxOffset, palette.Right) {
		t.Errorf("expected the last page to refuse paging right")
	}
}

func TestColorAt(t *testing.T) {
	for _, test := range []struct {
		offset   int
		index    byte
		expected byte
		ok       bool
	}{
		{0, 11, 0, true},
		{0, 88, 63, true},
		{1, 11, 8, true},
		{palette.MaxOffset, 88, 127, true},
		{0, 93, 0, false},
		{0, 19, 0, false},
		{0, 1, 0, false},
	} {
		got, ok := palette.ColorAt(test.offset, test.index)
		if ok != test.ok || got != test.expected {
			t.Errorf("ColorAt(%d, %d): expected (%d, %v), got (%d, %v)",
				test.offset, test.index, test.expected, test.ok, got, ok)
		}
	}
}
