package grid_test

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/sysex"
)

func TestAddressRoundTrip(t *testing.T) {
	count := 0
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if grid.IsCorner(row, col) {
				continue
			}
			index, err := grid.ToPadAddress(row, col)
			if err != nil {
				t.Fatalf("(%d, %d): %v", row, col, err)
			}
			if expected, got := byte((9-row)*10+col), index; expected != got {
				t.Errorf("(%d, %d): expected index %d, got %d", row, col, expected, got)
			}
			r, c, ok := grid.FromPadAddress(index)
			if !ok || r != row || c != col {
				t.Errorf("index %d: expected (%d, %d), got (%d, %d, %v)", index, row, col, r, c, ok)
			}
			count++
		}
	}
	if expected, got := 96, count; expected != got {
		t.Errorf("expected %d addressable pads, got %d", expected, got)
	}
}

func TestCornersHaveNoAddress(t *testing.T) {
	for _, rc := range [][2]int{{0, 0}, {0, 9}, {9, 0}, {9, 9}} {
		if _, err := grid.ToPadAddress(rc[0], rc[1]); errors.Cause(err) != grid.ErrCorner {
			t.Errorf("(%d, %d): expected ErrCorner, got %v", rc[0], rc[1], err)
		}
	}
	for _, index := range []byte{0, 9, 90, grid.SideLED, 100, 127} {
		if _, _, ok := grid.FromPadAddress(index); ok {
			t.Errorf("index %d: expected no cell", index)
		}
	}
	if _, err := grid.ToPadAddress(10, 3); err == nil {
		t.Errorf("expected an error for a cell off the surface")
	}
}

func TestApplySinglePad(t *testing.T) {
	g := grid.Unset()
	g[9][1] = 5
	expected := []sysex.Pad{{Index: 1, Color: 5}}
	if got := grid.Apply(g); !reflect.DeepEqual(expected, got) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestApplyZeroIsSent(t *testing.T) {
	pads := grid.Apply(grid.Empty())
	if expected, got := 96, len(pads); expected != got {
		t.Fatalf("expected %d pads, got %d", expected, got)
	}
	if expected, got := (sysex.Pad{Index: 91, Color: 0}), pads[0]; expected != got {
		t.Errorf("expected first pad %v, got %v", expected, got)
	}
	if expected, got := (sysex.Pad{Index: 8, Color: 0}), pads[len(pads)-1]; expected != got {
		t.Errorf("expected last pad %v, got %v", expected, got)
	}
	for _, p := range pads {
		if p.Index == 0 || p.Index == 9 || p.Index == 90 || p.Index == 99 {
			t.Errorf("corner index %d was emitted", p.Index)
		}
	}
}

func TestApplyBlankEmitsNothing(t *testing.T) {
	if got := grid.Apply(grid.Unset()); len(got) != 0 {
		t.Errorf("expected no pads, got %v", got)
	}
}

func TestApplyIgnoresCornerValues(t *testing.T) {
	g := grid.Unset()
	g[0][0], g[0][9], g[9][0], g[9][9] = 3, 3, 3, 3
	if got := grid.Apply(g); len(got) != 0 {
		t.Errorf("expected corner values to be skipped, got %v", got)
	}
}

func TestNewValidatesDimensions(t *testing.T) {
	rows := make([][]grid.Cell, 10)
	for i := range rows {
		rows[i] = make([]grid.Cell, 10)
	}
	if _, err := grid.New(rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := grid.New(rows[:9]); errors.Cause(err) != grid.ErrDimension {
		t.Errorf("expected ErrDimension for 9 rows, got %v", err)
	}
	rows[4] = rows[4][:8]
	if _, err := grid.New(rows); errors.Cause(err) != grid.ErrDimension {
		t.Errorf("expected ErrDimension for a short row, got %v", err)
	}
}

func TestTransposeNonSquare(t *testing.T) {
	m := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	expected := [][]int{{1, 4}, {2, 5}, {3, 6}}
	got := grid.Transpose(m)
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if back := grid.Transpose(got); !reflect.DeepEqual(m, back) {
		t.Errorf("expected transpose to be its own inverse, got %v", back)
	}
	if got := grid.Transpose[int](nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestColumnIsBottomToTop(t *testing.T) {
	g := grid.Unset()
	for row := 1; row < 9; row++ {
		g[row][4] = grid.Cell(row)
	}
	expected := [10]byte{0, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	if got := g.Column(4); expected != got {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestRowNormalizesBlank(t *testing.T) {
	g := grid.Unset()
	g[0][3] = 42
	expected := [10]byte{0, 0, 0, 42, 0, 0, 0, 0, 0, 0}
	if got := g.Row(0); expected != got {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestStateRecordsOnlyExplicitApplies(t *testing.T) {
	s := grid.NewState()
	if expected, got := grid.Empty(), s.Last(); expected != got {
		t.Errorf("expected an empty initial surface")
	}
	g := grid.Filled(5)
	s.RecordApplied(g)
	s.RecordApplied(g)
	if expected, got := g, s.Last(); expected != got {
		t.Errorf("expected the recorded surface")
	}
	if expected, got := 2, s.Applied(); expected != got {
		t.Errorf("expected %d applies, got %d", expected, got)
	}
}
