package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, InkOrange) // top only
	c.SetFloat(1, 0, InkOrange) // both halves
	c.SetFloat(1, 1, InkOrange)
	c.SetFloat(2, 1, InkGreen) // bottom only
	c.SetFloat(3, 0, InkOrange)
	c.SetFloat(3, 1, InkGreen) // two colours

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"\033[38;5;208m\033[1;1H▀",
		"\033[1;2H█",
		"\033[38;5;70m\033[1;3H▄",
		"\033[38;5;208m\033[48;5;70m\033[1;4H▀",
		"\033[0m\033[2;1H ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%q", want, out)
		}
	}
}

func TestRenderSkipsUnchangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, InkWhite)

	var buf bytes.Buffer
	c.Render(&buf)

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", buf.String())
	}

	c.MarkTextDirty(1, 1, 1)
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;1H▀") {
		t.Fatalf("dirty cell not rewritten: %q", buf.String())
	}

	buf.Reset()
	c.Clear()
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;1H ") {
		t.Fatalf("cleared cell not erased: %q", buf.String())
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(10, 3)
	c.SetFloat(1, 1, InkGold)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[4;12H▄") {
		t.Fatalf("offset not applied: %q", buf.String())
	}
}

func TestTerminalToLogical(t *testing.T) {
	c := NewScaledCanvas(100, 50, 1280, 720)
	c.SetOffset(10, 5)

	tests := []struct {
		col, row int
		x, y     float64
		ok       bool
	}{
		{9, 5, 0, 0, false},
		{10, 4, 0, 0, false},
		{110, 5, 0, 0, false},
		{10, 55, 0, 0, false},
		{10, 5, 6.4, 7.2, true},
		{59, 29, 633.6, 352.8, true},
	}
	for _, tt := range tests {
		x, y, ok := c.TerminalToLogical(tt.col, tt.row)
		if ok != tt.ok {
			t.Errorf("(%d,%d): ok=%v, want %v", tt.col, tt.row, ok, tt.ok)
			continue
		}
		if ok && (math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9) {
			t.Errorf("(%d,%d) -> (%f,%f), want (%f,%f)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(128, 36, 1280, 720)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 1, 1},
		{0, 14, 1, 1},
		{0, 20, 1, 2},
		{-10, -10, 0, 0},
		{0, -10, 1, 0},
		{1270, 710, 128, 36},
	}
	for _, tt := range tests {
		col, row := c.LogicalToTerminal(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("(%g,%g) -> (%d,%d), want (%d,%d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestFillPolygon(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{X: 2, Y: 2}, {X: 7, Y: 2}, {X: 7, Y: 7}, {X: 2, Y: 7}}, InkBlue, true)

	if c.At(4, 4) != InkBlue {
		t.Errorf("interior not filled")
	}
	if c.At(0, 0) != InkNone || c.At(9, 9) != InkNone {
		t.Errorf("fill leaked outside the polygon")
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if buf.Len() != 0 {
		t.Fatalf("wrote before flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[3;4Hhi" {
		t.Fatalf("got %q", got)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != big {
		t.Fatalf("flushed %d bytes, want %d", buf.Len(), len(big))
	}
}

func TestModeEnterLeave(t *testing.T) {
	var buf bytes.Buffer
	MouseTracking.Enter(&buf)
	CursorHidden.Enter(&buf)
	CursorHidden.Leave(&buf)
	MouseTracking.Leave(&buf)

	want := "\033[?1003h\033[?1006h\033[?25l\033[?25h\033[?1006l\033[?1003l"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
