package render

import (
	"math"
	"testing"
)

func TestFrameBufferClearState(t *testing.T) {
	buf := NewFrameBuffer(7, 5)
	if buf.Len() != 35 {
		t.Fatalf("Len = %d, want 35", buf.Len())
	}

	buf.Plot(3, 0.5, '*')
	buf.Plot(34, 0.25, '#')
	buf.Clear()

	for i := 0; i < buf.Len(); i++ {
		if buf.Depth(i) != 0 || buf.Glyph(i) != Blank {
			t.Fatalf("cell %d not reset: depth=%f glyph=%q", i, buf.Depth(i), buf.Glyph(i))
		}
	}
}

func TestFrameBufferPlot(t *testing.T) {
	tests := []struct {
		name      string
		idx       int
		zr        float64
		wantWrite bool
	}{
		{"in range", 4, 0.1, true},
		{"negative index", -1, 0.1, false},
		{"index at length", 20, 0.1, false},
		{"far past end", 1 << 20, 0.1, false},
		{"zero depth", 4, 0, false},
		{"negative depth", 4, -0.5, false},
		{"NaN depth", 4, math.NaN(), false},
		{"positive infinity", 4, math.Inf(1), false},
		{"negative infinity", 4, math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewFrameBuffer(5, 4)
			got := buf.Plot(tt.idx, tt.zr, '@')
			if got != tt.wantWrite {
				t.Fatalf("Plot(%d, %v) = %v, want %v", tt.idx, tt.zr, got, tt.wantWrite)
			}
			if !tt.wantWrite {
				for i := 0; i < buf.Len(); i++ {
					if buf.Depth(i) != 0 || buf.Glyph(i) != Blank {
						t.Errorf("rejected plot mutated cell %d", i)
					}
				}
			}
		})
	}
}

func TestFrameBufferNearestWins(t *testing.T) {
	buf := NewFrameBuffer(4, 4)

	buf.Plot(5, 1.0/60, '#')
	if !buf.Plot(5, 1.0/35, '*') {
		t.Fatal("nearer sample rejected")
	}
	if buf.Plot(5, 1.0/50, '$') {
		t.Error("farther sample accepted")
	}
	if buf.Plot(5, 1.0/35, '+') {
		t.Error("equal depth replaced earlier writer")
	}

	if buf.Glyph(5) != '*' || buf.Depth(5) != 1.0/35 {
		t.Errorf("cell 5 = %q @ %f, want '*' @ %f", buf.Glyph(5), buf.Depth(5), 1.0/35)
	}
}

func TestFrameBufferPut(t *testing.T) {
	buf := NewFrameBuffer(3, 3)
	buf.Put(2, 1, '#')
	buf.Put(-1, 0, '#')
	buf.Put(3, 0, '#')
	buf.Put(0, 3, '#')

	for i := 0; i < buf.Len(); i++ {
		want := byte(Blank)
		if i == 1*3+2 {
			want = '#'
		}
		if buf.Glyph(i) != want {
			t.Errorf("cell %d = %q, want %q", i, buf.Glyph(i), want)
		}
	}
}

func TestAppendFrameRowSeparator(t *testing.T) {
	buf := NewFrameBuffer(4, 3)
	for i := 0; i < buf.Len(); i++ {
		buf.Plot(i, 1, 'x')
	}

	frame := buf.AppendFrame(nil)
	want := "\nxxx\nxxx\nxxx"
	if string(frame) != want {
		t.Errorf("AppendFrame = %q, want %q", frame, want)
	}
}

func TestFrameBufferResize(t *testing.T) {
	buf := NewFrameBuffer(10, 10)
	buf.Plot(99, 1, '*')

	buf.Resize(4, 2)
	if w, h := buf.Size(); w != 4 || h != 2 {
		t.Fatalf("Size = %dx%d, want 4x2", w, h)
	}
	if buf.Len() != 8 {
		t.Fatalf("Len = %d, want 8", buf.Len())
	}

	buf.Resize(20, 20)
	for i := 0; i < buf.Len(); i++ {
		if buf.Glyph(i) != Blank {
			t.Fatalf("cell %d survived resize", i)
		}
	}
}
