package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/ascii-cube/vmath"
)

func newTestSampler() *Sampler {
	return &Sampler{
		Projector: Projector{Width: 90, Height: 60, Distance: 50, Scale: 20},
		HalfWidth: 15,
		Step:      0.6,
	}
}

func TestSweepCount(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		step float64
		want int
	}{
		{"default grid", 15, 0.6, 50},
		{"unit step", 2, 1, 4},
		{"step wider than face", 1, 5, 1},
		{"zero step", 15, 0, 0},
		{"zero half-width", 0, 0.6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sampler{HalfWidth: tt.h, Step: tt.step}
			if got := s.SweepCount(); got != tt.want {
				t.Errorf("SweepCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCubeFacesDistinct(t *testing.T) {
	seen := make(map[byte]string)
	for _, f := range CubeFaces {
		if prev, ok := seen[f.Glyph]; ok {
			t.Errorf("faces %s and %s share glyph %q", prev, f.Name, f.Glyph)
		}
		seen[f.Glyph] = f.Name

		// Every sample of a face lies on the cube surface
		for _, uv := range [][2]float64{{-15, -15}, {0, 0}, {14.4, -7.2}} {
			p := f.Point(uv[0], uv[1], 15)
			m := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
			if m != 15 {
				t.Errorf("face %s point %v not on surface", f.Name, p)
			}
		}
	}
}

func TestFrontFaceAtRest(t *testing.T) {
	s := newTestSampler()
	buf := NewFrameBuffer(90, 60)
	st := s.SampleCube(buf, vmath.Angles{})

	if st.Samples != 6*50*50 {
		t.Fatalf("Samples = %d, want %d", st.Samples, 6*50*50)
	}

	wantZR := 1.0 / 35
	minX, maxX, minY, maxY := 90, -1, 60, -1
	for i := 0; i < buf.Len(); i++ {
		if buf.Glyph(i) != '*' {
			continue
		}
		if math.Abs(buf.Depth(i)-wantZR) > 1e-12 {
			t.Fatalf("front cell %d depth %f, want %f", i, buf.Depth(i), wantZR)
		}
		x, y := i%90, i/90
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	if minX != 36 || maxX != 53 || minY != 21 || maxY != 38 {
		t.Fatalf("front block = x[%d,%d] y[%d,%d], want x[36,53] y[21,38]", minX, maxX, minY, maxY)
	}

	// Block is solid and nothing behind it shows through
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if g := buf.Glyph(y*90 + x); g != '*' {
				t.Errorf("cell (%d,%d) = %q inside front block", x, y, g)
			}
		}
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	if cx < 43 || cx > 47 || cy < 28 || cy > 32 {
		t.Errorf("front block centred at (%d,%d), want near (45,30)", cx, cy)
	}
}

func TestDepthInvariant(t *testing.T) {
	angles := []vmath.Angles{
		{},
		{A: 0.35, B: 0.35, C: 0.07},
		{A: 2.1, B: 2.1, C: 0.42},
		{A: 5.0, B: -1.3, C: 3.3},
	}

	for _, a := range angles {
		s := newTestSampler()
		buf := NewFrameBuffer(90, 60)
		s.SampleCube(buf, a)

		basis := vmath.NewBasis(a)
		n := s.SweepCount()
		for _, f := range CubeFaces {
			for iu := 0; iu < n; iu++ {
				for iv := 0; iv < n; iv++ {
					u := -s.HalfWidth + float64(iu)*s.Step
					v := -s.HalfWidth + float64(iv)*s.Step
					p := s.Projector.Project(basis.Rotate(f.Point(u, v, s.HalfWidth)))
					if !p.Finite() || p.Index < 0 || p.Index >= buf.Len() {
						continue
					}
					if p.ZR > buf.Depth(p.Index) {
						t.Fatalf("angles %+v: %s sample at %d has depth %f above stored %f",
							a, f.Name, p.Index, p.ZR, buf.Depth(p.Index))
					}
				}
			}
		}
	}
}

func TestOffBufferSamplesDropped(t *testing.T) {
	s := newTestSampler()
	s.Projector.OffsetY = 1000
	buf := NewFrameBuffer(90, 60)

	st := s.SampleCube(buf, vmath.Angles{A: 0.4, B: 0.4, C: 0.1})
	if st.OffBuffer != st.Samples || st.Written != 0 {
		t.Fatalf("stats = %+v, want every sample off-buffer", st)
	}
	for i := 0; i < buf.Len(); i++ {
		if buf.Depth(i) != 0 || buf.Glyph(i) != Blank {
			t.Fatalf("cell %d mutated by off-buffer sample", i)
		}
	}
}

func TestNonFiniteSamplesDropped(t *testing.T) {
	s := newTestSampler()
	s.Projector.Distance = 15
	buf := NewFrameBuffer(90, 60)

	basis := vmath.NewBasis(vmath.Angles{})
	st := s.SampleFace(buf, &basis, CubeFaces[0])
	if st.NonFinite != st.Samples {
		t.Fatalf("stats = %+v, want every front sample non-finite", st)
	}
	for i := 0; i < buf.Len(); i++ {
		if buf.Glyph(i) != Blank {
			t.Fatalf("cell %d written from non-finite sample", i)
		}
	}
}

func TestStatsAccountForEverySample(t *testing.T) {
	s := newTestSampler()
	buf := NewFrameBuffer(90, 60)
	st := s.SampleCube(buf, vmath.Angles{A: 1, B: 1, C: 0.2})

	if sum := st.Written + st.OffBuffer + st.NonFinite + st.Occluded; sum != st.Samples {
		t.Errorf("outcomes sum to %d, want %d", sum, st.Samples)
	}
	if st.Written == 0 || st.Occluded == 0 {
		t.Errorf("stats = %+v, want both written and occluded samples", st)
	}
}

func TestRenderedRowSeparators(t *testing.T) {
	s := newTestSampler()
	buf := NewFrameBuffer(90, 60)
	s.SampleCube(buf, vmath.Angles{A: 0.9, B: 0.9, C: 0.18})

	frame := buf.AppendFrame(nil)
	if len(frame) != 90*60 {
		t.Fatalf("frame length %d, want %d", len(frame), 90*60)
	}
	for k, c := range frame {
		if k%90 == 0 {
			if c != RowSeparator {
				t.Fatalf("index %d = %q, want row separator", k, c)
			}
		} else if c == RowSeparator {
			t.Fatalf("unexpected separator at %d", k)
		}
	}
}

func BenchmarkSampleCube(b *testing.B) {
	s := newTestSampler()
	buf := NewFrameBuffer(90, 60)
	a := vmath.Angles{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		s.SampleCube(buf, a)
		a = a.Advance(0.05, 0.05, 0.01)
	}
}
