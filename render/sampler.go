package render

import (
	"github.com/lixenwraith/ascii-cube/vmath"
)

// SampleStats counts the outcome of every sample in a pass
type SampleStats struct {
	Samples   int
	Written   int
	OffBuffer int
	NonFinite int
	Occluded  int
}

func (s *SampleStats) add(o SampleStats) {
	s.Samples += o.Samples
	s.Written += o.Written
	s.OffBuffer += o.OffBuffer
	s.NonFinite += o.NonFinite
	s.Occluded += o.Occluded
}

// Sampler rasterizes cube faces as dense point clouds into a FrameBuffer
type Sampler struct {
	Projector Projector
	HalfWidth float64
	Step      float64

	// Last holds the outcome counts of the most recent Draw
	Last SampleStats
}

// SweepCount returns the number of grid positions per swept axis in [-h, +h)
func (s *Sampler) SweepCount() int {
	if s.Step <= 0 || s.HalfWidth <= 0 {
		return 0
	}
	n := 0
	for -s.HalfWidth+float64(n)*s.Step < s.HalfWidth {
		n++
	}
	return n
}

// SampleFace sweeps one face and depth-tests every sample into buf
func (s *Sampler) SampleFace(buf *FrameBuffer, basis *vmath.Basis, f Face) SampleStats {
	var st SampleStats
	h := s.HalfWidth
	n := s.SweepCount()

	for iu := 0; iu < n; iu++ {
		u := -h + float64(iu)*s.Step
		for iv := 0; iv < n; iv++ {
			v := -h + float64(iv)*s.Step
			st.Samples++

			p := s.Projector.Project(basis.Rotate(f.Point(u, v, h)))
			switch {
			case !p.Finite():
				st.NonFinite++
			case p.Index < 0 || p.Index >= buf.Len():
				st.OffBuffer++
			case buf.Plot(p.Index, p.ZR, f.Glyph):
				st.Written++
			default:
				st.Occluded++
			}
		}
	}
	return st
}

// SampleCube draws all six faces for the given angles
func (s *Sampler) SampleCube(buf *FrameBuffer, a vmath.Angles) SampleStats {
	basis := vmath.NewBasis(a)
	var st SampleStats
	for _, f := range CubeFaces {
		st.add(s.SampleFace(buf, &basis, f))
	}
	return st
}

// Draw samples the whole cube into buf and records the stats in Last
func (s *Sampler) Draw(buf *FrameBuffer, a vmath.Angles) {
	s.Last = s.SampleCube(buf, a)
}
