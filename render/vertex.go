package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ascii-cube/vmath"
)

// VertexGlyph marks a projected cube corner
const VertexGlyph = '#'

// Unit cube corners, front face first
var cubeVertices = [8]mgl64.Vec4{
	{-1, -1, 1, 1},
	{1, -1, 1, 1},
	{1, 1, 1, 1},
	{-1, 1, 1, 1},
	{-1, -1, -1, 1},
	{-1, 1, -1, 1},
	{1, -1, -1, 1},
	{1, 1, -1, 1},
}

// VertexPipeline projects the eight cube corners through a combined
// rotation and perspective matrix and plots them without depth testing
type VertexPipeline struct {
	FovY      float64 // radians
	Near, Far float64
	Rate      float64
	Theta     float64
}

// NewVertexPipeline returns the pipeline with its built-in camera settings
func NewVertexPipeline(rate float64) *VertexPipeline {
	return &VertexPipeline{
		FovY: mgl64.DegToRad(60),
		Near: 0.1,
		Far:  50,
		Rate: rate,
	}
}

// Transform returns Rx(θ)·Ry(θ)·Rz(θ)·P for the current angle
func (vp *VertexPipeline) Transform(aspect float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(vp.Theta).
		Mul4(mgl64.HomogRotate3DY(vp.Theta)).
		Mul4(mgl64.HomogRotate3DZ(vp.Theta)).
		Mul4(mgl64.Perspective(vp.FovY, aspect, vp.Near, vp.Far))
}

// Points returns the screen positions of the visible corners
// Corners with a zero homogeneous w are skipped
func (vp *VertexPipeline) Points(width, height int) [][2]int {
	m := vp.Transform(float64(width) / float64(height))

	xs := make([]float64, 0, len(cubeVertices))
	ys := make([]float64, 0, len(cubeVertices))
	minX, minY := math.Inf(1), math.Inf(1)
	for _, v := range cubeVertices {
		c := m.Mul4x1(v)
		if c.W() == 0 {
			continue
		}
		x := c.X() / c.W() * float64(width)
		y := c.Y() / c.W() * float64(height)
		xs = append(xs, x)
		ys = append(ys, y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
	}

	// Shift by the magnitude of the minimum so the leftmost corner lands near the edge
	minX, minY = math.Abs(minX), math.Abs(minY)
	pts := make([][2]int, len(xs))
	for i := range xs {
		pts[i] = [2]int{int(xs[i] + minX), int(ys[i] + minY)}
	}
	return pts
}

// Draw plots the corners into buf and advances θ
// The pipeline keeps its own single angle; θ restarts from 0 once it has passed a full turn
func (vp *VertexPipeline) Draw(buf *FrameBuffer, _ vmath.Angles) {
	if vp.Theta > 2*math.Pi {
		vp.Theta = 0
	}

	w, h := buf.Size()
	for _, p := range vp.Points(w, h) {
		buf.Put(p[0], p[1], VertexGlyph)
	}
	vp.Theta += vp.Rate
}
