package render

import (
	"math"

	"github.com/lixenwraith/ascii-cube/vmath"
)

// Projector maps rotated model-space points to buffer coordinates
// The camera looks along +Z from Distance units behind the origin
type Projector struct {
	Width, Height    int
	OffsetX, OffsetY int
	Distance         float64
	Scale            float64 // depth-scale constant K
}

// Projected is a transient sample after rotation and projection
type Projected struct {
	X, Y, Z float64 // rotated model coordinates
	ZR      float64 // reciprocal depth after camera offset
	XP, YP  int
	Index   int
}

// Finite reports whether the reciprocal depth is usable for depth testing
func (p Projected) Finite() bool {
	return !math.IsNaN(p.ZR) && !math.IsInf(p.ZR, 0)
}

// Project performs the perspective divide on a rotated point
// Screen coordinates are truncated toward zero, not rounded
func (pr *Projector) Project(v vmath.Vec3F) Projected {
	zr := 1 / (v.Z + pr.Distance)

	xp := int(float64(pr.Width/2+pr.OffsetX) + pr.Scale*zr*v.X)
	yp := int(float64(pr.Height/2+pr.OffsetY) + pr.Scale*zr*v.Y)

	return Projected{
		X: v.X, Y: v.Y, Z: v.Z,
		ZR:    zr,
		XP:    xp,
		YP:    yp,
		Index: yp*pr.Width + xp,
	}
}
