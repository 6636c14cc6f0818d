package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used by the rasterizer hot path
type Vec3F struct {
	X, Y, Z float64
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// ApproxEqual reports whether a and b differ by at most eps on every axis
func ApproxEqual(a, b Vec3F, eps float64) bool {
	d := V3FSub(a, b)
	return math.Abs(d.X) <= eps && math.Abs(d.Y) <= eps && math.Abs(d.Z) <= eps
}
