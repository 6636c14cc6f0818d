package vmath

import "math"

// Angles is the rotation state about the X, Y and Z axes in radians
// Values grow without wrapping, only their sines and cosines are used
type Angles struct {
	A, B, C float64
}

// Advance returns the angles shifted by the per-axis rates
func (a Angles) Advance(rateA, rateB, rateC float64) Angles {
	return Angles{A: a.A + rateA, B: a.B + rateB, C: a.C + rateC}
}

// Basis holds the sines and cosines of an Angles triple
// Computed once per frame and shared by every sample
type Basis struct {
	sA, cA float64
	sB, cB float64
	sC, cC float64
}

// NewBasis precomputes the trigonometric terms for a
func NewBasis(a Angles) Basis {
	var b Basis
	b.sA, b.cA = math.Sincos(a.A)
	b.sB, b.cB = math.Sincos(a.B)
	b.sC, b.cC = math.Sincos(a.C)
	return b
}

// Rotate applies rotation about X by A, then Y by B, then Z by C (Rz·Ry·Rx·p)
// Each output axis is a single closed-form expression of the basis terms
func (b *Basis) Rotate(p Vec3F) Vec3F {
	i, j, k := p.X, p.Y, p.Z
	return Vec3F{
		X: i*b.cB*b.cC + j*(b.sA*b.sB*b.cC-b.cA*b.sC) + k*(b.cA*b.sB*b.cC+b.sA*b.sC),
		Y: i*b.cB*b.sC + j*(b.sA*b.sB*b.sC+b.cA*b.cC) + k*(b.cA*b.sB*b.sC-b.sA*b.cC),
		Z: -i*b.sB + j*b.sA*b.cB + k*b.cA*b.cB,
	}
}

// Rotate is the one-shot form of Basis.Rotate
func Rotate(a Angles, p Vec3F) Vec3F {
	b := NewBasis(a)
	return b.Rotate(p)
}
