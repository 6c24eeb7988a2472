// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Rotor is a 3D rotor of float32.
// A normalized rotor represents a rotation of θ radians
// in the plane B, with A = cos(θ/2) and |B| = sin(θ/2).
type Rotor struct {
	A float32
	B Bivec3
}

// IdentRotor is the rotor that does not rotate.
// It must not be modified.
var IdentRotor = Rotor{A: 1}

// RotorFromV3 returns the rotor that rotates from onto to.
// from and to should be unit vectors.
// If they point in opposite directions, the rotation plane
// is undefined and every component of the result is NaN.
func RotorFromV3(from, to V3) Rotor {
	return NormRotor(Rotor{
		A: 1 + DotV3(from, to),
		B: Wedge(from, to),
	})
}

// RotorFromPlane returns the rotor that rotates by angle
// radians in plane.
// A positive angle rotates i towards j in the plane
// Wedge(IV3, JV3).
func RotorFromPlane(plane Bivec3, angle float32) Rotor {
	sin, cos := math32.Sincos(angle * 0.5)
	return Rotor{
		A: cos,
		B: ScaleB3(sin, NormB3(plane)),
	}
}

// DotRotor returns the inner product of p and q.
// It does not compose rotations (see MulRotor).
func DotRotor(p, q Rotor) float32 {
	return p.A*q.A + p.B.B01*q.B.B01 + p.B.B02*q.B.B02 + p.B.B12*q.B.B12
}

// LenSqRotor returns the squared length of r.
func LenSqRotor(r Rotor) float32 { return DotRotor(r, r) }

// LenRotor returns the length of r.
func LenRotor(r Rotor) float32 { return math32.Sqrt(LenSqRotor(r)) }

// NormRotor returns r normalized.
// r must have non-zero length.
func NormRotor(r Rotor) Rotor {
	l := LenRotor(r)
	return Rotor{
		A: r.A / l,
		B: Bivec3{r.B.B01 / l, r.B.B02 / l, r.B.B12 / l},
	}
}

// NormOrNaNRotor returns r normalized, or a rotor of NaNs
// if r has zero length.
func NormOrNaNRotor(r Rotor) Rotor {
	if LenRotor(r) > 0 {
		return NormRotor(r)
	}
	nan := math32.NaN()
	return Rotor{A: nan, B: Bivec3{nan, nan, nan}}
}

// ReverseRotor returns the reverse of r.
// For a normalized rotor, this is the inverse rotation.
func ReverseRotor(r Rotor) Rotor {
	return Rotor{A: r.A, B: ScaleB3(-1, r.B)}
}

// MulRotor returns the geometric product p ⋅ q.
// Rotating by the result is the same as rotating by p
// and then by q.
func MulRotor(p, q Rotor) (r Rotor) {
	r.A = p.A*q.A - p.B.B01*q.B.B01 - p.B.B02*q.B.B02 - p.B.B12*q.B.B12
	r.B.B01 = p.B.B01*q.A + p.A*q.B.B01 + p.B.B12*q.B.B02 - p.B.B02*q.B.B12
	r.B.B02 = p.B.B02*q.A + p.A*q.B.B02 - p.B.B12*q.B.B01 + p.B.B01*q.B.B12
	r.B.B12 = p.B.B12*q.A + p.A*q.B.B12 + p.B.B02*q.B.B01 - p.B.B01*q.B.B02
	return
}

// RotateV3 returns v rotated by r.
// r must be normalized.
func RotateV3(r Rotor, v V3) (u V3) {
	a, b := r.A, r.B
	// q = r̃ v
	q0 := a*v[0] - v[1]*b.B01 - v[2]*b.B02
	q1 := a*v[1] + v[0]*b.B01 - v[2]*b.B12
	q2 := a*v[2] + v[0]*b.B02 + v[1]*b.B12
	q012 := -v[0]*b.B12 + v[1]*b.B02 - v[2]*b.B01
	// u = q r
	u[0] = a*q0 - q1*b.B01 - q2*b.B02 - q012*b.B12
	u[1] = a*q1 + q0*b.B01 + q012*b.B02 - q2*b.B12
	u[2] = a*q2 - q012*b.B01 + q0*b.B02 + q1*b.B12
	return
}

// RotorM3 returns the rotation matrix of r.
// r must be normalized.
func RotorM3(r Rotor) M3 {
	return M3{
		RotateV3(r, IV3),
		RotateV3(r, JV3),
		RotateV3(r, KV3),
	}
}

// RotorM4 returns the homogeneous rotation matrix of r.
// r must be normalized.
func RotorM4(r Rotor) M4 {
	m := RotorM3(r)
	return M4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		LV4,
	}
}
