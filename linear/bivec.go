// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Bivec3 is a 3D bivector of float32.
// B01, B02 and B12 are the coefficients of the i∧j, i∧k
// and j∧k planes, respectively.
type Bivec3 struct {
	B01, B02, B12 float32
}

// Wedge returns u ∧ v.
// Wedge(u, v) is -Wedge(v, u), and Wedge(u, u) is zero.
func Wedge(u, v V3) Bivec3 {
	return Bivec3{
		B01: u[0]*v[1] - u[1]*v[0],
		B02: u[0]*v[2] - u[2]*v[0],
		B12: u[1]*v[2] - u[2]*v[1],
	}
}

// AddB3 returns b + c.
func AddB3(b, c Bivec3) Bivec3 {
	return Bivec3{b.B01 + c.B01, b.B02 + c.B02, b.B12 + c.B12}
}

// SubB3 returns b - c.
func SubB3(b, c Bivec3) Bivec3 {
	return Bivec3{b.B01 - c.B01, b.B02 - c.B02, b.B12 - c.B12}
}

// ScaleB3 returns s ⋅ b.
func ScaleB3(s float32, b Bivec3) Bivec3 {
	return Bivec3{s * b.B01, s * b.B02, s * b.B12}
}

// LenSqB3 returns the squared magnitude of b.
func LenSqB3(b Bivec3) float32 { return b.B01*b.B01 + b.B02*b.B02 + b.B12*b.B12 }

// LenB3 returns the magnitude of b.
// It is the area of the parallelogram spanned by the
// vectors that produced b.
func LenB3(b Bivec3) float32 { return math32.Sqrt(LenSqB3(b)) }

// NormB3 returns b normalized.
// b must have non-zero magnitude.
func NormB3(b Bivec3) Bivec3 {
	l := LenB3(b)
	return Bivec3{b.B01 / l, b.B02 / l, b.B12 / l}
}
