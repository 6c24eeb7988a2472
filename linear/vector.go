// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Vectors and matrices are fixed-size float32 arrays that are
// passed and returned by value. Matrices are column-major.
// Operations that divide (normalization, inversion, projection)
// never fail: degenerate input yields IEEE-754 Inf or NaN
// components, which then propagate through further arithmetic.
package linear

import (
	"github.com/chewxy/math32"
)

// V2 is a 2-component vector of float32.
type V2 [2]float32

// Named V2 values.
// These must not be modified.
var (
	ZeroV2   = V2{0, 0}
	OneV2    = V2{1, 1}
	OneNegV2 = V2{-1, -1}
	IV2      = V2{1, 0}
	JV2      = V2{0, 1}
	INegV2   = V2{-1, 0}
	JNegV2   = V2{0, -1}
)

// AddV2 returns v + w.
func AddV2(v, w V2) (u V2) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// AddSV2 returns v with s added to every component.
func AddSV2(v V2, s float32) (u V2) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubV2 returns v - w.
func SubV2(v, w V2) (u V2) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// SubSV2 returns v with s subtracted from every component.
func SubSV2(v V2, s float32) (u V2) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// ScaleV2 returns s ⋅ v.
func ScaleV2(s float32, v V2) (u V2) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV2 returns v / s.
func DivV2(v V2, s float32) (u V2) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// DotV2 returns v ⋅ w.
func DotV2(v, w V2) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSqV2 returns the squared length of v.
func LenSqV2(v V2) float32 { return DotV2(v, v) }

// LenV2 returns the length of v.
func LenV2(v V2) float32 { return math32.Sqrt(LenSqV2(v)) }

// AbsV2 returns the absolute value of each component of v.
func AbsV2(v V2) (u V2) {
	for i := range u {
		u[i] = math32.Abs(v[i])
	}
	return
}

// DistV2 returns the distance between v and w.
func DistV2(v, w V2) float32 { return LenV2(SubV2(v, w)) }

// DistSqV2 returns the squared distance between v and w.
func DistSqV2(v, w V2) float32 { return LenSqV2(SubV2(v, w)) }

// NormV2 returns v normalized.
// v must have non-zero length.
func NormV2(v V2) V2 { return DivV2(v, LenV2(v)) }

// NormOrNaNV2 returns v normalized, or a vector of NaNs
// if v has zero length.
func NormOrNaNV2(v V2) V2 {
	if l := LenV2(v); l > 0 {
		return DivV2(v, l)
	}
	nan := math32.NaN()
	return V2{nan, nan}
}

// MidV2 returns the midpoint between v and w.
func MidV2(v, w V2) V2 { return ScaleV2(0.5, AddV2(v, w)) }

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Named V3 values.
// These must not be modified.
var (
	ZeroV3   = V3{0, 0, 0}
	OneV3    = V3{1, 1, 1}
	OneNegV3 = V3{-1, -1, -1}
	IV3      = V3{1, 0, 0}
	JV3      = V3{0, 1, 0}
	KV3      = V3{0, 0, 1}
	INegV3   = V3{-1, 0, 0}
	JNegV3   = V3{0, -1, 0}
	KNegV3   = V3{0, 0, -1}
)

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// AddSV3 returns v with s added to every component.
func AddSV3(v V3, s float32) (u V3) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// SubSV3 returns v with s subtracted from every component.
func SubSV3(v V3, s float32) (u V3) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV3 returns v / s.
func DivV3(v V3, s float32) (u V3) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSqV3 returns the squared length of v.
func LenSqV3(v V3) float32 { return DotV3(v, v) }

// LenV3 returns the length of v.
func LenV3(v V3) float32 { return math32.Sqrt(LenSqV3(v)) }

// AbsV3 returns the absolute value of each component of v.
func AbsV3(v V3) (u V3) {
	for i := range u {
		u[i] = math32.Abs(v[i])
	}
	return
}

// DistV3 returns the distance between v and w.
func DistV3(v, w V3) float32 { return LenV3(SubV3(v, w)) }

// DistSqV3 returns the squared distance between v and w.
func DistSqV3(v, w V3) float32 { return LenSqV3(SubV3(v, w)) }

// NormV3 returns v normalized.
// v must have non-zero length.
func NormV3(v V3) V3 { return DivV3(v, LenV3(v)) }

// NormOrNaNV3 returns v normalized, or a vector of NaNs
// if v has zero length.
func NormOrNaNV3(v V3) V3 {
	if l := LenV3(v); l > 0 {
		return DivV3(v, l)
	}
	nan := math32.NaN()
	return V3{nan, nan, nan}
}

// MidV3 returns the midpoint between v and w.
func MidV3(v, w V3) V3 { return ScaleV3(0.5, AddV3(v, w)) }

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Named V4 values.
// These must not be modified.
var (
	ZeroV4   = V4{0, 0, 0, 0}
	OneV4    = V4{1, 1, 1, 1}
	OneNegV4 = V4{-1, -1, -1, -1}
	IV4      = V4{1, 0, 0, 0}
	JV4      = V4{0, 1, 0, 0}
	KV4      = V4{0, 0, 1, 0}
	LV4      = V4{0, 0, 0, 1}
	INegV4   = V4{-1, 0, 0, 0}
	JNegV4   = V4{0, -1, 0, 0}
	KNegV4   = V4{0, 0, -1, 0}
	LNegV4   = V4{0, 0, 0, -1}
)

// AddV4 returns v + w.
func AddV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// AddSV4 returns v with s added to every component.
func AddSV4(v V4, s float32) (u V4) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubV4 returns v - w.
func SubV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// SubSV4 returns v with s subtracted from every component.
func SubSV4(v V4, s float32) (u V4) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float32, v V4) (u V4) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV4 returns v / s.
func DivV4(v V4, s float32) (u V4) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4(v, w V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSqV4 returns the squared length of v.
func LenSqV4(v V4) float32 { return DotV4(v, v) }

// LenV4 returns the length of v.
func LenV4(v V4) float32 { return math32.Sqrt(LenSqV4(v)) }

// AbsV4 returns the absolute value of each component of v.
func AbsV4(v V4) (u V4) {
	for i := range u {
		u[i] = math32.Abs(v[i])
	}
	return
}

// DistV4 returns the distance between v and w.
func DistV4(v, w V4) float32 { return LenV4(SubV4(v, w)) }

// DistSqV4 returns the squared distance between v and w.
func DistSqV4(v, w V4) float32 { return LenSqV4(SubV4(v, w)) }

// NormV4 returns v normalized.
// v must have non-zero length.
func NormV4(v V4) V4 { return DivV4(v, LenV4(v)) }

// NormOrNaNV4 returns v normalized, or a vector of NaNs
// if v has zero length.
func NormOrNaNV4(v V4) V4 {
	if l := LenV4(v); l > 0 {
		return DivV4(v, l)
	}
	nan := math32.NaN()
	return V4{nan, nan, nan, nan}
}

// MidV4 returns the midpoint between v and w.
func MidV4(v, w V4) V4 { return ScaleV4(0.5, AddV4(v, w)) }
