// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package layout defines fixed float32 blocks that hold
// linear values in the order a shader expects them.
// Matrices are stored column-major.
package layout

import (
	"encoding/binary"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/gviegas/geom/linear"
)

// Frame is the layout of per-frame camera data.
// It is defined as follows:
//
//	[0:16]  | view-projection matrix
//	[16:32] | view matrix
//	[32:48] | projection matrix
type Frame [48]float32

// SetVP sets the view-projection matrix.
func (l *Frame) SetVP(m *linear.M4) { copyM4(l[:16], m) }

// SetV sets the view matrix.
func (l *Frame) SetV(m *linear.M4) { copyM4(l[16:32], m) }

// SetP sets the projection matrix.
func (l *Frame) SetP(m *linear.M4) { copyM4(l[32:48], m) }

// SetCamera sets the view and projection matrices, and
// the view-projection matrix derived from them.
func (l *Frame) SetCamera(view, proj *linear.M4) {
	vp := linear.MulM4(*proj, *view)
	l.SetVP(&vp)
	l.SetV(view)
	l.SetP(proj)
}

// Bytes returns l as little-endian bytes.
func (l *Frame) Bytes() []byte { return putFloats(l[:]) }

// Model is the layout of per-model transform data.
// It is defined as follows:
//
//	[0:16]  | world matrix
//	[16:28] | normal matrix (columns padded to 4 floats)
//	[28]    | rotor's scalar part
//	[29:32] | rotor's bivector part (B01, B02, B12)
type Model [32]float32

// SetWorld sets the world matrix.
func (l *Model) SetWorld(m *linear.M4) { copyM4(l[:16], m) }

// SetNormal sets the normal matrix.
func (l *Model) SetNormal(m *linear.M3) {
	for i := range m {
		copy(l[16+i*4:16+i*4+3], m[i][:])
		l[16+i*4+3] = 0
	}
}

// SetRotor sets the rotor.
func (l *Model) SetRotor(r *linear.Rotor) {
	l[28] = r.A
	l[29] = r.B.B01
	l[30] = r.B.B02
	l[31] = r.B.B12
}

// SetTransform sets the world matrix to T ⋅ R ⋅ S, where
// T translates by t, R rotates by r and S scales by s.
// The normal matrix and rotor are set to match.
// r must be normalized.
func (l *Model) SetTransform(t linear.V3, r linear.Rotor, s linear.V3) {
	w := linear.MulM4(linear.TranslateM4(t), linear.MulM4(linear.RotorM4(r), linear.ScaleM4(s)))
	l.SetWorld(&w)
	n := normalM3(&w)
	l.SetNormal(&n)
	l.SetRotor(&r)
}

// Bytes returns l as little-endian bytes.
func (l *Model) Bytes() []byte { return putFloats(l[:]) }

// normalM3 returns the inverse transpose of the upper-left
// 3x3 of m.
func normalM3(m *linear.M4) linear.M3 {
	var n linear.M3
	for i := range n {
		copy(n[i][:], m[i][:3])
	}
	return linear.TransposeM3(linear.InvertM3(n))
}

func copyM4(dst []float32, m *linear.M4) {
	copy(dst, unsafe.Slice((*float32)(unsafe.Pointer(m)), 16))
}

func putFloats(s []float32) []byte {
	b := make([]byte, len(s)*4)
	for i, x := range s {
		binary.LittleEndian.PutUint32(b[i*4:], math32.Float32bits(x))
	}
	return b
}
