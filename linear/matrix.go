// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M2 is a column-major 2x2 matrix of float32.
type M2 [2]V2

// Named M2 values.
// These must not be modified.
var (
	IdentM2 = M2{IV2, JV2}
	ZeroM2  = M2{}
)

// NewM2 returns the matrix whose elements are given in
// row-major order.
func NewM2(m00, m01, m10, m11 float32) M2 {
	return M2{
		{m00, m10},
		{m01, m11},
	}
}

// ColsM2 returns the matrix whose columns are c0 and c1.
func ColsM2(c0, c1 V2) M2 { return M2{c0, c1} }

// RowsM2 returns the matrix whose rows are r0 and r1.
// It is slower than ColsM2 since it must transpose.
func RowsM2(r0, r1 V2) M2 { return TransposeM2(M2{r0, r1}) }

// AddM2 returns l + r.
func AddM2(l, r M2) (m M2) {
	for i := range m {
		m[i] = AddV2(l[i], r[i])
	}
	return
}

// AddSM2 returns n with s added to every element.
func AddSM2(n M2, s float32) (m M2) {
	for i := range m {
		m[i] = AddSV2(n[i], s)
	}
	return
}

// SubM2 returns l - r.
func SubM2(l, r M2) (m M2) {
	for i := range m {
		m[i] = SubV2(l[i], r[i])
	}
	return
}

// SubSM2 returns n with s subtracted from every element.
func SubSM2(n M2, s float32) (m M2) {
	for i := range m {
		m[i] = SubSV2(n[i], s)
	}
	return
}

// MulM2V returns m ⋅ v.
func MulM2V(m M2, v V2) (u V2) {
	rows := TransposeM2(m)
	for i := range u {
		u[i] = DotV2(rows[i], v)
	}
	return
}

// MulM2 returns l ⋅ r.
func MulM2(l, r M2) (m M2) {
	for i := range m {
		m[i] = MulM2V(l, r[i])
	}
	return
}

// TransposeM2 returns the transpose of n.
func TransposeM2(n M2) M2 {
	return M2{
		{n[0][0], n[1][0]},
		{n[0][1], n[1][1]},
	}
}

// DetM2 returns the determinant of n.
func DetM2(n M2) float32 { return n[0][0]*n[1][1] - n[1][0]*n[0][1] }

// InvertM2 returns the inverse of n.
func InvertM2(n M2) M2 {
	idet := 1 / DetM2(n)
	return M2{
		{n[1][1] * idet, -n[0][1] * idet},
		{-n[1][0] * idet, n[0][0] * idet},
	}
}

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// Named M3 values.
// These must not be modified.
var (
	IdentM3 = M3{IV3, JV3, KV3}
	ZeroM3  = M3{}
)

// NewM3 returns the matrix whose elements are given in
// row-major order.
func NewM3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) M3 {
	return M3{
		{m00, m10, m20},
		{m01, m11, m21},
		{m02, m12, m22},
	}
}

// ColsM3 returns the matrix whose columns are c0, c1 and c2.
func ColsM3(c0, c1, c2 V3) M3 { return M3{c0, c1, c2} }

// RowsM3 returns the matrix whose rows are r0, r1 and r2.
// It is slower than ColsM3 since it must transpose.
func RowsM3(r0, r1, r2 V3) M3 { return TransposeM3(M3{r0, r1, r2}) }

// AddM3 returns l + r.
func AddM3(l, r M3) (m M3) {
	for i := range m {
		m[i] = AddV3(l[i], r[i])
	}
	return
}

// AddSM3 returns n with s added to every element.
func AddSM3(n M3, s float32) (m M3) {
	for i := range m {
		m[i] = AddSV3(n[i], s)
	}
	return
}

// SubM3 returns l - r.
func SubM3(l, r M3) (m M3) {
	for i := range m {
		m[i] = SubV3(l[i], r[i])
	}
	return
}

// SubSM3 returns n with s subtracted from every element.
func SubSM3(n M3, s float32) (m M3) {
	for i := range m {
		m[i] = SubSV3(n[i], s)
	}
	return
}

// MulM3V returns m ⋅ v.
func MulM3V(m M3, v V3) (u V3) {
	rows := TransposeM3(m)
	for i := range u {
		u[i] = DotV3(rows[i], v)
	}
	return
}

// MulM3 returns l ⋅ r.
func MulM3(l, r M3) (m M3) {
	for i := range m {
		m[i] = MulM3V(l, r[i])
	}
	return
}

// TransposeM3 returns the transpose of n.
func TransposeM3(n M3) (m M3) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
	return
}

// DetM3 returns the determinant of n.
func DetM3(n M3) float32 {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	return n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2
}

// InvertM3 returns the inverse of n.
func InvertM3(n M3) (m M3) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	idet := 1 / (n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2)
	m[0][0] = s0 * idet
	m[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	m[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	m[1][0] = -s1 * idet
	m[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	m[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	m[2][0] = s2 * idet
	m[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	m[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	return
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// Named M4 values.
// These must not be modified.
var (
	IdentM4 = M4{IV4, JV4, KV4, LV4}
	ZeroM4  = M4{}
)

// NewM4 returns the matrix whose elements are given in
// row-major order.
func NewM4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) M4 {
	return M4{
		{m00, m10, m20, m30},
		{m01, m11, m21, m31},
		{m02, m12, m22, m32},
		{m03, m13, m23, m33},
	}
}

// ColsM4 returns the matrix whose columns are c0, c1, c2 and c3.
func ColsM4(c0, c1, c2, c3 V4) M4 { return M4{c0, c1, c2, c3} }

// RowsM4 returns the matrix whose rows are r0, r1, r2 and r3.
// It is slower than ColsM4 since it must transpose.
func RowsM4(r0, r1, r2, r3 V4) M4 { return TransposeM4(M4{r0, r1, r2, r3}) }

// AddM4 returns l + r.
func AddM4(l, r M4) (m M4) {
	for i := range m {
		m[i] = AddV4(l[i], r[i])
	}
	return
}

// AddSM4 returns n with s added to every element.
func AddSM4(n M4, s float32) (m M4) {
	for i := range m {
		m[i] = AddSV4(n[i], s)
	}
	return
}

// SubM4 returns l - r.
func SubM4(l, r M4) (m M4) {
	for i := range m {
		m[i] = SubV4(l[i], r[i])
	}
	return
}

// SubSM4 returns n with s subtracted from every element.
func SubSM4(n M4, s float32) (m M4) {
	for i := range m {
		m[i] = SubSV4(n[i], s)
	}
	return
}

// MulM4V returns m ⋅ v.
// TODO: Switch to column accumulation (bMulColumns) if
// BenchmarkMulM4V shows it is faster.
func MulM4V(m M4, v V4) (u V4) {
	rows := TransposeM4(m)
	for i := range u {
		u[i] = DotV4(rows[i], v)
	}
	return
}

// MulM4 returns l ⋅ r.
func MulM4(l, r M4) (m M4) {
	for i := range m {
		m[i] = MulM4V(l, r[i])
	}
	return
}

// TransposeM4 returns the transpose of n.
func TransposeM4(n M4) (m M4) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
	return
}

// DetM4 returns the determinant of n.
func DetM4(n M4) float32 {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// InvertM4 returns the inverse of n.
func InvertM4(n M4) (m M4) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	m[0][0] = (c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet
	m[0][1] = (-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet
	m[0][2] = (s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet
	m[0][3] = (-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet
	m[1][0] = (-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet
	m[1][1] = (c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet
	m[1][2] = (-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet
	m[1][3] = (s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet
	m[2][0] = (c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet
	m[2][1] = (-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet
	m[2][2] = (s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet
	m[2][3] = (-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet
	m[3][0] = (-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet
	m[3][1] = (c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet
	m[3][2] = (-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet
	m[3][3] = (s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet
	return
}
