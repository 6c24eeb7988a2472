// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// ScaleM2 returns a matrix that scales by s.
func ScaleM2(s V2) M2 {
	return M2{
		{s[0], 0},
		{0, s[1]},
	}
}

// RotateM2 returns a matrix that rotates by angle radians.
func RotateM2(angle float32) M2 {
	sin, cos := math32.Sincos(angle)
	return M2{
		{cos, sin},
		{-sin, cos},
	}
}

// ScaleM3 returns a homogeneous 2D matrix that scales by s.
func ScaleM3(s V2) M3 {
	return M3{
		{s[0], 0, 0},
		{0, s[1], 0},
		KV3,
	}
}

// TranslateM3 returns a homogeneous 2D matrix that
// translates by t.
func TranslateM3(t V2) M3 {
	return M3{
		IV3,
		JV3,
		{t[0], t[1], 1},
	}
}

// RotateM3 returns a homogeneous 2D matrix that rotates
// by angle radians.
func RotateM3(angle float32) M3 {
	sin, cos := math32.Sincos(angle)
	return M3{
		{cos, sin, 0},
		{-sin, cos, 0},
		KV3,
	}
}

// ScaleM4 returns a homogeneous 3D matrix that scales by s.
func ScaleM4(s V3) M4 {
	return M4{
		{s[0], 0, 0, 0},
		{0, s[1], 0, 0},
		{0, 0, s[2], 0},
		LV4,
	}
}

// TranslateM4 returns a homogeneous 3D matrix that
// translates by t.
func TranslateM4(t V3) M4 {
	return M4{
		IV4,
		JV4,
		KV4,
		{t[0], t[1], t[2], 1},
	}
}

// RotateIM4 returns a matrix that rotates by angle radians
// around the i axis.
func RotateIM4(angle float32) M4 {
	sin, cos := math32.Sincos(angle)
	return M4{
		IV4,
		{0, cos, sin, 0},
		{0, -sin, cos, 0},
		LV4,
	}
}

// RotateJM4 returns a matrix that rotates by angle radians
// around the j axis.
func RotateJM4(angle float32) M4 {
	sin, cos := math32.Sincos(angle)
	return M4{
		{cos, 0, -sin, 0},
		JV4,
		{sin, 0, cos, 0},
		LV4,
	}
}

// RotateKM4 returns a matrix that rotates by angle radians
// around the k axis.
func RotateKM4(angle float32) M4 {
	sin, cos := math32.Sincos(angle)
	return M4{
		{cos, sin, 0, 0},
		{-sin, cos, 0, 0},
		KV4,
		LV4,
	}
}

// OrthoLH returns a left-handed orthographic projection.
// The view volume is mapped to [-1, 1] in x and y and
// to [0, 1] in z.
func OrthoLH(l, r, b, t, n, f float32) M4 {
	return M4{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, 1 / (f - n), 0},
		{-(r + l) / (r - l), -(t + b) / (t - b), -n / (f - n), 1},
	}
}

// OrthoRH returns a right-handed orthographic projection.
// The view volume is mapped to [-1, 1] in x and y and
// to [0, 1] in z.
func OrthoRH(l, r, b, t, n, f float32) M4 {
	return M4{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, -1 / (f - n), 0},
		{-(r + l) / (r - l), -(t + b) / (t - b), -n / (f - n), 1},
	}
}

func perspScale(fov, aspect float32) (w, h float32) {
	w = 1 / math32.Tan(fov*0.5)
	h = w * aspect
	return
}

// PerspLH returns a left-handed perspective projection.
// fov is the field of view in radians.
func PerspLH(fov, aspect, near, far float32) M4 {
	w, h := perspScale(fov, aspect)
	r := far / (far - near)
	return M4{
		{w, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, r, 1},
		{0, 0, -r * near, 0},
	}
}

// PerspRH returns a right-handed perspective projection.
// fov is the field of view in radians.
func PerspRH(fov, aspect, near, far float32) M4 {
	w, h := perspScale(fov, aspect)
	r := far / (far - near)
	return M4{
		{w, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, r, -1},
		{0, 0, r * near, 0},
	}
}

// InfPerspLH returns a left-handed perspective projection
// whose far plane is at infinity.
func InfPerspLH(fov, aspect, near float32) M4 {
	w, h := perspScale(fov, aspect)
	return M4{
		{w, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, 1, 1},
		{0, 0, -near, 0},
	}
}

// InfPerspRH returns a right-handed perspective projection
// whose far plane is at infinity.
func InfPerspRH(fov, aspect, near float32) M4 {
	w, h := perspScale(fov, aspect)
	return M4{
		{w, 0, 0, 0},
		{0, h, 0, 0},
		{0, 0, -1, -1},
		{0, 0, -near, 0},
	}
}
