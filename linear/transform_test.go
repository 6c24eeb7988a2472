// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestScaleTranslate(t *testing.T) {
	if m := ScaleM2(V2{2, 3}); MulM2V(m, OneV2) != (V2{2, 3}) {
		t.Fatalf("ScaleM2\nhave %v\nwant [2 3]", MulM2V(m, OneV2))
	}
	if m := ScaleM3(V2{2, 3}); m != (M3{{2, 0, 0}, {0, 3, 0}, {0, 0, 1}}) {
		t.Fatalf("ScaleM3\nhave %v\nwant %v", m, M3{{2, 0, 0}, {0, 3, 0}, {0, 0, 1}})
	}
	if m := TranslateM3(V2{-4, 5}); m != (M3{IV3, JV3, {-4, 5, 1}}) {
		t.Fatalf("TranslateM3\nhave %v\nwant %v", m, M3{IV3, JV3, {-4, 5, 1}})
	}
	p := V3{1, 1, 1}
	if v := MulM3V(TranslateM3(V2{-4, 5}), p); v != (V3{-3, 6, 1}) {
		t.Fatalf("TranslateM3 * p\nhave %v\nwant [-3 6 1]", v)
	}
	if v := MulM3V(TranslateM3(V2{-4, 5}), V3{1, 1, 0}); v != (V3{1, 1, 0}) {
		t.Fatalf("TranslateM3 * dir\nhave %v\nwant [1 1 0]", v)
	}
	if m := ScaleM4(V3{2, 3, 4}); m != (M4{{2}, {1: 3}, {2: 4}, LV4}) {
		t.Fatalf("ScaleM4\nhave %v\nwant %v", m, M4{{2}, {1: 3}, {2: 4}, LV4})
	}
	if m := TranslateM4(V3{1, 2, 3}); m != (M4{IV4, JV4, KV4, {1, 2, 3, 1}}) {
		t.Fatalf("TranslateM4\nhave %v\nwant %v", m, M4{IV4, JV4, KV4, {1, 2, 3, 1}})
	}
}

func TestRotate(t *testing.T) {
	const delta = 1e-6
	a := math32.Pi / 2

	assert.InDeltaSlice(t, JV2[:], sl2(MulM2V(RotateM2(a), IV2)), delta, "RotateM2")
	assert.InDeltaSlice(t, sl3(V3{0, 1, 1}), sl3(MulM3V(RotateM3(a), V3{1, 0, 1})), delta, "RotateM3")

	// Each rotation fixes its own axis.
	if v := MulM4V(RotateIM4(0.3), IV4); v != IV4 {
		t.Fatalf("RotateIM4\nhave %v\nwant %v", v, IV4)
	}
	if v := MulM4V(RotateJM4(0.3), JV4); v != JV4 {
		t.Fatalf("RotateJM4\nhave %v\nwant %v", v, JV4)
	}
	if v := MulM4V(RotateKM4(0.3), KV4); v != KV4 {
		t.Fatalf("RotateKM4\nhave %v\nwant %v", v, KV4)
	}

	// Right-hand rule: i → j, j → k, k → i.
	assert.InDeltaSlice(t, KV4[:], sl4(MulM4V(RotateIM4(a), JV4)), delta, "RotateIM4")
	assert.InDeltaSlice(t, IV4[:], sl4(MulM4V(RotateJM4(a), KV4)), delta, "RotateJM4")
	assert.InDeltaSlice(t, JV4[:], sl4(MulM4V(RotateKM4(a), IV4)), delta, "RotateKM4")

	sin, cos := math32.Sincos(0.3)
	if m := RotateKM4(0.3); m != (M4{{cos, sin, 0, 0}, {-sin, cos, 0, 0}, KV4, LV4}) {
		t.Fatalf("RotateKM4\nhave %v\nwant %v", m, M4{{cos, sin, 0, 0}, {-sin, cos, 0, 0}, KV4, LV4})
	}
}

func TestOrtho(t *testing.T) {
	l, r, b, tp, n, f := float32(-2), float32(2), float32(-1), float32(1), float32(1), float32(3)

	m := OrthoLH(l, r, b, tp, n, f)
	want := M4{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (tp - b), 0, 0},
		{0, 0, 1 / (f - n), 0},
		{-(r + l) / (r - l), -(tp + b) / (tp - b), -n / (f - n), 1},
	}
	if m != want {
		t.Fatalf("OrthoLH\nhave %v\nwant %v", m, want)
	}
	if v := MulM4V(m, V4{r, tp, n, 1}); v != (V4{1, 1, 0, 1}) {
		t.Fatalf("OrthoLH * near\nhave %v\nwant [1 1 0 1]", v)
	}
	if v := MulM4V(m, V4{l, b, f, 1}); v != (V4{-1, -1, 1, 1}) {
		t.Fatalf("OrthoLH * far\nhave %v\nwant [-1 -1 1 1]", v)
	}

	m = OrthoRH(l, r, b, tp, n, f)
	want[2][2] = -1 / (f - n)
	if m != want {
		t.Fatalf("OrthoRH\nhave %v\nwant %v", m, want)
	}
	if v := MulM4V(m, V4{r, tp, -n, 1}); v != (V4{1, 1, 0, 1}) {
		t.Fatalf("OrthoRH * near\nhave %v\nwant [1 1 0 1]", v)
	}
	if v := MulM4V(m, V4{l, b, -f, 1}); v != (V4{-1, -1, 1, 1}) {
		t.Fatalf("OrthoRH * far\nhave %v\nwant [-1 -1 1 1]", v)
	}
}

func TestPersp(t *testing.T) {
	fov, aspect, near, far := float32(math32.Pi/3), float32(1.5), float32(0.1), float32(100)
	w := 1 / math32.Tan(fov*0.5)
	h := w * aspect
	r := far / (far - near)

	if m := PerspLH(fov, aspect, near, far); m != (M4{{w}, {1: h}, {2: r, 3: 1}, {2: -r * near}}) {
		t.Fatalf("PerspLH\nhave %v\nwant %v", m, M4{{w}, {1: h}, {2: r, 3: 1}, {2: -r * near}})
	}
	if m := PerspRH(fov, aspect, near, far); m != (M4{{w}, {1: h}, {2: r, 3: -1}, {2: r * near}}) {
		t.Fatalf("PerspRH\nhave %v\nwant %v", m, M4{{w}, {1: h}, {2: r, 3: -1}, {2: r * near}})
	}
	if m := InfPerspLH(fov, aspect, near); m != (M4{{w}, {1: h}, {2: 1, 3: 1}, {2: -near}}) {
		t.Fatalf("InfPerspLH\nhave %v\nwant %v", m, M4{{w}, {1: h}, {2: 1, 3: 1}, {2: -near}})
	}
	if m := InfPerspRH(fov, aspect, near); m != (M4{{w}, {1: h}, {2: -1, 3: -1}, {2: -near}}) {
		t.Fatalf("InfPerspRH\nhave %v\nwant %v", m, M4{{w}, {1: h}, {2: -1, 3: -1}, {2: -near}})
	}

	// Depth of the near and far planes after the perspective divide.
	m := PerspLH(fov, aspect, near, far)
	v := MulM4V(m, V4{0, 0, near, 1})
	assert.InDelta(t, 0, v[2]/v[3], 1e-6, "PerspLH near depth")
	v = MulM4V(m, V4{0, 0, far, 1})
	assert.InDelta(t, 1, v[2]/v[3], 1e-6, "PerspLH far depth")
}

func TestProjDegenerate(t *testing.T) {
	m := OrthoLH(0, 0, -1, 1, 0, 1)
	if !math32.IsInf(m[0][0], 1) || !math32.IsNaN(m[3][0]) {
		t.Fatalf("OrthoLH (r == l)\nhave %v\nwant +Inf and NaN in the first row", m)
	}
	m = PerspLH(1, 1, 5, 5)
	if !math32.IsInf(m[2][2], 1) {
		t.Fatalf("PerspLH (near == far)\nhave %v\nwant +Inf at [2][2]", m)
	}
}
