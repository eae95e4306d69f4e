package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[3] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if m.Transpose() != m {
		t.Error("Identity should equal its transpose")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()

	if got := m.Mul(id); got != m {
		t.Errorf("M * I should equal M, got %v", got)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * M should equal M, got %v", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Row-major: translation sits in the last column
	if m.At(0, 3) != 5 || m.At(1, 3) != 10 || m.At(2, 3) != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[3], m[7], m[11])
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(5, 10, 15)
	tr := m.Transpose()

	// Column-major slots for translation after transposing
	if tr[12] != 5 || tr[13] != 10 || tr[14] != 15 {
		t.Errorf("Transpose: got (%f, %f, %f), want (5, 10, 15)", tr[12], tr[13], tr[14])
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if tr.At(col, row) != m.At(row, col) {
				t.Errorf("Transpose (%d,%d): got %f, want %f", col, row, tr.At(col, row), m.At(row, col))
			}
		}
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be identity operation")
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate: the scale leaves the translation column alone.
	m := Translate(1, 0, 0).Mul(Scale(2, 3, 4))

	want := Mat4{
		2, 0, 0, 1,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}
	if m != want {
		t.Errorf("Translate*Scale: got %v, want %v", m, want)
	}

	// The other order scales the translation too.
	if got := Scale(2, 3, 4).Mul(Translate(1, 0, 0)); got.At(0, 3) != 2 {
		t.Errorf("Scale*Translate: got x offset %f, want 2", got.At(0, 3))
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))

	// Column 0 is the image of the X axis, which lands on +Y.
	if abs(m.At(0, 0)) > 0.001 || abs(m.At(1, 0)-1) > 0.001 || m.At(2, 0) != 0 {
		t.Errorf("RotateZ 90 X axis: got (%f, %f, %f), want (0, 1, 0)", m.At(0, 0), m.At(1, 0), m.At(2, 0))
	}
	// Z is untouched.
	if m.At(2, 2) != 1 || m.At(3, 3) != 1 {
		t.Errorf("RotateZ 90 should keep z and w, got %v", m)
	}
}

func TestRotateZInverse(t *testing.T) {
	// A rotation's inverse is its transpose.
	m := RotateZ(0.7)
	got := m.Mul(m.Transpose())
	id := Identity()
	for i := range got {
		if abs(got[i]-id[i]) > 1e-6 {
			t.Fatalf("R * R^T at %d: got %f, want %f", i, got[i], id[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
