package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Add(v2); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := v2.Sub(v1); got != NewVec3(3, 3, 3) {
		t.Errorf("Sub: expected (3,3,3), got %v", got)
	}
	if got := v1.Mul(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Mul: expected (2,4,6), got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	// Right x Up = Front in a right-handed system
	if got := Vec3Right.Cross(Vec3Up); got != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := NewVec3(3, 0, 0).Normalize()
	if normalized != NewVec3(1, 0, 0) {
		t.Errorf("Normalize: expected (1,0,0), got %v", normalized)
	}

	diag := NewVec3(1, 1, 1).Normalize()
	if !approx(diag.Length(), 1) {
		t.Errorf("Normalize: expected length 1, got %v", diag.Length())
	}

	// The zero vector must come back untouched rather than NaN.
	zero := Vec3Zero.Normalize()
	if zero != Vec3Zero || !zero.IsFinite() {
		t.Errorf("Normalize(zero): expected zero vector, got %v", zero)
	}
}

func TestVec3ClampLength(t *testing.T) {
	v := NewVec3(3, 4, 0).ClampLength(1)
	if !approx(v.Length(), 1) {
		t.Errorf("ClampLength: expected length 1, got %v", v.Length())
	}
	if !approx(v.X, 0.6) || !approx(v.Y, 0.8) {
		t.Errorf("ClampLength: direction changed, got %v", v)
	}

	short := NewVec3(0.1, 0, 0)
	if got := short.ClampLength(1); got != short {
		t.Errorf("ClampLength: short vector changed, got %v", got)
	}
	if got := Vec3Zero.ClampLength(0); got != Vec3Zero {
		t.Errorf("ClampLength: zero vector changed, got %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("IsFinite: expected finite vector")
	}
	nan := float32(math.NaN())
	if NewVec3(0, nan, 0).IsFinite() {
		t.Error("IsFinite: expected NaN to be reported")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if got := m.TransformPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// a.Mul(b) applies a first: scale then translate.
	m := Mat4Scale(NewVec3(2, 2, 2)).Mul(Mat4Translation(NewVec3(1, 0, 0)))
	got := m.TransformPoint(NewVec3(1, 0, 0))
	if !approx(got.X, 3) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("Mul order: expected (3,0,0), got %v", got)
	}
}

func TestQuaternionRotation(t *testing.T) {
	q := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))

	result := q.RotateVector(Vec3Right)
	if !approx(result.X, 0) || !approx(result.Y, 0) || !approx(result.Z, -1) {
		t.Errorf("RotateVector: expected approximately (0,0,-1), got %v", result)
	}

	// The matrix form must agree with RotateVector.
	viaMat := q.ToMat4().TransformPoint(Vec3Right)
	if !approx(viaMat.X, result.X) || !approx(viaMat.Z, result.Z) {
		t.Errorf("ToMat4: expected %v, got %v", result, viaMat)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 100)
	if m[0][0] == 0 || m[1][1] == 0 {
		t.Error("Perspective: expected non-zero X and Y scale")
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected w = -z, got %v", m[2][3])
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The eye lands on the view-space origin.
	if got := m.TransformPoint(eye); !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("LookAt: expected eye at origin, got %v", got)
	}

	// The target lies straight ahead on -Z.
	if got := m.TransformPoint(Vec3Zero); !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, -5) {
		t.Errorf("LookAt: expected target at (0,0,-5), got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Translation(NewVec3(1, 2, 3))
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
