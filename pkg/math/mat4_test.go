package math

import (
	"math"
	"testing"
)

func matNear(t *testing.T, got, want Mat4, context string) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(got[i]-want[i])) > 0.0001 {
			t.Errorf("%s: element %d: got %v, want %v", context, i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	p := m.TransformPoint(Vec3{1, 2, 3})
	if p != (Vec3{1, 2, 3}) {
		t.Errorf("Identity should not move points, got %v", p)
	}
}

func TestMulWithIdentity(t *testing.T) {
	m := Translate(3, 5, 7)
	matNear(t, m.Mul(Identity()), m, "m * I")
	matNear(t, Identity().Mul(m), m, "I * m")
}

func TestTranslateComposition(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	p := a.Mul(b).TransformPoint(Vec3{})
	if p != (Vec3{1, 2, 0}) {
		t.Errorf("Composed translations should accumulate, got %v", p)
	}
}

func TestFromTRSIdentity(t *testing.T) {
	m := FromTRS(Vec3{}, QuatIdentity(), Vec3One())
	matNear(t, m, Identity(), "identity TRS")
}

func TestFromTRSTranslation(t *testing.T) {
	m := FromTRS(Vec3{3, 5, 7}, QuatIdentity(), Vec3One())
	tr := m.Translation()
	if tr != (Vec3{3, 5, 7}) {
		t.Errorf("FromTRS translation should land in the last column, got %v", tr)
	}
}

func TestFromTRSScale(t *testing.T) {
	m := FromTRS(Vec3{}, QuatIdentity(), Vec3{2, 3, 4})
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("FromTRS scale should land on the diagonal, got %v %v %v", m[0], m[5], m[10])
	}
}

func TestFromTRSRotation(t *testing.T) {
	// 90 degrees around Y maps +X to -Z
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))
	m := FromTRS(Vec3{}, q, Vec3One())

	p := m.TransformPoint(Vec3{1, 0, 0})
	if math.Abs(float64(p.X)) > 0.0001 || math.Abs(float64(p.Z+1)) > 0.0001 {
		t.Errorf("90 degree Y rotation should map +X to -Z, got %v", p)
	}
}

func TestFromTRSCombined(t *testing.T) {
	// Scale then rotate then translate: point (1,0,0) scaled by 2,
	// rotated 90 degrees around Y (to -Z), then moved by (0,0,5)
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))
	m := FromTRS(Vec3{0, 0, 5}, q, Vec3{2, 2, 2})

	p := m.TransformPoint(Vec3{1, 0, 0})
	if math.Abs(float64(p.X)) > 0.0001 || math.Abs(float64(p.Y)) > 0.0001 || math.Abs(float64(p.Z-3)) > 0.0001 {
		t.Errorf("Combined TRS should yield (0,0,3), got %v", p)
	}
}
