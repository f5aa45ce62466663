package anim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAdvanceSingleTick(t *testing.T) {
	s := NewSpinner()
	s.Advance()
	if diff := math.Abs(float64(s.Angle()) - 0.02); diff > 1e-6 {
		t.Fatalf("after one tick: got angle %v, want 0.02", s.Angle())
	}
}

func TestAngleStaysInRange(t *testing.T) {
	s := NewSpinner()
	for i := 0; i < 10000; i++ {
		s.Advance()
		a := s.Angle()
		if a < 0 || float64(a) >= 2*math.Pi {
			t.Fatalf("tick %d: angle %v outside [0, 2*pi)", i, a)
		}
	}
}

func TestWrapAroundFullTurn(t *testing.T) {
	s := NewSpinner()
	for i := 0; i < 314; i++ {
		s.Advance()
	}
	// 314 ticks accumulate to 6.28, just shy of 2*pi
	if diff := math.Abs(float64(s.Angle()) - 6.28); diff > 1e-3 {
		t.Fatalf("after 314 ticks: got angle %v, want ~6.28", s.Angle())
	}

	s.Advance()
	// one more tick crosses 2*pi and wraps
	want := 6.30 - 2*math.Pi
	if diff := math.Abs(float64(s.Angle()) - want); diff > 1e-3 {
		t.Fatalf("after 315 ticks: got angle %v, want ~%v", s.Angle(), want)
	}
}

func TestModelAtZeroIsIdentity(t *testing.T) {
	s := NewSpinner()
	if m := s.Model(); !m.ApproxEqual(mgl32.Ident4()) {
		t.Fatalf("model at angle 0: got %v, want identity", m)
	}
}

func TestAxisIsNotNormalized(t *testing.T) {
	// The rotation axis is passed to the rotation primitive as-is; normalizing
	// it would change the rendered motion.
	if Axis != (mgl32.Vec3{0, 1, -1}) {
		t.Fatalf("axis: got %v, want (0, 1, -1)", Axis)
	}
}
