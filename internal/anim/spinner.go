package anim

import (
	"math"

	"eldritch-cube/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Spinner holds the cube's rotation angle. The frame driver is its only owner:
// the angle advances once per accepted frame tick and stays in [0, 2*pi).
type Spinner struct {
	angle float32
}

// Axis is the rotation axis. It is deliberately not unit length; the original
// visuals depend on it being passed to the rotation primitive as-is.
var Axis = mgl32.Vec3{0, 1, -1}

func NewSpinner() *Spinner {
	return &Spinner{}
}

// Angle returns the current rotation angle in radians
func (s *Spinner) Angle() float32 {
	return s.angle
}

// Advance steps the rotation by one frame tick, wrapping into [0, 2*pi)
func (s *Spinner) Advance() {
	s.angle = float32(math.Mod(float64(s.angle)+config.RotationStep, 2*math.Pi))
}

// Model derives the model matrix for the current angle
func (s *Spinner) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3D(s.angle, Axis)
}
