package renderer

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/glshader/pkg/math"
)

// Scene is the GL-free part of a frame: rotation, mode and tint.
type Scene struct {
	Angle  float32
	Speed  float32
	Paused bool
	Mode   int32
	Tint   math.Vec3
}

// Advance rotates by Speed*dt unless paused, wrapping at 2π.
func (s *Scene) Advance(dt float32) {
	if s.Paused {
		return
	}
	s.Angle = math32.Mod(s.Angle+s.Speed*dt, 2*math32.Pi)
}

// TogglePause starts or stops the rotation.
func (s *Scene) TogglePause() {
	s.Paused = !s.Paused
}

// ToggleMode switches between vertex colors (0) and flat tint (1).
func (s *Scene) ToggleMode() {
	s.Mode = 1 - s.Mode
}

// Transform returns the row-major model matrix for the current angle,
// with X scaled so the shape keeps its proportions at the given aspect ratio.
func (s *Scene) Transform(aspect float32) math.Mat4 {
	return math.Scale(1/aspect, 1, 1).Mul(math.RotateZ(s.Angle))
}

// Apply pushes the scene uniforms to prog. Setters bind prog as a side effect.
func (s *Scene) Apply(prog Program, aspect float32) {
	prog.SetMatrix4(UniformTransform, s.Transform(aspect))
	prog.SetInt(UniformMode, s.Mode)
	prog.SetVec3(UniformTint, s.Tint)
}
