package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glshader/internal/assets"
	"github.com/Faultbox/glshader/internal/engine/shader"
	"github.com/Faultbox/glshader/internal/engine/shader/shadertest"
	"github.com/Faultbox/glshader/pkg/math"
)

func TestAdvanceWraps(t *testing.T) {
	s := Scene{Speed: math32.Pi}

	s.Advance(1)
	assert.InDelta(t, math32.Pi, s.Angle, 1e-5)

	s.Advance(1.5)
	assert.InDelta(t, math32.Pi/2, s.Angle, 1e-5)
}

func TestAdvancePaused(t *testing.T) {
	s := Scene{Speed: 1}
	s.TogglePause()
	s.Advance(10)
	assert.Zero(t, s.Angle)

	s.TogglePause()
	s.Advance(0.5)
	assert.InDelta(t, 0.5, s.Angle, 1e-6)
}

func TestToggleMode(t *testing.T) {
	s := Scene{}
	s.ToggleMode()
	assert.Equal(t, int32(1), s.Mode)
	s.ToggleMode()
	assert.Equal(t, int32(0), s.Mode)
}

func TestTransformAtRest(t *testing.T) {
	s := Scene{}
	assert.Equal(t, math.Identity(), s.Transform(1))

	m := s.Transform(2)
	assert.Equal(t, float32(0.5), m.At(0, 0))
	assert.Equal(t, float32(1), m.At(1, 1))
}

func TestApplyWritesUniforms(t *testing.T) {
	ctx := shadertest.New()
	p, err := shader.New(ctx, shader.FSLoader{FS: assets.Shaders()}, "triangle.vert", "triangle.frag", shader.WithStrict())
	require.NoError(t, err)
	defer p.Close()

	s := Scene{Angle: math32.Pi / 2, Mode: 1, Tint: math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}}
	s.Apply(p, 1)

	assert.Equal(t, p.Handle(), ctx.Bound())

	v, ok := ctx.Uniform(p.Handle(), UniformMode)
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	v, ok = ctx.Uniform(p.Handle(), UniformTint)
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, v)

	v, ok = ctx.Uniform(p.Handle(), UniformTransform)
	require.True(t, ok)
	got := v.([16]float32)
	want := s.Transform(1)
	// Shader sees column-major: row 0, col 1 of the row-major matrix at index 4.
	assert.InDelta(t, want.At(0, 1), got[4], 1e-6)
	assert.InDelta(t, -1, got[4], 1e-6)
	assert.InDelta(t, 1, got[1], 1e-6)
}

func TestAspect(t *testing.T) {
	assert.Equal(t, float32(2), aspect(800, 400))
	assert.Equal(t, float32(1), aspect(800, 0))
}
