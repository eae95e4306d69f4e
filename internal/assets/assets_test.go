package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glshader/internal/engine/shader"
	"github.com/Faultbox/glshader/internal/engine/shader/shadertest"
)

func TestShadersEmbedded(t *testing.T) {
	for _, name := range []string{"triangle.vert", "triangle.frag", "flat.vert", "flat.frag"} {
		data, err := fs.ReadFile(Shaders(), name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "#version 410 core", name)
	}
}

func TestTriangleProgramLayout(t *testing.T) {
	ctx := shadertest.New()
	p, err := shader.New(ctx, shader.FSLoader{FS: Shaders()}, "triangle.vert", "triangle.frag", shader.WithStrict())
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, int32(0), p.AttribLocation("aPos"))
	assert.Equal(t, int32(1), p.AttribLocation("aColor"))

	p.SetInt("uMode", 1)
	p.SetMatrix4("uTransform", [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
	assert.Equal(t, 2, ctx.Writes(p.Handle()))
}

func TestFlatProgramHasNoColor(t *testing.T) {
	ctx := shadertest.New()
	p, err := shader.New(ctx, shader.FSLoader{FS: Shaders()}, "flat.vert", "flat.frag", shader.WithStrict())
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, int32(0), p.AttribLocation("aPos"))
	assert.Equal(t, shader.NotFound, p.AttribLocation("aColor"))
}
