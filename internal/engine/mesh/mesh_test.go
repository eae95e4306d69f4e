package mesh

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glshader/internal/engine/shader"
	"github.com/Faultbox/glshader/internal/engine/shader/shadertest"
)

func program(t *testing.T, vert string) *shader.Program {
	t.Helper()
	loader := shader.FSLoader{FS: fstest.MapFS{
		"m.vert": {Data: []byte(vert)},
		"m.frag": {Data: []byte("out vec4 FragColor;\nvoid main() {}\n")},
	}}
	p, err := shader.New(shadertest.New(), loader, "m.vert", "m.frag")
	require.NoError(t, err)
	return p
}

func TestStride(t *testing.T) {
	assert.Equal(t, 24, Stride(ColoredLayout))
	assert.Equal(t, 0, Stride(nil))
}

func TestBindColored(t *testing.T) {
	p := program(t, "layout(location=0) in vec3 aPos;\nlayout(location=1) in vec3 aColor;\n")

	bindings, err := Bind(p, ColoredLayout)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, int32(0), bindings[0].Location)
	assert.Equal(t, 0, bindings[0].Offset)
	assert.Equal(t, int32(1), bindings[1].Location)
	assert.Equal(t, 12, bindings[1].Offset)
}

func TestBindSwappedLocations(t *testing.T) {
	p := program(t, "layout(location=3) in vec3 aColor;\nlayout(location=2) in vec3 aPos;\n")

	bindings, err := Bind(p, ColoredLayout)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, int32(2), bindings[0].Location)
	assert.Equal(t, int32(3), bindings[1].Location)
	assert.Equal(t, 12, bindings[1].Offset, "offset follows layout, not location")
}

func TestBindSkipsOptional(t *testing.T) {
	p := program(t, "layout(location=0) in vec3 aPos;\n")

	bindings, err := Bind(p, ColoredLayout)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "aPos", bindings[0].Name)
}

func TestBindMissingRequired(t *testing.T) {
	p := program(t, "layout(location=0) in vec3 aColor;\n")

	_, err := Bind(p, ColoredLayout)
	assert.ErrorContains(t, err, "aPos")
}

func TestTriangleMatchesLayout(t *testing.T) {
	n, err := VertexCount(ColoredLayout, Triangle())
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)
}

func TestVertexCountRejectsPartialVertex(t *testing.T) {
	_, err := VertexCount(ColoredLayout, Triangle()[:5])
	assert.ErrorContains(t, err, "does not match layout stride")

	_, err = VertexCount(ColoredLayout, nil)
	assert.Error(t, err)

	_, err = VertexCount(nil, Triangle())
	assert.Error(t, err)
}
