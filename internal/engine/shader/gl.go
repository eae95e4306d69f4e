package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLContext implements Context on top of go-gl (OpenGL 4.1 core).
// gl.Init must have been called on the current context first.
type GLContext struct{}

// NewGLContext returns a Context backed by the current OpenGL context.
func NewGLContext() *GLContext {
	return &GLContext{}
}

var glStageTypes = map[StageKind]uint32{
	StageVertex:   gl.VERTEX_SHADER,
	StageFragment: gl.FRAGMENT_SHADER,
}

func (*GLContext) CreateShader(kind StageKind) uint32 {
	return gl.CreateShader(glStageTypes[kind])
}

func (*GLContext) ShaderSource(stage uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(stage, 1, csource, nil)
	free()
}

func (*GLContext) CompileShader(stage uint32) {
	gl.CompileShader(stage)
}

func (*GLContext) ShaderInfoLog(stage uint32) string {
	var logLen int32
	gl.GetShaderiv(stage, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(stage, logLen, nil, &log[0])
	return trimLog(log)
}

func (*GLContext) DeleteShader(stage uint32) {
	gl.DeleteShader(stage)
}

func (*GLContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GLContext) AttachShader(program, stage uint32) {
	gl.AttachShader(program, stage)
}

func (*GLContext) DetachShader(program, stage uint32) {
	gl.DetachShader(program, stage)
}

func (*GLContext) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GLContext) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return trimLog(log)
}

func (*GLContext) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GLContext) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GLContext) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*GLContext) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GLContext) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (*GLContext) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (*GLContext) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (*GLContext) UniformMatrix4(loc int32, transpose bool, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, transpose, &m[0])
}

// trimLog drops the NUL terminator and trailing whitespace drivers append.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00 \r\n\t")
}
