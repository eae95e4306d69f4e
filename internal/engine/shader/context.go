package shader

// StageKind identifies a programmable pipeline stage.
type StageKind int

const (
	StageVertex StageKind = iota
	StageFragment
)

// String returns the lowercase stage name used in logs and diagnostics.
func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// NotFound is the location returned for names that are not active in a program.
const NotFound int32 = -1

// Context is the set of GPU primitives a Program is built on.
//
// All methods must be called from the thread that owns the current GL context.
// UseProgram changes the context-wide bound program; every Program setter calls it.
type Context interface {
	CreateShader(kind StageKind) uint32
	ShaderSource(stage uint32, src string)
	CompileShader(stage uint32)
	ShaderInfoLog(stage uint32) string
	DeleteShader(stage uint32)

	CreateProgram() uint32
	AttachShader(program, stage uint32)
	DetachShader(program, stage uint32)
	LinkProgram(program uint32)
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	// UseProgram binds program as the current program.
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	// Uniform writes target the currently bound program.
	// A location of NotFound is silently ignored.
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform3f(loc int32, x, y, z float32)
	UniformMatrix4(loc int32, transpose bool, m *[16]float32)
}
