// Package shader builds linked OpenGL shader programs and manages their lifetime.
package shader

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/glshader/internal/logger"
	"github.com/Faultbox/glshader/pkg/math"
)

// Program owns one linked GPU program handle.
//
// A Program is not safe for concurrent use and must only be touched from the
// thread that owns its Context. Release it with Close; no finalizer is set.
type Program struct {
	ctx    Context
	log    *zap.Logger
	handle uint32
	diags  []Diagnostic
	closed bool
}

type options struct {
	log    *zap.Logger
	strict bool
}

// Option configures New.
type Option func(*options)

// WithLogger sets the sink for compile and link diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStrict makes New fail with a *BuildError if any diagnostic was reported.
// Without it, a program linked from broken stages is still returned.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

type stage struct {
	kind   StageKind
	path   string
	src    string
	handle uint32
}

// New compiles the vertex and fragment sources at vertPath and fragPath and
// links them into a program.
//
// Read failures are returned as *ReadError before any GPU object is created.
// Compile and link logs are reported as warnings and kept in Diagnostics;
// they do not fail construction unless WithStrict is given.
func New(ctx Context, loader SourceLoader, vertPath, fragPath string, opts ...Option) (*Program, error) {
	o := options{log: logger.Named("shader")}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	stages := []*stage{
		{kind: StageVertex, path: vertPath},
		{kind: StageFragment, path: fragPath},
	}
	for _, s := range stages {
		src, err := loader.ReadAll(s.path)
		if err != nil {
			return nil, asReadError(s.path, err)
		}
		s.src = src
	}

	p := &Program{ctx: ctx, log: o.log}

	for _, s := range stages {
		s.handle = ctx.CreateShader(s.kind)
		ctx.ShaderSource(s.handle, s.src)
		ctx.CompileShader(s.handle)
		if msg := ctx.ShaderInfoLog(s.handle); msg != "" {
			p.report(Diagnostic{Source: s.kind.String(), Path: s.path, Log: msg})
		}
	}

	p.handle = ctx.CreateProgram()
	for _, s := range stages {
		ctx.AttachShader(p.handle, s.handle)
	}
	ctx.LinkProgram(p.handle)
	if msg := ctx.ProgramInfoLog(p.handle); msg != "" {
		p.report(Diagnostic{Source: "link", Log: msg})
	}

	// The linked program keeps its own copy of the compiled stages.
	for _, s := range stages {
		ctx.DetachShader(p.handle, s.handle)
		ctx.DeleteShader(s.handle)
	}

	if o.strict && len(p.diags) > 0 {
		diags := p.Diagnostics()
		_ = p.Close()
		return nil, &BuildError{Diagnostics: diags}
	}

	p.log.Debug("shader program linked",
		zap.Uint32("program", p.handle),
		zap.String("vertex", vertPath),
		zap.String("fragment", fragPath),
		zap.Int("diagnostics", len(p.diags)),
	)
	return p, nil
}

func asReadError(path string, err error) error {
	var re *ReadError
	if errors.As(err, &re) {
		return re
	}
	return &ReadError{Path: path, Err: err}
}

func (p *Program) report(d Diagnostic) {
	p.diags = append(p.diags, d)
	p.log.Warn("shader diagnostic",
		zap.String("stage", d.Source),
		zap.String("path", d.Path),
		zap.String("log", d.Log),
	)
}

// Handle returns the GPU program handle, or 0 once closed.
func (p *Program) Handle() uint32 {
	if p.closed {
		return 0
	}
	return p.handle
}

// Diagnostics returns a copy of the compile and link logs reported by New.
func (p *Program) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diags))
	copy(out, p.diags)
	return out
}

// Valid reports whether the program built without diagnostics and is still open.
func (p *Program) Valid() bool {
	return !p.closed && len(p.diags) == 0
}

// Closed reports whether Close has been called.
func (p *Program) Closed() bool {
	return p.closed
}

// Use binds the program as the current program.
func (p *Program) Use() {
	p.ctx.UseProgram(p.handle)
}

// AttribLocation returns the input slot of the named attribute, or NotFound.
func (p *Program) AttribLocation(name string) int32 {
	return p.ctx.GetAttribLocation(p.handle, name)
}

// The setters below bind the program before writing, so it stays bound afterwards.
// Names that are not active uniforms are ignored.

// SetInt writes an int uniform.
func (p *Program) SetInt(name string, v int32) {
	p.Use()
	p.ctx.Uniform1i(p.ctx.GetUniformLocation(p.handle, name), v)
}

// SetFloat writes a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	p.Use()
	p.ctx.Uniform1f(p.ctx.GetUniformLocation(p.handle, name), v)
}

// SetVec3 writes a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	p.Use()
	p.ctx.Uniform3f(p.ctx.GetUniformLocation(p.handle, name), v.X, v.Y, v.Z)
}

// SetMatrix4 writes a mat4 uniform. m is row-major and is sent transposed,
// so the shader receives the column-major layout GLSL expects.
func (p *Program) SetMatrix4(name string, m math.Mat4) {
	p.Use()
	arr := [16]float32(m)
	p.ctx.UniformMatrix4(p.ctx.GetUniformLocation(p.handle, name), true, &arr)
}

// Close deletes the GPU program. It must run on the thread owning the context.
// Calling Close again is a no-op that only logs a warning.
func (p *Program) Close() error {
	if p.closed {
		p.log.Warn("shader program closed twice", zap.Uint32("program", p.handle))
		return nil
	}
	p.closed = true
	p.ctx.DeleteProgram(p.handle)
	return nil
}
