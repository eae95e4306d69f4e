// Package shadertest provides an in-memory shader.Context for tests.
//
// The context understands just enough GLSL to be useful: attributes declared
// as `layout(location = N) in T name;` (or plain `in T name;` in the vertex
// stage) and `uniform T name;` declarations. A line starting with `#error`
// produces a compile log, and linking a program with a failed stage produces
// a link log.
package shadertest

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Faultbox/glshader/internal/engine/shader"
)

var (
	reLayoutIn = regexp.MustCompile(`layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*in\s+\w+\s+(\w+)\s*;`)
	rePlainIn  = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	reUniform  = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
	reError    = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

type stageObject struct {
	kind     shader.StageKind
	src      string
	log      string
	compiled bool
	deleted  bool
}

type programObject struct {
	attached map[uint32]bool
	stages   []uint32
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32]any
	log      string
	linked   bool
	deleted  bool
}

// Context records every call made through the shader.Context interface.
type Context struct {
	calls    []string
	next     uint32
	stages   map[uint32]*stageObject
	programs map[uint32]*programObject
	bound    uint32

	// CompileLog, when set, overrides the log produced for a stage.
	CompileLog func(kind shader.StageKind, src string) string
}

// New returns an empty Context.
func New() *Context {
	return &Context{
		next:     1,
		stages:   make(map[uint32]*stageObject),
		programs: make(map[uint32]*programObject),
	}
}

var _ shader.Context = (*Context)(nil)

func (c *Context) record(name string) {
	c.calls = append(c.calls, name)
}

func (c *Context) alloc() uint32 {
	h := c.next
	c.next++
	return h
}

// Calls returns the names of all calls in order.
func (c *Context) Calls() []string {
	out := make([]string, len(c.calls))
	copy(out, c.calls)
	return out
}

// Count returns how many times the named method was called.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.calls {
		if call == name {
			n++
		}
	}
	return n
}

// Bound returns the currently bound program handle.
func (c *Context) Bound() uint32 {
	return c.bound
}

// LiveStages returns the number of stage objects not yet deleted.
func (c *Context) LiveStages() int {
	n := 0
	for _, s := range c.stages {
		if !s.deleted {
			n++
		}
	}
	return n
}

// LivePrograms returns the number of programs not yet deleted.
func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// Attached returns the stages currently attached to program.
func (c *Context) Attached(program uint32) []uint32 {
	p, ok := c.programs[program]
	if !ok {
		return nil
	}
	var out []uint32
	for s, on := range p.attached {
		if on {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Uniform returns the last value written to the named uniform of program.
// Matrices are returned in the column-major layout the shader would see.
func (c *Context) Uniform(program uint32, name string) (any, bool) {
	p, ok := c.programs[program]
	if !ok {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// Writes returns the number of uniform values stored on program.
func (c *Context) Writes(program uint32) int {
	p, ok := c.programs[program]
	if !ok {
		return 0
	}
	return len(p.values)
}

func (c *Context) CreateShader(kind shader.StageKind) uint32 {
	c.record("CreateShader")
	h := c.alloc()
	c.stages[h] = &stageObject{kind: kind}
	return h
}

func (c *Context) ShaderSource(stage uint32, src string) {
	c.record("ShaderSource")
	if s, ok := c.stages[stage]; ok {
		s.src = src
	}
}

func (c *Context) CompileShader(stage uint32) {
	c.record("CompileShader")
	s, ok := c.stages[stage]
	if !ok {
		return
	}
	switch {
	case c.CompileLog != nil:
		s.log = c.CompileLog(s.kind, s.src)
	case strings.TrimSpace(s.src) == "":
		s.log = fmt.Sprintf("ERROR: 0:1: empty %s shader", s.kind)
	default:
		if m := reError.FindStringSubmatch(s.src); m != nil {
			s.log = fmt.Sprintf("ERROR: 0:1: '#error' : %s", strings.TrimSpace(m[1]))
		}
	}
	s.compiled = s.log == ""
}

func (c *Context) ShaderInfoLog(stage uint32) string {
	c.record("ShaderInfoLog")
	if s, ok := c.stages[stage]; ok {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(stage uint32) {
	c.record("DeleteShader")
	if s, ok := c.stages[stage]; ok {
		s.deleted = true
	}
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	h := c.alloc()
	c.programs[h] = &programObject{
		attached: make(map[uint32]bool),
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
		values:   make(map[int32]any),
	}
	return h
}

func (c *Context) AttachShader(program, stage uint32) {
	c.record("AttachShader")
	if p, ok := c.programs[program]; ok {
		p.attached[stage] = true
		p.stages = append(p.stages, stage)
	}
}

func (c *Context) DetachShader(program, stage uint32) {
	c.record("DetachShader")
	if p, ok := c.programs[program]; ok {
		p.attached[stage] = false
	}
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram")
	p, ok := c.programs[program]
	if !ok {
		return
	}
	for _, h := range p.stages {
		if s := c.stages[h]; s == nil || !s.compiled {
			p.log = "error: linking with uncompiled/unspecialized shader"
			return
		}
	}

	var uniformNames []string
	seen := make(map[string]bool)
	next := int32(0)
	used := make(map[int32]bool)
	for _, h := range p.stages {
		s := c.stages[h]
		if s.kind == shader.StageVertex {
			for _, m := range reLayoutIn.FindAllStringSubmatch(s.src, -1) {
				loc, _ := strconv.Atoi(m[1])
				p.attribs[m[2]] = int32(loc)
				used[int32(loc)] = true
			}
			for _, m := range rePlainIn.FindAllStringSubmatch(s.src, -1) {
				if _, ok := p.attribs[m[1]]; ok {
					continue
				}
				for used[next] {
					next++
				}
				p.attribs[m[1]] = next
				used[next] = true
			}
		}
		for _, m := range reUniform.FindAllStringSubmatch(s.src, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				uniformNames = append(uniformNames, m[1])
			}
		}
	}
	for i, name := range uniformNames {
		p.uniforms[name] = int32(i)
	}
	p.linked = true
}

func (c *Context) ProgramInfoLog(program uint32) string {
	c.record("ProgramInfoLog")
	if p, ok := c.programs[program]; ok {
		return p.log
	}
	return ""
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram")
	if p, ok := c.programs[program]; ok {
		p.deleted = true
	}
	if c.bound == program {
		c.bound = 0
	}
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram")
	c.bound = program
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	c.record("GetAttribLocation")
	p, ok := c.programs[program]
	if !ok || !p.linked {
		return shader.NotFound
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return shader.NotFound
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("GetUniformLocation")
	p, ok := c.programs[program]
	if !ok || !p.linked {
		return shader.NotFound
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return shader.NotFound
}

func (c *Context) store(loc int32, v any) {
	if loc == shader.NotFound {
		return
	}
	if p, ok := c.programs[c.bound]; ok {
		p.values[loc] = v
	}
}

func (c *Context) Uniform1i(loc int32, v int32) {
	c.record("Uniform1i")
	c.store(loc, v)
}

func (c *Context) Uniform1f(loc int32, v float32) {
	c.record("Uniform1f")
	c.store(loc, v)
}

func (c *Context) Uniform3f(loc int32, x, y, z float32) {
	c.record("Uniform3f")
	c.store(loc, [3]float32{x, y, z})
}

func (c *Context) UniformMatrix4(loc int32, transpose bool, m *[16]float32) {
	c.record("UniformMatrix4")
	v := *m
	if transpose {
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				v[col*4+row] = m[row*4+col]
			}
		}
	}
	c.store(loc, v)
}
