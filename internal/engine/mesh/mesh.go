// Package mesh uploads interleaved vertex data and binds it to program attributes.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AttribLocator resolves attribute names to input slots.
// *shader.Program satisfies it.
type AttribLocator interface {
	AttribLocation(name string) int32
}

// Attrib describes one float attribute inside an interleaved vertex.
type Attrib struct {
	Name     string
	Size     int32 // components
	Required bool
}

// Binding is an Attrib resolved against a program.
type Binding struct {
	Attrib
	Location int32
	Offset   int // bytes from the start of the vertex
}

// ColoredLayout is position (vec3) followed by color (vec3).
var ColoredLayout = []Attrib{
	{Name: "aPos", Size: 3, Required: true},
	{Name: "aColor", Size: 3},
}

// Stride returns the size of one vertex of layout in bytes.
func Stride(layout []Attrib) int {
	n := 0
	for _, a := range layout {
		n += int(a.Size) * 4
	}
	return n
}

// Bind resolves layout against prog. Optional attributes the program does not
// use are skipped; a missing required attribute is an error.
func Bind(prog AttribLocator, layout []Attrib) ([]Binding, error) {
	var out []Binding
	offset := 0
	for _, a := range layout {
		loc := prog.AttribLocation(a.Name)
		switch {
		case loc >= 0:
			out = append(out, Binding{Attrib: a, Location: loc, Offset: offset})
		case a.Required:
			return nil, fmt.Errorf("attribute %q is not active in program", a.Name)
		}
		offset += int(a.Size) * 4
	}
	return out, nil
}

// VertexCount returns how many whole vertices of layout the data holds.
func VertexCount(layout []Attrib, vertices []float32) (int32, error) {
	stride := Stride(layout)
	if stride == 0 || len(vertices) == 0 || (len(vertices)*4)%stride != 0 {
		return 0, fmt.Errorf("vertex data (%d floats) does not match layout stride %d", len(vertices), stride)
	}
	return int32(len(vertices) * 4 / stride), nil
}

// Mesh is a VAO with one interleaved VBO.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// New uploads vertices laid out as layout and wires them to prog's attributes.
func New(prog AttribLocator, layout []Attrib, vertices []float32) (*Mesh, error) {
	count, err := VertexCount(layout, vertices)
	if err != nil {
		return nil, err
	}
	stride := Stride(layout)

	bindings, err := Bind(prog, layout)
	if err != nil {
		return nil, err
	}

	m := &Mesh{count: count}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	for _, b := range bindings {
		loc := uint32(b.Location)
		gl.VertexAttribPointer(loc, b.Size, gl.FLOAT, false, int32(stride), gl.PtrOffset(b.Offset))
		gl.EnableVertexAttribArray(loc)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m, nil
}

// Count returns the number of vertices.
func (m *Mesh) Count() int32 {
	return m.count
}

// Draw issues a triangle draw call. The caller binds the program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Close deletes the GPU buffers.
func (m *Mesh) Close() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// Triangle returns three colored vertices: red top, green left, blue right.
func Triangle() []float32 {
	return []float32{
		// Position          // Color (RGB)
		0.0, 0.5, 0.0, 1.0, 0.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
	}
}
