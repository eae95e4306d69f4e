// Package math provides float32 vector and matrix types for uniform data.
//
// Matrices are row-major: element (row, col) lives at index row*4+col.
package math

// Vec3 is a 3D vector, written to vec3 uniforms.
type Vec3 struct {
	X, Y, Z float32
}
