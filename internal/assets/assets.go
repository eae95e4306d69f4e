// Package assets embeds the demo's GLSL sources.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed shaders/*.vert shaders/*.frag
var files embed.FS

// Shaders returns the embedded shader directory, with paths like "triangle.vert".
func Shaders() fs.FS {
	sub, err := fs.Sub(files, "shaders")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
