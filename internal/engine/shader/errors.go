package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUTF8 is wrapped by ReadError when a source is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// ReadError reports a shader source that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read shader %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// BuildError is returned in strict mode when compiling or linking produced diagnostics.
type BuildError struct {
	Diagnostics []Diagnostic
}

func (e *BuildError) Error() string {
	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.String())
	}
	return "build shader program: " + strings.Join(parts, "; ")
}

// Diagnostic is a non-empty compiler or linker log.
type Diagnostic struct {
	Source string // "vertex", "fragment" or "link"
	Path   string // source file, empty for link diagnostics
	Log    string
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Source, d.Log)
	}
	return fmt.Sprintf("%s (%s): %s", d.Source, d.Path, d.Log)
}
