package shader

import (
	"io/fs"
	"os"
	"unicode/utf8"
)

// SourceLoader reads shader source text by path.
type SourceLoader interface {
	ReadAll(path string) (string, error)
}

// FileLoader reads shader sources from the OS filesystem.
type FileLoader struct{}

// ReadAll returns the UTF-8 contents of path.
func (FileLoader) ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return decode(path, data)
}

// FSLoader reads shader sources from an fs.FS, typically an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// ReadAll returns the UTF-8 contents of path within l.FS.
func (l FSLoader) ReadAll(path string) (string, error) {
	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return decode(path, data)
}

func decode(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
