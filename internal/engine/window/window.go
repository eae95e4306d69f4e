// Package window creates a window with an OpenGL 4.1 core context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/glshader/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an open window whose GL context is current on the calling thread.
type Window interface {
	input.Poller

	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	SetTitle(title string)
	// Close destroys the GL context and the window.
	Close()
}

// New opens a window using cfg.Backend.
func New(cfg Config) (Window, error) {
	var (
		w   Window
		err error
	)
	switch cfg.Backend {
	case BackendSDL, "":
		w, err = newSDL(cfg)
	case BackendGLFW:
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
