package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/glshader/internal/engine/input"
	"github.com/Faultbox/glshader/internal/logger"
)

// glfwWindow wraps a GLFW window. Callbacks queue events until the next Poll.
type glfwWindow struct {
	log     *zap.Logger
	window  *glfw.Window
	pending []input.Event
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyM:      input.KeyM,
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{log: logger.Named("window")}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.window = win
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.onKey(key, action)
	})

	// Framebuffer size is in pixels, which is what glViewport wants on HiDPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, input.Event{
			Type:   input.EventWindowResize,
			Width:  width,
			Height: height,
		})
	})

	w.log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// onKey queues press and release events for bound keys. Others are ignored.
func (w *glfwWindow) onKey(key glfw.Key, action glfw.Action) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		w.pending = append(w.pending, input.Event{Type: input.EventKeyDown, Key: k})
	case glfw.Release:
		w.pending = append(w.pending, input.Event{Type: input.EventKeyUp, Key: k})
	}
}

// Poll processes GLFW events and returns the queued ones.
func (w *glfwWindow) Poll(dst []input.Event) []input.Event {
	glfw.PollEvents()

	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]

	if w.window.ShouldClose() {
		dst = append(dst, input.Event{Type: input.EventQuit})
	}
	return dst
}

func (w *glfwWindow) Close() {
	w.log.Info("closing window")

	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}
