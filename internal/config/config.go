// Package config handles demo configuration loading and management.
package config

import "fmt"

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShaderConfig  `yaml:"shaders"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ShaderConfig selects the shader sources.
// An empty Dir loads Vertex and Fragment from the embedded assets.
type ShaderConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Strict   bool   `yaml:"strict"` // fail on compile/link diagnostics
}

// RenderConfig holds per-frame drawing settings.
type RenderConfig struct {
	ClearColor    [3]float32 `yaml:"clear_color"`
	RotationSpeed float32    `yaml:"rotation_speed"` // radians per second
	Mode          int32      `yaml:"mode"`           // 0 vertex colors, 1 flat tint
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:    BackendSDL,
			Title:      "glshader",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Shaders: ShaderConfig{
			Vertex:   "triangle.vert",
			Fragment: "triangle.frag",
		},
		Render: RenderConfig{
			ClearColor:    [3]float32{0.1, 0.1, 0.15},
			RotationSpeed: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the demo cannot run with.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("unknown window backend %q", c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("vertex and fragment shader paths are required")
	}
	if c.Render.Mode < 0 || c.Render.Mode > 1 {
		return fmt.Errorf("invalid render mode %d", c.Render.Mode)
	}
	return nil
}
