// Package renderer draws the demo scene with a shader program.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glshader/internal/logger"
	"github.com/Faultbox/glshader/pkg/math"
)

// Uniform names the demo shaders declare.
const (
	UniformTransform = "uTransform"
	UniformMode      = "uMode"
	UniformTint      = "uTint"
)

// Config holds renderer configuration.
type Config struct {
	Width         int
	Height        int
	ClearColor    [3]float32
	RotationSpeed float32 // radians per second
	Mode          int32
}

// Program is the part of *shader.Program the renderer drives.
type Program interface {
	Use()
	SetInt(name string, v int32)
	SetVec3(name string, v math.Vec3)
	SetMatrix4(name string, m math.Mat4)
}

// Drawable is something that can issue its own draw call.
type Drawable interface {
	Draw()
}

// Init loads OpenGL function pointers. Call it once the GL context is current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return nil
}

// Renderer owns per-frame state. It does not own the program or the mesh.
type Renderer struct {
	config Config
	log    *zap.Logger
	prog   Program
	mesh   Drawable
	scene  Scene
}

// New creates a renderer drawing mesh with prog. GL must be initialized.
func New(cfg Config, prog Program, m Drawable) *Renderer {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		prog:   prog,
		mesh:   m,
		scene: Scene{
			Speed: cfg.RotationSpeed,
			Mode:  cfg.Mode,
			Tint:  math.Vec3{X: 1.0, Y: 0.5, Z: 0.2},
		},
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r
}

// Scene returns the animation state for input handling.
func (r *Renderer) Scene() *Scene {
	return &r.scene
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Frame advances the scene by dt seconds and draws it.
func (r *Renderer) Frame(dt float32) {
	r.scene.Advance(dt)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.scene.Apply(r.prog, aspect(r.config.Width, r.config.Height))
	r.mesh.Draw()
}

func aspect(width, height int) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}
