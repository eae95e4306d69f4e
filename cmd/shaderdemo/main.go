// Package main is a small demo that draws a rotating triangle with a shader program.
//
// Keys: Space pauses the rotation, M toggles between vertex colors and a flat
// tint, Escape quits.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glshader/internal/assets"
	"github.com/Faultbox/glshader/internal/config"
	"github.com/Faultbox/glshader/internal/engine/input"
	"github.com/Faultbox/glshader/internal/engine/mesh"
	"github.com/Faultbox/glshader/internal/engine/renderer"
	"github.com/Faultbox/glshader/internal/engine/shader"
	"github.com/Faultbox/glshader/internal/engine/window"
	"github.com/Faultbox/glshader/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		if path, err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("demo closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Backend:    cfg.Window.Backend,
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	if err := renderer.Init(); err != nil {
		return err
	}

	var opts []shader.Option
	if cfg.Shaders.Strict {
		opts = append(opts, shader.WithStrict())
	}
	loader, vert, frag := shaderSources(cfg.Shaders)
	prog, err := shader.New(shader.NewGLContext(), loader, vert, frag, opts...)
	if err != nil {
		return fmt.Errorf("building shader program: %w", err)
	}
	// Released before the window tears down the context.
	defer prog.Close()

	if !prog.Valid() {
		logger.Warn("shader program built with diagnostics, rendering may be wrong",
			zap.Int("diagnostics", len(prog.Diagnostics())),
		)
	}

	tri, err := mesh.New(prog, mesh.ColoredLayout, mesh.Triangle())
	if err != nil {
		return fmt.Errorf("creating mesh: %w", err)
	}
	defer tri.Close()
	logger.Debug("mesh uploaded", zap.Int32("vertices", tri.Count()))

	width, height := win.DrawableSize()
	r := renderer.New(renderer.Config{
		Width:         width,
		Height:        height,
		ClearColor:    cfg.Render.ClearColor,
		RotationSpeed: cfg.Render.RotationSpeed,
		Mode:          cfg.Render.Mode,
	}, prog, tri)

	in := input.New()
	var fps fpsCounter
	last := time.Now()
	for {
		if in.Update(win) {
			return nil
		}
		if w, h, ok := in.Resized(); ok {
			r.Resize(w, h)
		}
		if in.IsKeyPressed(input.KeySpace) {
			r.Scene().TogglePause()
		}
		if in.IsKeyPressed(input.KeyM) {
			r.Scene().ToggleMode()
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now
		r.Frame(float32(dt.Seconds()))
		if rate, ok := fps.tick(dt); ok {
			win.SetTitle(title(cfg.Window.Title, rate, r.Scene()))
		}

		win.SwapBuffers()
	}
}

// shaderSources reads from cfg.Dir on disk when set, otherwise from the embedded assets.
func shaderSources(cfg config.ShaderConfig) (loader shader.SourceLoader, vert, frag string) {
	if cfg.Dir == "" {
		return shader.FSLoader{FS: assets.Shaders()}, cfg.Vertex, cfg.Fragment
	}
	return shader.FileLoader{}, resolve(cfg.Dir, cfg.Vertex), resolve(cfg.Dir, cfg.Fragment)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
