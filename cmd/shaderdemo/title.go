package main

import (
	"fmt"
	"time"

	"github.com/Faultbox/glshader/internal/engine/renderer"
)

// fpsCounter averages the frame rate over windows of at least one second.
type fpsCounter struct {
	frames  int
	elapsed time.Duration
}

// tick records one frame. It reports a rate once per window.
func (c *fpsCounter) tick(dt time.Duration) (float64, bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed < time.Second {
		return 0, false
	}
	rate := float64(c.frames) / c.elapsed.Seconds()
	c.frames, c.elapsed = 0, 0
	return rate, true
}

func title(base string, fps float64, s *renderer.Scene) string {
	mode := "colors"
	if s.Mode == 1 {
		mode = "tint"
	}
	t := fmt.Sprintf("%s | %.0f fps | %s", base, fps, mode)
	if s.Paused {
		t += " | paused"
	}
	return t
}
