package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/glshader/internal/engine/input"
)

func TestSDLKeyboardEventSkipsUnboundKeys(t *testing.T) {
	_, ok := keyboardEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A},
	})
	assert.False(t, ok, "unbound key must not produce an event")
}

func TestSDLKeyboardEventSkipsRepeats(t *testing.T) {
	_, ok := keyboardEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE},
	})
	assert.False(t, ok)
}

func TestSDLKeyboardEventBoundKeys(t *testing.T) {
	ev, ok := keyboardEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_M},
	})
	require.True(t, ok)
	assert.Equal(t, input.Event{Type: input.EventKeyDown, Key: input.KeyM}, ev)

	ev, ok = keyboardEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE},
	})
	require.True(t, ok)
	assert.Equal(t, input.Event{Type: input.EventKeyUp, Key: input.KeyEscape}, ev)
}

func TestGLFWKeyCallbackSkipsUnboundKeys(t *testing.T) {
	w := &glfwWindow{}

	w.onKey(glfw.KeyA, glfw.Press)
	w.onKey(glfw.KeyA, glfw.Release)
	assert.Empty(t, w.pending)

	w.onKey(glfw.KeySpace, glfw.Press)
	w.onKey(glfw.KeySpace, glfw.Repeat)
	w.onKey(glfw.KeySpace, glfw.Release)
	assert.Equal(t, []input.Event{
		{Type: input.EventKeyDown, Key: input.KeySpace},
		{Type: input.EventKeyUp, Key: input.KeySpace},
	}, w.pending)
}
