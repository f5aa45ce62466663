package app

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSurface adapts a glfw window to the Surface contract.
type WindowSurface struct {
	Window *glfw.Window
}

// WaitEvents blocks until a window-system event arrives or the timeout
// expires, whichever comes first. A non-positive timeout degrades to a poll
// so close requests are still picked up when the frame deadline has already
// passed.
func (s *WindowSurface) WaitEvents(timeout time.Duration) {
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout.Seconds())
		return
	}
	glfw.PollEvents()
}

// ShouldClose reports whether the user requested the window to close
func (s *WindowSurface) ShouldClose() bool {
	return s.Window.ShouldClose()
}

// Present swaps the back buffer to the screen
func (s *WindowSurface) Present() {
	s.Window.SwapBuffers()
}
