package config

import "sync"

// Fixed window and animation parameters. There is no config file and no flags;
// everything the program needs is known at compile time.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Eldritch Cube"

	// Depth buffer precision requested from the window system
	DepthBufferBits = 24

	// Radians added to the cube's rotation angle each frame tick
	RotationStep = 0.02
)

// FrameSettings holds frame pacing configuration
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 60, // default value
}

// GetFPSLimit returns the current frame rate cap
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 1 {
		limit = 1
	}
	if limit > 240 {
		limit = 240
	}

	globalFrameSettings.fpsLimit = limit
}
