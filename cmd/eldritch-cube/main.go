package main

import (
	"runtime"

	"eldritch-cube/internal/app"
	"eldritch-cube/internal/graphics/renderables/cube"
	renderer "eldritch-cube/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init failed:", err)
	}
	closer.Bind(glfw.Terminate)

	// Window setup
	window, err := setupWindow()
	if err != nil {
		closer.Fatalln("window setup failed:", err)
	}

	// Initialize renderer with the single renderable
	cubeRenderer := cube.NewCube()
	r, err := renderer.NewRenderer(cubeRenderer)
	if err != nil {
		closer.Fatalln("renderer setup failed:", err)
	}
	closer.Bind(r.Dispose)

	// Main frame loop
	a := app.New(&app.WindowSurface{Window: window}, r)
	if err := a.Run(); err != nil {
		closer.Fatalln("frame loop failed:", err)
	}
}
