package renderer

import (
	"eldritch-cube/internal/config"
	"eldritch-cube/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	// Computed once at startup, constant for the process lifetime
	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL. Depth test admits strictly nearer fragments; the cube
	// is drawn without face culling so winding order does not matter.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)

	// Create camera
	camera := graphics.NewCamera(config.WindowWidth, config.WindowHeight)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
		view:        camera.ViewMatrix(),
		proj:        camera.ProjectionMatrix(),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render clears the frame and renders all features with the given model matrix
func (r *Renderer) Render(model mgl32.Mat4, dt float64) error {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Model: model,
		View:  r.view,
		Proj:  r.proj,
		DT:    dt,
	}

	for _, renderable := range r.renderables {
		if err := renderable.Render(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// View returns the fixed view matrix
func (r *Renderer) View() mgl32.Mat4 { return r.view }

// Proj returns the fixed projection matrix
func (r *Renderer) Proj() mgl32.Mat4 { return r.proj }

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}
