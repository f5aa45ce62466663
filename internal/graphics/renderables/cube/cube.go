package cube

import (
	"eldritch-cube/internal/graphics"
	renderer "eldritch-cube/internal/graphics/renderer"
	"eldritch-cube/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Interleaved vertex data: 3 position floats followed by 4 RGBA floats per
// vertex. The 8 corners are shared across all 12 triangles via the index list.
var Vertices = []float32{
	// Front face
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0,

	// Back face
	0.5, 0.5, -0.5, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, 1.0, 1.0,
}

// Indices describes the 12 triangles of the cube. Byte-sized indices are
// enough for an 8-vertex mesh.
var Indices = []uint8{
	0, 1, 2, 0, 2, 3,
	0, 1, 5, 0, 4, 5,
	2, 3, 6, 3, 6, 7,
	5, 6, 7, 4, 5, 7,
	0, 3, 7, 0, 4, 7,
	1, 2, 6, 1, 5, 6,
}

// VertexStride is the number of floats per vertex (position + RGBA)
const VertexStride = 7

// The uniform names (m, v, p) and attribute names (coord, rgba) are the
// binding contract with the render loop; keep them as they are.
const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 coord;

uniform mat4 m;
uniform mat4 v;
uniform mat4 p;

in vec4 rgba;
out vec4 color;

void main() {
    gl_Position = p * v * m * vec4(coord, 1.0);
    color = rgba;
}
`

const fragmentShaderSource = `# version 150

in vec4 color;
out vec4 FragColor;

void main() {
    FragColor = color;
}
`

// Cube implements rendering of the single rotating cube mesh
type Cube struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32
}

// NewCube creates a new cube renderable
func NewCube() *Cube {
	return &Cube{}
}

// Init compiles the cube shader and uploads the mesh to GPU buffers
func (c *Cube) Init() error {
	var err error
	c.shader, err = graphics.NewShaderFromSource(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}

	if err := c.setupCubeVAO(); err != nil {
		return err
	}

	return nil
}

// Render draws the cube with the frame's transform matrices
func (c *Cube) Render(ctx renderer.RenderContext) error {
	defer profiling.Track("renderer.renderCube")()

	c.shader.Use()
	c.shader.SetMatrix4("m", &ctx.Model[0])
	c.shader.SetMatrix4("v", &ctx.View[0])
	c.shader.SetMatrix4("p", &ctx.Proj[0])

	gl.BindVertexArray(c.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(Indices)), gl.UNSIGNED_BYTE, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return &graphics.GLError{Op: "draw cube", Code: code}
	}
	return nil
}

// Dispose cleans up OpenGL resources
func (c *Cube) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Cube) setupCubeVAO() error {
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(Indices), gl.Ptr(Indices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)

	// rgba carries no layout qualifier in the shader; its location is
	// whatever the linker assigned
	rgbaLoc, err := c.shader.AttribLocation("rgba")
	if err != nil {
		return err
	}
	gl.EnableVertexAttribArray(rgbaLoc)
	gl.VertexAttribPointerWithOffset(rgbaLoc, 4, gl.FLOAT, false, stride, 3*4)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return &graphics.GLError{Op: "upload cube mesh", Code: code}
	}
	return nil
}
