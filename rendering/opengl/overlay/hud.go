package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"solarsystem/rendering/opengl/shaders"
)

const hudVertexShader = `
#version 410 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec4 color;

out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragColor = color;
}
`

const hudFragmentShader = `
#version 410 core

in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
`

// HUD draws the stats bars in the top-left corner
type HUD struct {
	program uint32
	projLoc int32
	vao     uint32
	vbo     uint32

	width  float32
	height float32

	stats Stats
}

// NewHUD creates the overlay for a width x height window
func NewHUD(width, height int) (*HUD, error) {
	program, err := shaders.BuildProgram("hud", hudVertexShader, hudFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build HUD program: %w", err)
	}

	h := &HUD{
		program: program,
		projLoc: shaders.UniformLocation(program, "projection"),
		width:   float32(width),
		height:  float32(height),
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return h, nil
}

// Update sets the values shown on the next Render
func (h *HUD) Update(s Stats) {
	h.stats = s
}

// Render draws the bars over the current frame. Depth test and blending
// are restored to the scene's state afterwards.
func (h *HUD) Render() {
	vertices := BuildBars(h.stats)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.UseProgram(h.program)
	projection := mgl32.Ortho2D(0, h.width, h.height, 0)
	gl.UniformMatrix4fv(h.projLoc, 1, false, &projection[0])

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/floatsPerVertex))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// UpdateSize tracks the window size in screen coordinates, which the
// orthographic projection is laid out in
func (h *HUD) UpdateSize(width, height int) {
	h.width = float32(width)
	h.height = float32(height)
}

// Release deletes the GL objects
func (h *HUD) Release() {
	if h.program != 0 {
		gl.DeleteProgram(h.program)
	}
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
}
