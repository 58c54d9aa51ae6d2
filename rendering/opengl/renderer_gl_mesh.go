package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"solarsystem/core"
	"solarsystem/rendering/opengl/shaders"
)

// meshBuffer is an uploaded indexed mesh
type meshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
}

// uploadMesh creates the VAO/VBO/EBO for m with the core.Vertex layout
func uploadMesh(m core.Mesh) meshBuffer {
	var b meshBuffer

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(unsafe.Sizeof(core.Vertex{})), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(shaders.PositionLocation, 3, gl.FLOAT, false, core.VertexStride, gl.PtrOffset(core.VertexPosOffset))
	gl.EnableVertexAttribArray(shaders.PositionLocation)

	// Normal attribute
	gl.VertexAttribPointer(shaders.NormalLocation, 3, gl.FLOAT, false, core.VertexStride, gl.PtrOffset(core.VertexNormOffset))
	gl.EnableVertexAttribArray(shaders.NormalLocation)

	// TexCoord attribute
	gl.VertexAttribPointer(shaders.TexcoordLocation, 2, gl.FLOAT, false, core.VertexStride, gl.PtrOffset(core.VertexTexOffset))
	gl.EnableVertexAttribArray(shaders.TexcoordLocation)

	// The element buffer binding is part of the VAO state
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	b.count = int32(len(m.Indices))

	gl.BindVertexArray(0)
	return b
}

func (b meshBuffer) bind() {
	gl.BindVertexArray(b.vao)
}

func (b *meshBuffer) release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	*b = meshBuffer{}
}
