package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jerieldones/valentine-garden/internal/garden"
)

// meshBuffer holds the GL objects for one uploaded static mesh.
// Layout: interleaved position(3) + normal(3) + color(3) at attribute
// locations 0, 1, 2.
type meshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

const meshStride = 9 * 4 // 9 floats per vertex

// uploadMesh interleaves a garden mesh and uploads it. The VAO is left
// bound so callers can append instance attributes before unbinding.
func uploadMesh(m *garden.Mesh) meshBuffer {
	n := m.VertexCount()
	interleaved := make([]float32, 0, n*9)
	for i := 0; i < n; i++ {
		interleaved = append(interleaved,
			m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2],
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2],
			m.Colors[i*3], m.Colors[i*3+1], m.Colors[i*3+2],
		)
	}

	var mb meshBuffer
	mb.indexCount = int32(len(m.Indices))

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, unsafe.Pointer(&interleaved[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, meshStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, meshStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	return mb
}

func (mb *meshBuffer) delete() {
	if mb.vao != 0 {
		gl.DeleteVertexArrays(1, &mb.vao)
		mb.vao = 0
	}
	if mb.vbo != 0 {
		gl.DeleteBuffers(1, &mb.vbo)
		mb.vbo = 0
	}
	if mb.ebo != 0 {
		gl.DeleteBuffers(1, &mb.ebo)
		mb.ebo = 0
	}
}

// setMat4Attribs configures four consecutive vec4 attributes starting at
// baseLoc as one per-instance mat4 inside a buffer of the given stride.
func setMat4Attribs(baseLoc uint32, stride int32, offset uintptr) {
	for col := uint32(0); col < 4; col++ {
		loc := baseLoc + col
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, stride, offset+uintptr(col)*4*4)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}
}
