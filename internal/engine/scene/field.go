package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jerieldones/valentine-garden/internal/engine/scene/shaders"
	"github.com/jerieldones/valentine-garden/internal/engine/shader"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// Per-instance layout: mat4 model (16) + tint (3) + sway (1) + phase (1).
const fieldInstanceFloats = 21

// FieldRenderer draws every field flower in one instanced call. Instance
// data is uploaded once; all motion comes from the wind vertex shader.
type FieldRenderer struct {
	program     *shader.Program
	mesh        meshBuffer
	instanceVBO uint32
	count       int32
	height      float32
}

// NewFieldRenderer uploads the archetype mesh and the static instance
// attributes for the whole field.
func NewFieldRenderer(field *garden.Field) (*FieldRenderer, error) {
	program, err := shader.NewProgram(shaders.FieldVertexShader, shaders.FieldFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("field shader: %w", err)
	}

	fr := &FieldRenderer{
		program: program,
		count:   int32(len(field.Instances)),
	}
	_, maxB := field.Archetype.Bounds()
	fr.height = maxB.Y

	fr.mesh = uploadMesh(field.Archetype)

	data := make([]float32, 0, len(field.Instances)*fieldInstanceFloats)
	for _, inst := range field.Instances {
		m := inst.Matrix()
		data = append(data, m[:]...)
		data = append(data, inst.Color.R, inst.Color.G, inst.Color.B)
		data = append(data, inst.Sway, inst.Phase)
	}

	gl.GenBuffers(1, &fr.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(fieldInstanceFloats * 4)
	setMat4Attribs(3, stride, 0)
	gl.VertexAttribPointerWithOffset(7, 3, gl.FLOAT, false, stride, 16*4)
	gl.EnableVertexAttribArray(7)
	gl.VertexAttribDivisor(7, 1)
	gl.VertexAttribPointerWithOffset(8, 1, gl.FLOAT, false, stride, 19*4)
	gl.EnableVertexAttribArray(8)
	gl.VertexAttribDivisor(8, 1)
	gl.VertexAttribPointerWithOffset(9, 1, gl.FLOAT, false, stride, 20*4)
	gl.EnableVertexAttribArray(9)
	gl.VertexAttribDivisor(9, 1)

	gl.BindVertexArray(0)
	return fr, nil
}

// Render draws all instances.
func (fr *FieldRenderer) Render(viewProj math.Mat4, time float32, lightDir, ambient, camPos math.Vec3, haze hazeParams) {
	fr.program.Use()
	gl.UniformMatrix4fv(fr.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform1f(fr.program.Uniform("uTime"), time)
	gl.Uniform1f(fr.program.Uniform("uArchetypeHeight"), fr.height)
	gl.Uniform3f(fr.program.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform3f(fr.program.Uniform("uAmbient"), ambient.X, ambient.Y, ambient.Z)
	gl.Uniform3f(fr.program.Uniform("uCameraPos"), camPos.X, camPos.Y, camPos.Z)
	gl.Uniform3f(fr.program.Uniform("uHazeColor"), haze.color.X, haze.color.Y, haze.color.Z)
	gl.Uniform1f(fr.program.Uniform("uHazeNear"), haze.near)
	gl.Uniform1f(fr.program.Uniform("uHazeFar"), haze.far)

	// Petals and leaves are single-sided strips
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(fr.mesh.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, fr.mesh.indexCount, gl.UNSIGNED_INT, nil, fr.count)
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

// Destroy releases GL resources.
func (fr *FieldRenderer) Destroy() {
	if fr.instanceVBO != 0 {
		gl.DeleteBuffers(1, &fr.instanceVBO)
		fr.instanceVBO = 0
	}
	fr.mesh.delete()
	fr.program.Delete()
}
