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

// HeartsRenderer draws the falling hearts. Unlike the field, heart
// transforms change every frame, so the instance buffer is dynamic and
// re-uploaded on each update.
type HeartsRenderer struct {
	program     *shader.Program
	mesh        meshBuffer
	instanceVBO uint32
	matrices    []float32
	count       int32
}

// NewHeartsRenderer uploads the shared heart silhouette and allocates the
// per-instance matrix buffer.
func NewHeartsRenderer(hearts *garden.Hearts) (*HeartsRenderer, error) {
	program, err := shader.NewProgram(shaders.HeartVertexShader, shaders.HeartFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("heart shader: %w", err)
	}

	hr := &HeartsRenderer{
		program:  program,
		count:    int32(len(hearts.Instances)),
		matrices: make([]float32, len(hearts.Instances)*16),
	}
	hr.mesh = uploadMesh(hearts.Mesh)

	gl.GenBuffers(1, &hr.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, hr.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(hr.matrices)*4, nil, gl.DYNAMIC_DRAW)
	setMat4Attribs(3, 16*4, 0)

	gl.BindVertexArray(0)
	return hr, nil
}

// Sync recomputes instance matrices from the current heart state and
// re-uploads the buffer. Call once per frame after Hearts.Update.
func (hr *HeartsRenderer) Sync(hearts *garden.Hearts) {
	for i, inst := range hearts.Instances {
		m := math.Translate(inst.Position.X, inst.Position.Y, inst.Position.Z).
			Mul(math.RotateY(inst.Spin)).
			Mul(math.Scale(inst.Scale, inst.Scale, inst.Scale))
		copy(hr.matrices[i*16:], m[:])
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, hr.instanceVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(hr.matrices)*4, unsafe.Pointer(&hr.matrices[0]))
}

// Render draws all hearts with alpha blending.
func (hr *HeartsRenderer) Render(viewProj math.Mat4, lightDir math.Vec3) {
	hr.program.Use()
	gl.UniformMatrix4fv(hr.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(hr.program.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(hr.mesh.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, hr.mesh.indexCount, gl.UNSIGNED_INT, nil, hr.count)
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
}

// Destroy releases GL resources.
func (hr *HeartsRenderer) Destroy() {
	if hr.instanceVBO != 0 {
		gl.DeleteBuffers(1, &hr.instanceVBO)
		hr.instanceVBO = 0
	}
	hr.mesh.delete()
	hr.program.Delete()
}
