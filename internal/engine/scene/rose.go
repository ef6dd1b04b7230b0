package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jerieldones/valentine-garden/internal/engine/scene/shaders"
	"github.com/jerieldones/valentine-garden/internal/engine/shader"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// RoseRenderer draws the centerpiece rose. The mesh is static; sway and
// the tap pop come in through the model matrix.
type RoseRenderer struct {
	program *shader.Program
	mesh    meshBuffer
}

// NewRoseRenderer uploads the merged rose mesh.
func NewRoseRenderer(mesh *garden.Mesh) (*RoseRenderer, error) {
	program, err := shader.NewProgram(shaders.RoseVertexShader, shaders.RoseFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("rose shader: %w", err)
	}

	rr := &RoseRenderer{program: program}
	rr.mesh = uploadMesh(mesh)
	gl.BindVertexArray(0)
	return rr, nil
}

// Render draws the rose with the given model transform.
func (rr *RoseRenderer) Render(viewProj, model math.Mat4, lightDir, ambient, camPos math.Vec3) {
	rr.program.Use()
	gl.UniformMatrix4fv(rr.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.UniformMatrix4fv(rr.program.Uniform("uModel"), 1, false, &model[0])
	gl.Uniform3f(rr.program.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform3f(rr.program.Uniform("uAmbient"), ambient.X, ambient.Y, ambient.Z)
	gl.Uniform3f(rr.program.Uniform("uCameraPos"), camPos.X, camPos.Y, camPos.Z)

	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(rr.mesh.vao)
	gl.DrawElements(gl.TRIANGLES, rr.mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

// Destroy releases GL resources.
func (rr *RoseRenderer) Destroy() {
	rr.mesh.delete()
	rr.program.Delete()
}
