package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jerieldones/valentine-garden/internal/engine/scene/shaders"
	"github.com/jerieldones/valentine-garden/internal/engine/shader"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// GroundRenderer draws the meadow disc under the field.
type GroundRenderer struct {
	program *shader.Program
	mesh    meshBuffer
}

// groundMesh builds a fan disc at y=0 with a soft green gradient from
// center to rim.
func groundMesh(radius float32, rings, sectors int) *garden.Mesh {
	center := garden.Color{R: 0.33, G: 0.52, B: 0.26}
	rim := garden.Color{R: 0.24, G: 0.42, B: 0.22}

	m := &garden.Mesh{}
	for ri := 0; ri <= rings; ri++ {
		f := float32(ri) / float32(rings)
		r := radius * f
		c := center.Lerp(rim, f)
		for si := 0; si < sectors; si++ {
			a := 2 * math32.Pi * float32(si) / float32(sectors)
			m.Positions = append(m.Positions, r*math32.Cos(a), 0, r*math32.Sin(a))
			m.Normals = append(m.Normals, 0, 1, 0)
			m.Colors = append(m.Colors, c.R, c.G, c.B)
		}
	}
	for ri := 0; ri < rings; ri++ {
		for si := 0; si < sectors; si++ {
			next := (si + 1) % sectors
			a := uint32(ri*sectors + si)
			b := uint32(ri*sectors + next)
			cIdx := uint32((ri+1)*sectors + si)
			d := uint32((ri+1)*sectors + next)
			m.Indices = append(m.Indices, a, cIdx, b, b, cIdx, d)
		}
	}
	return m
}

// NewGroundRenderer compiles the ground shader and uploads the disc.
func NewGroundRenderer(radius float32) (*GroundRenderer, error) {
	program, err := shader.NewProgram(shaders.GroundVertexShader, shaders.GroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ground shader: %w", err)
	}

	gr := &GroundRenderer{program: program}
	gr.mesh = uploadMesh(groundMesh(radius, 8, 48))
	gl.BindVertexArray(0)
	return gr, nil
}

// Render draws the ground.
func (gr *GroundRenderer) Render(viewProj math.Mat4, lightDir, ambient, camPos math.Vec3, haze hazeParams) {
	gr.program.Use()
	gl.UniformMatrix4fv(gr.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(gr.program.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform3f(gr.program.Uniform("uAmbient"), ambient.X, ambient.Y, ambient.Z)
	gl.Uniform3f(gr.program.Uniform("uCameraPos"), camPos.X, camPos.Y, camPos.Z)
	gl.Uniform3f(gr.program.Uniform("uHazeColor"), haze.color.X, haze.color.Y, haze.color.Z)
	gl.Uniform1f(gr.program.Uniform("uHazeNear"), haze.near)
	gl.Uniform1f(gr.program.Uniform("uHazeFar"), haze.far)

	gl.BindVertexArray(gr.mesh.vao)
	gl.DrawElements(gl.TRIANGLES, gr.mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (gr *GroundRenderer) Destroy() {
	gr.mesh.delete()
	gr.program.Delete()
}
