package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jerieldones/valentine-garden/internal/config"
	"github.com/jerieldones/valentine-garden/internal/engine/scene/shaders"
	"github.com/jerieldones/valentine-garden/internal/engine/shader"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// SkyRenderer draws the gradient dome with the sun. The dome is a unit
// sphere re-centered on the camera every frame and pinned to the far
// plane, so it never clips and never parallaxes.
type SkyRenderer struct {
	program *shader.Program
	mesh    meshBuffer
	cfg     config.SkyConfig
}

// NewSkyRenderer compiles the sky shader and uploads the dome sphere.
func NewSkyRenderer(cfg config.SkyConfig) (*SkyRenderer, error) {
	program, err := shader.NewProgram(shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}

	dome, err := garden.Sphere(1, 32, 16)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("sky dome: %w", err)
	}

	sr := &SkyRenderer{program: program, cfg: cfg}
	sr.mesh = uploadMesh(dome)
	gl.BindVertexArray(0)
	return sr, nil
}

// Render draws the sky. Call first each frame; depth writes are off so
// everything else draws over it.
func (sr *SkyRenderer) Render(viewProj math.Mat4, camPos, sunDir math.Vec3, width, height int) {
	gl.DepthMask(false)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	sr.program.Use()
	gl.UniformMatrix4fv(sr.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(sr.program.Uniform("uCameraPos"), camPos.X, camPos.Y, camPos.Z)
	gl.Uniform1f(sr.program.Uniform("uRadius"), 1)
	gl.Uniform3f(sr.program.Uniform("uTopColor"), sr.cfg.TopColor[0], sr.cfg.TopColor[1], sr.cfg.TopColor[2])
	gl.Uniform3f(sr.program.Uniform("uHorizonColor"), sr.cfg.HorizonColor[0], sr.cfg.HorizonColor[1], sr.cfg.HorizonColor[2])
	gl.Uniform3f(sr.program.Uniform("uBottomColor"), sr.cfg.BottomColor[0], sr.cfg.BottomColor[1], sr.cfg.BottomColor[2])
	gl.Uniform3f(sr.program.Uniform("uSunDir"), sunDir.X, sunDir.Y, sunDir.Z)
	gl.Uniform1f(sr.program.Uniform("uSunIntensity"), sr.cfg.SunIntensity)
	gl.Uniform1f(sr.program.Uniform("uSunSize"), sr.cfg.SunSize)
	gl.Uniform1f(sr.program.Uniform("uGlow"), sr.cfg.Glow)
	gl.Uniform1f(sr.program.Uniform("uScatter"), sr.cfg.Scatter)
	gl.Uniform1f(sr.program.Uniform("uHorizonFalloff"), sr.cfg.HorizonFalloff)
	gl.Uniform1f(sr.program.Uniform("uExposure"), sr.cfg.Exposure)
	gl.Uniform2f(sr.program.Uniform("uResolution"), float32(width), float32(height))

	gl.BindVertexArray(sr.mesh.vao)
	gl.DrawElements(gl.TRIANGLES, sr.mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
}

// Destroy releases GL resources.
func (sr *SkyRenderer) Destroy() {
	sr.mesh.delete()
	sr.program.Delete()
}
