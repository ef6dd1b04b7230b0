// Package scene builds and renders the garden: ground, sky, the
// instanced flower field, the centerpiece rose and the falling hearts.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/jerieldones/valentine-garden/internal/config"
	"github.com/jerieldones/valentine-garden/internal/engine/lighting"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// hazeParams is the distance fade shared by the ground and field shaders.
type hazeParams struct {
	color math.Vec3
	near  float32
	far   float32
}

// Scene owns all garden entities and their renderers.
type Scene struct {
	cfg config.Config
	log *zap.Logger

	sunDir  math.Vec3
	ambient math.Vec3
	haze    hazeParams

	rose   *garden.Rose
	hearts *garden.Hearts
	pop    *garden.PopAnimation

	ground  *GroundRenderer
	sky     *SkyRenderer
	field   *FieldRenderer
	roseR   *RoseRenderer
	heartsR *HeartsRenderer

	elapsed float64
}

// New builds all garden content from the seed and uploads it to the GPU.
// Requires a current GL context.
func New(cfg config.Config, log *zap.Logger) (*Scene, error) {
	s := &Scene{
		cfg:     cfg,
		log:     log,
		sunDir:  lighting.SunDirection(cfg.Sky.SunElevation, cfg.Sky.SunAzimuth),
		ambient: math.Vec3{X: 0.42, Y: 0.40, Z: 0.38},
	}
	s.haze = hazeParams{
		color: math.Vec3{
			X: cfg.Sky.HorizonColor[0],
			Y: cfg.Sky.HorizonColor[1],
			Z: cfg.Sky.HorizonColor[2],
		},
		near: cfg.Garden.FieldRadius * 0.9,
		far:  cfg.Garden.FieldRadius * 1.9,
	}

	rng := garden.NewRand(cfg.Garden.Seed)

	roseParams := garden.DefaultRoseParams()
	roseParams.Strategy = garden.BloomStrategy(cfg.Garden.BloomStrategy)
	rose, err := garden.BuildRose(roseParams, rng)
	if err != nil {
		return nil, fmt.Errorf("build rose: %w", err)
	}
	s.rose = rose

	fieldParams := garden.DefaultFieldParams()
	fieldParams.FlowerCount = cfg.Garden.FlowerCount
	fieldParams.FieldRadius = cfg.Garden.FieldRadius
	fieldParams.ClearRadius = cfg.Garden.ClearRadius
	fieldParams.MaxJitter = cfg.Garden.PositionJitter
	field, err := garden.BuildField(fieldParams, rng)
	if err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}

	heartsParams := garden.DefaultHeartsParams()
	heartsParams.Count = cfg.Garden.HeartCount
	hearts, err := garden.NewHearts(heartsParams, rng)
	if err != nil {
		return nil, fmt.Errorf("build hearts: %w", err)
	}
	s.hearts = hearts
	s.pop = garden.NewPopAnimation(0.9)

	log.Info("garden built",
		zap.Uint32("seed", cfg.Garden.Seed),
		zap.Int("rose_triangles", rose.Mesh.TriangleCount()),
		zap.Int("flowers", len(field.Instances)),
		zap.Int("archetype_triangles", field.Archetype.TriangleCount()),
		zap.Int("hearts", len(hearts.Instances)),
	)

	if s.ground, err = NewGroundRenderer(cfg.Garden.FieldRadius * 2.2); err != nil {
		return nil, err
	}
	if s.sky, err = NewSkyRenderer(cfg.Sky); err != nil {
		s.Destroy()
		return nil, err
	}
	if s.field, err = NewFieldRenderer(field); err != nil {
		s.Destroy()
		return nil, err
	}
	if s.roseR, err = NewRoseRenderer(rose.Mesh); err != nil {
		s.Destroy()
		return nil, err
	}
	if s.heartsR, err = NewHeartsRenderer(hearts); err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

// RoseCapsule returns the rose hit volume for picking.
func (s *Scene) RoseCapsule() garden.Capsule {
	return s.rose.Collider
}

// Pop starts the one-shot tap animation.
func (s *Scene) Pop(now float64) {
	s.pop.Start(now)
}

// Update advances the CPU-animated entities. Hearts are the only
// per-frame mesh motion; everything else animates in shaders or through
// the rose model matrix.
func (s *Scene) Update(elapsed, dt float64) {
	s.elapsed = elapsed
	s.hearts.Update(float32(elapsed), float32(dt))
	s.heartsR.Sync(s.hearts)
}

// roseModel composes the idle sway with the pop scale.
func (s *Scene) roseModel() math.Mat4 {
	tiltX, tiltZ, breathe := garden.IdleSway(float32(s.elapsed))
	scale := breathe * s.pop.Scale(s.elapsed)
	return math.RotateX(tiltX).
		Mul(math.RotateZ(tiltZ)).
		Mul(math.Scale(scale, scale, scale))
}

// Render draws the frame: sky first with depth writes off, then the
// opaque passes, hearts last for blending.
func (s *Scene) Render(view, proj math.Mat4, camPos math.Vec3, width, height int) {
	viewProj := proj.Mul(view)

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	s.sky.Render(viewProj, camPos, s.sunDir, width, height)
	s.ground.Render(viewProj, s.sunDir, s.ambient, camPos, s.haze)
	s.field.Render(viewProj, float32(s.elapsed), s.sunDir, s.ambient, camPos, s.haze)
	s.roseR.Render(viewProj, s.roseModel(), s.sunDir, s.ambient, camPos)
	s.heartsR.Render(viewProj, s.sunDir)
}

// Destroy releases all GL resources. Nil-safe for partial construction.
func (s *Scene) Destroy() {
	if s.ground != nil {
		s.ground.Destroy()
	}
	if s.sky != nil {
		s.sky.Destroy()
	}
	if s.field != nil {
		s.field.Destroy()
	}
	if s.roseR != nil {
		s.roseR.Destroy()
	}
	if s.heartsR != nil {
		s.heartsR.Destroy()
	}
}
