package garden

import (
	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// HeartsParams configures the decorative falling-hearts layer.
type HeartsParams struct {
	Count     int
	Radius    float32 // horizontal spawn radius
	SpawnMinY float32
	SpawnMaxY float32
	FallMin   float32 // units per second
	FallMax   float32
	SwayAmp   float32
	ScaleMin  float32
	ScaleMax  float32
	GroundY   float32
}

// DefaultHeartsParams returns the heart layer used by the scene.
func DefaultHeartsParams() HeartsParams {
	return HeartsParams{
		Count:     40,
		Radius:    16,
		SpawnMinY: 6,
		SpawnMaxY: 14,
		FallMin:   0.8,
		FallMax:   1.8,
		SwayAmp:   0.6,
		ScaleMin:  0.12,
		ScaleMax:  0.28,
	}
}

// HeartInstance is one falling heart. Unlike field flowers these are
// CPU-animated: position integrates fall speed each frame and the heart
// respawns aloft after crossing the ground plane.
type HeartInstance struct {
	Position  math.Vec3
	FallSpeed float32
	Phase     float32
	SpinSpeed float32
	Spin      float32
	Scale     float32
}

// Hearts owns the heart mesh and all instances.
type Hearts struct {
	Mesh      *Mesh
	Instances []HeartInstance

	params HeartsParams
	rng    *Rand
}

// NewHearts builds the shared heart silhouette and spawns Count instances
// at random aerial positions.
func NewHearts(p HeartsParams, rng *Rand) (*Hearts, error) {
	if p.Count < 0 {
		return nil, configErrorf("hearts", "negative count %d", p.Count)
	}
	if p.SpawnMaxY <= p.SpawnMinY {
		return nil, configErrorf("hearts", "bad spawn band [%g, %g]", p.SpawnMinY, p.SpawnMaxY)
	}

	mesh, err := HeartMesh(1.0, 8)
	if err != nil {
		return nil, err
	}
	mesh.FillColor(Color{R: 0.95, G: 0.35, B: 0.5})

	h := &Hearts{Mesh: mesh, params: p, rng: rng}
	for i := 0; i < p.Count; i++ {
		inst := h.spawn()
		// Stagger initial heights across the whole fall range so the layer
		// does not start as one synchronized curtain.
		inst.Position.Y = rng.Range(p.GroundY+0.5, p.SpawnMaxY)
		h.Instances = append(h.Instances, inst)
	}
	return h, nil
}

func (h *Hearts) spawn() HeartInstance {
	p := h.params
	angle := h.rng.Range(0, 2*math32.Pi)
	radius := h.rng.Range(0, p.Radius)
	return HeartInstance{
		Position: math.Vec3{
			X: math32.Cos(angle) * radius,
			Y: h.rng.Range(p.SpawnMinY, p.SpawnMaxY),
			Z: math32.Sin(angle) * radius,
		},
		FallSpeed: h.rng.Range(p.FallMin, p.FallMax),
		Phase:     h.rng.Range(0, 2*math32.Pi),
		SpinSpeed: h.rng.Range(-1.2, 1.2),
		Scale:     h.rng.Range(p.ScaleMin, p.ScaleMax),
	}
}

// Update advances every heart by dt seconds: integrate the fall, sway
// horizontally on the instance phase, spin, and respawn below the ground.
func (h *Hearts) Update(elapsed, dt float32) {
	p := h.params
	for i := range h.Instances {
		inst := &h.Instances[i]
		inst.Position.Y -= inst.FallSpeed * dt
		inst.Position.X += math32.Sin(elapsed*0.9+inst.Phase) * p.SwayAmp * dt
		inst.Spin += inst.SpinSpeed * dt

		if inst.Position.Y < p.GroundY {
			*inst = h.spawn()
		}
	}
}
