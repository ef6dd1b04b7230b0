package garden

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// FieldParams configures the instanced flower field.
type FieldParams struct {
	FlowerCount int
	FieldRadius float32 // outer edge of the annulus
	ClearRadius float32 // kept empty around the rose
	MaxJitter   float32 // positional jitter added after annulus sampling

	TiltMax     float32 // max tilt (radians) on each horizontal axis
	ScaleMin    float32 // lower bound for both scale factors
	ScaleMax    float32
	SwayMin     float32 // per-instance wind amplitude coefficient bounds
	SwayMax     float32
	HueJitter   float32 // HSL jitter half-widths applied to palette colors
	SatJitter   float32
	LightJitter float32
}

// DefaultFieldParams returns the field used by the scene.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		FlowerCount: 2000,
		FieldRadius: 26,
		ClearRadius: 3.5,
		MaxJitter:   0.5,
		TiltMax:     0.14,
		ScaleMin:    0.65,
		ScaleMax:    1.35,
		SwayMin:     0.5,
		SwayMax:     1.0,
		HueJitter:   0.035,
		SatJitter:   0.08,
		LightJitter: 0.10,
	}
}

// FieldFlowerPalette holds the petal colors flowers draw from.
var FieldFlowerPalette = []Color{
	{R: 0.98, G: 0.77, B: 0.84}, // pink
	{R: 0.93, G: 0.40, B: 0.56}, // deep pink
	{R: 0.99, G: 0.92, B: 0.66}, // pale yellow
	{R: 0.86, G: 0.67, B: 0.95}, // lilac
	{R: 0.98, G: 0.95, B: 0.96}, // near white
}

// flowerArchetypePalette colors the archetype mesh by region. Petals are
// left near-white so the wind shader can tint them with the per-instance
// color; stem/leaf/center vertices carry their final colors and the shader
// leaves them alone.
var flowerArchetypePalette = Palette{
	RegionStem:   {R: 0.24, G: 0.48, B: 0.24},
	RegionLeaf:   {R: 0.30, G: 0.56, B: 0.27},
	RegionBloom:  {R: 0.985, G: 0.985, B: 0.985},
	RegionCenter: {R: 0.96, G: 0.76, B: 0.22},
}

// FlowerInstance is one scattered flower: a static transform plus the
// attributes the wind shader reads. Nothing here changes after creation;
// field flowers deform in the vertex stage only.
type FlowerInstance struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Color    Color
	Sway     float32
	Phase    float32
}

// Matrix returns the instance's composed world transform.
func (fi FlowerInstance) Matrix() math.Mat4 {
	return Transform{Position: fi.Position, Rotation: fi.Rotation, Scale: fi.Scale}.Mat4()
}

// Field is the archetype mesh plus all instance data, ready for instanced
// upload.
type Field struct {
	Archetype *Mesh
	Instances []FlowerInstance
}

// BuildField builds the archetype flower once and scatters FlowerCount
// instances across the annulus between ClearRadius and FieldRadius.
//
// Radial placement is uniform in radial fraction, not in area. That biases
// density toward the outer edge, which reads as a fuller field from the
// default camera; it is intentional, not a sampling bug.
func BuildField(p FieldParams, rng *Rand) (*Field, error) {
	if p.FlowerCount <= 0 {
		return nil, configErrorf("field", "non-positive flower count %d", p.FlowerCount)
	}
	if p.ClearRadius < 0 || p.FieldRadius <= p.ClearRadius {
		return nil, configErrorf("field", "bad annulus [%g, %g]", p.ClearRadius, p.FieldRadius)
	}
	if p.ScaleMin <= 0 || p.ScaleMax < p.ScaleMin {
		return nil, configErrorf("field", "bad scale bounds [%g, %g]", p.ScaleMin, p.ScaleMax)
	}

	arch, err := buildFlowerArchetype(rng)
	if err != nil {
		return nil, fmt.Errorf("flower archetype: %w", err)
	}

	field := &Field{
		Archetype: arch,
		Instances: make([]FlowerInstance, 0, p.FlowerCount),
	}

	for i := 0; i < p.FlowerCount; i++ {
		angle := rng.Range(0, 2*math32.Pi)
		radius := p.ClearRadius + rng.Next()*(p.FieldRadius-p.ClearRadius)

		// Jitter is a bounded-magnitude offset, so the final radius stays
		// within [ClearRadius, FieldRadius+MaxJitter]; offsets that would
		// land a flower inside the clearing are pushed back to its edge.
		jitterAngle := rng.Range(0, 2*math32.Pi)
		jitterDist := rng.Range(0, p.MaxJitter)
		pos := math.Vec3{
			X: math32.Cos(angle)*radius + math32.Cos(jitterAngle)*jitterDist,
			Y: 0,
			Z: math32.Sin(angle)*radius + math32.Sin(jitterAngle)*jitterDist,
		}
		if d := pos.XZ().Length(); d < p.ClearRadius && d > 0 {
			pos = pos.Scale(p.ClearRadius / d)
		}

		rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, rng.Range(0, 2*math32.Pi)).
			Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, rng.Range(-p.TiltMax, p.TiltMax))).
			Mul(math.QuatFromAxisAngle(math.Vec3{Z: 1}, rng.Range(-p.TiltMax, p.TiltMax)))

		horizontal := rng.Range(p.ScaleMin, p.ScaleMax)
		vertical := rng.Range(p.ScaleMin, p.ScaleMax)

		base := Pick(rng, FieldFlowerPalette)

		field.Instances = append(field.Instances, FlowerInstance{
			Position: pos,
			Rotation: rot,
			Scale:    math.Vec3{X: horizontal, Y: vertical, Z: horizontal},
			Color:    base.Jitter(rng, p.HueJitter, p.SatJitter, p.LightJitter),
			Sway:     rng.Range(p.SwayMin, p.SwayMax),
			Phase:    rng.Range(0, 2*math32.Pi),
		})
	}

	return field, nil
}

// buildFlowerArchetype assembles the single flower every instance shares:
// a short stem, two asymmetric leaves, two layered rings of petals and a
// center sphere, merged and region-colored.
func buildFlowerArchetype(rng *Rand) (*Mesh, error) {
	const height = 1.0

	stemCurve := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: 0.04, Y: height * 0.5, Z: -0.03},
		{X: 0, Y: height, Z: 0},
	}
	stem, err := TaperedTube(stemCurve, LinearTaper(0.035, 0.02), 10, 6)
	if err != nil {
		return nil, err
	}
	parts := []MeshPart{Part(stem, RegionStem)}

	// Two asymmetric leaves partway up the stem.
	for _, cfg := range []struct {
		t, yaw, length float32
	}{
		{0.35, 0.6, 0.38},
		{0.55, 3.6, 0.30},
	} {
		blade, err := PetalBlade(cfg.length, cfg.length*0.3, 0.5, 8)
		if err != nil {
			return nil, err
		}
		rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, cfg.yaw).
			Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, 1.15))
		parts = append(parts, MeshPart{
			Mesh: blade,
			Transform: Transform{
				Position: stemCurve.Point(cfg.t),
				Rotation: rot,
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Region: RegionLeaf,
		})
	}

	// Two layered petal rings at the stem tip.
	tip := stemCurve.Point(1)
	for layer, ring := range []struct {
		count  int
		length float32
		tilt   float32
	}{
		{6, 0.36, 1.05},
		{5, 0.28, 0.65},
	} {
		petal, err := PetalBlade(ring.length, ring.length*0.5, 0.45, 8)
		if err != nil {
			return nil, err
		}
		phase := rng.Range(0, 2*math32.Pi)
		for j := 0; j < ring.count; j++ {
			yaw := float32(j)/float32(ring.count)*2*math32.Pi + phase
			rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, yaw).
				Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, ring.tilt))
			parts = append(parts, MeshPart{
				Mesh: petal,
				Transform: Transform{
					Position: tip.Add(math.Vec3{Y: float32(layer) * 0.02}),
					Rotation: rot,
					Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
				},
				Region: RegionBloom,
			})
		}
	}

	center, err := Sphere(0.09, 8, 6)
	if err != nil {
		return nil, err
	}
	parts = append(parts, MeshPart{
		Mesh: center,
		Transform: Transform{
			Position: tip.Add(math.Vec3{Y: 0.05}),
			Rotation: math.QuatIdentity(),
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Region: RegionCenter,
	})

	return Merge(parts, flowerArchetypePalette)
}
