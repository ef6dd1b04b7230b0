package garden

import (
	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// BloomStrategy selects how the rose bloom is constructed.
type BloomStrategy string

const (
	// BloomSurface evaluates the closed-form rose-surface equation on a
	// parameter grid. Highest fidelity, the default.
	BloomSurface BloomStrategy = "surface"
	// BloomLayered stacks discrete rings of curved petals at decreasing
	// radius and increasing tilt. Cheaper, visibly coarser.
	BloomLayered BloomStrategy = "layered"
)

// BloomParams configures the closed-form rose surface.
type BloomParams struct {
	RadialSteps  int     // grid resolution along the petal parameter u
	AngularSteps int     // grid resolution along theta; controls smoothness
	Turns        float32 // how many full turns theta spans (8.5 for a rose)
	Scale        float32
	VerticalLift float32 // raises the bloom so the base sits at the stem tip
}

// DefaultBloomParams returns the resolution used by the scene.
func DefaultBloomParams() BloomParams {
	return BloomParams{
		RadialSteps:  28,
		AngularSteps: 160,
		Turns:        8.5,
		Scale:        1.0,
		VerticalLift: 0.0,
	}
}

const roseEpsilon = 1e-4

// roseSurfacePoint evaluates the rose-surface mapping at (u, theta).
//
// The modulo on theta must be strictly positive: a signed remainder on a
// negative theta lands in (-2pi, 0] and the kink at zero shows up as radial
// spikes across the bloom. X is clamped to keep the petal envelope from
// running away near the pole, and a non-finite or near-zero r collapses the
// sample to the axis instead of emitting NaN.
func roseSurfacePoint(u, theta, scale, lift float32) math.Vec3 {
	phi := (math32.Pi / 2) * math32.Exp(-theta/(8*math32.Pi))

	t := positiveMod(3.6*theta, 2*math32.Pi) / math32.Pi // in [0, 2)
	petal := 1.25*(1-(1-t)*(1-t)) - 0.25
	x := 1 - 0.5*petal*petal
	x = clampf(x, 0.05, 1.35)

	y := 1.95653 * u * u * math32.Pow(1.27689*u-1, 2) * math32.Sin(phi)

	sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)
	r := x * (u*sinPhi + y*cosPhi)
	h := x * (u*cosPhi - y*sinPhi)

	if math32.IsNaN(r) || math32.IsInf(r, 0) || r < roseEpsilon {
		r = roseEpsilon
		h = 0
	}

	return math.Vec3{
		X: r * math32.Sin(theta) * scale,
		Y: h*scale + lift,
		Z: r * math32.Cos(theta) * scale,
	}
}

// RoseSurface builds the rippled multi-layer bloom by sampling the
// closed-form mapping on a RadialSteps x AngularSteps grid and triangulating
// it as a regular quad mesh with shared vertices. Normals are computed from
// the final displaced positions.
func RoseSurface(p BloomParams) (*Mesh, error) {
	if p.RadialSteps < 3 || p.AngularSteps < 3 {
		return nil, configErrorf("rose surface", "grid too coarse: %dx%d", p.RadialSteps, p.AngularSteps)
	}
	if p.Turns <= 0 {
		return nil, configErrorf("rose surface", "non-positive turn count %g", p.Turns)
	}
	if p.Scale <= 0 {
		return nil, configErrorf("rose surface", "non-positive scale %g", p.Scale)
	}

	m := &Mesh{}
	nu, nv := p.RadialSteps, p.AngularSteps
	thetaMax := p.Turns * 2 * math32.Pi

	for i := 0; i < nu; i++ {
		u := float32(i) / float32(nu-1)
		for j := 0; j < nv; j++ {
			theta := float32(j) / float32(nv-1) * thetaMax
			pos := roseSurfacePoint(u, theta, p.Scale, p.VerticalLift)
			m.Positions = append(m.Positions, pos.X, pos.Y, pos.Z)
		}
	}

	for i := 0; i < nu-1; i++ {
		for j := 0; j < nv-1; j++ {
			a := uint32(i*nv + j)
			b := a + 1
			c := uint32((i+1)*nv + j)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	m.ComputeNormals()
	return m, nil
}

// layeredBloomCounts is the petal count per ring, outermost first.
var layeredBloomCounts = []int{14, 11, 9, 7, 5}

// LayeredBloom builds the discrete-petal bloom alternative: five rings of
// curved petals around a center sphere, each ring smaller and more upright
// than the one outside it. Parts are returned untinted so the caller's
// palette colors petals and center by region.
func LayeredBloom(scale float32, rng *Rand) ([]MeshPart, error) {
	if scale <= 0 {
		return nil, configErrorf("layered bloom", "non-positive scale %g", scale)
	}

	var parts []MeshPart
	layers := len(layeredBloomCounts)

	for layer, count := range layeredBloomCounts {
		f := float32(layer) / float32(layers-1) // 0 outer .. 1 inner
		length := scale * (1.1 - 0.55*f)
		width := scale * (0.42 - 0.16*f)
		radius := scale * (0.55 - 0.45*f)
		tilt := 1.15 - 0.95*f // radians off vertical; outer petals open wide

		petal, err := PetalBlade(length, width, 0.55, 10)
		if err != nil {
			return nil, err
		}

		phase := rng.Range(0, 2*math32.Pi)
		for i := 0; i < count; i++ {
			yaw := float32(i)/float32(count)*2*math32.Pi + phase
			rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, yaw).
				Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, tilt))
			parts = append(parts, MeshPart{
				Mesh: petal,
				Transform: Transform{
					Position: math.Vec3{
						X: math32.Sin(yaw) * radius,
						Y: scale * 0.12 * f,
						Z: math32.Cos(yaw) * radius,
					},
					Rotation: rot,
					Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
				},
				Region: RegionBloom,
			})
		}
	}

	core, err := Sphere(scale*0.18, 10, 8)
	if err != nil {
		return nil, err
	}
	parts = append(parts, MeshPart{
		Mesh: core,
		Transform: Transform{
			Position: math.Vec3{Y: scale * 0.25},
			Rotation: math.QuatIdentity(),
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Region: RegionCenter,
	})

	return parts, nil
}
