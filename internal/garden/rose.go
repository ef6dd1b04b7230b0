package garden

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// RoseParams configures the compound rose organism.
type RoseParams struct {
	StemHeight     float32
	StemBend       float32 // sideways offset of the middle control point
	StemBaseRadius float32
	StemTipRadius  float32
	StemSegments   int
	StemSides      int
	ThornCount     int
	ThornLength    float32
	LeafCount      int
	BloomScale     float32
	Strategy       BloomStrategy
}

// DefaultRoseParams returns the rose used by the scene.
func DefaultRoseParams() RoseParams {
	return RoseParams{
		StemHeight:     3.2,
		StemBend:       0.35,
		StemBaseRadius: 0.07,
		StemTipRadius:  0.035,
		StemSegments:   24,
		StemSides:      10,
		ThornCount:     7,
		ThornLength:    0.16,
		LeafCount:      3,
		BloomScale:     0.9,
		Strategy:       BloomSurface,
	}
}

// RosePalette is the region coloring for the rose organism.
var RosePalette = Palette{
	RegionStem:   {R: 0.16, G: 0.42, B: 0.19},
	RegionLeaf:   {R: 0.20, G: 0.52, B: 0.22},
	RegionThorn:  {R: 0.38, G: 0.26, B: 0.16},
	RegionBloom:  {R: 0.80, G: 0.09, B: 0.22},
	RegionCenter: {R: 0.45, G: 0.03, B: 0.10},
}

// Rose is one assembled organism: a single merged mesh plus the invisible
// collision capsule used for pointer hit testing.
type Rose struct {
	Mesh     *Mesh
	Collider Capsule
	StemTip  math.Vec3
}

// BuildRose assembles the organism: tapered stem tube, thorns spiralling
// along the stem curve, compound leaves and the bloom at the tip, merged
// into one region-colored mesh. Thorn and leaf anchors are always derived
// from the stem curve at build time, so reshaping the stem moves everything
// attached to it.
func BuildRose(p RoseParams, rng *Rand) (*Rose, error) {
	if p.StemHeight <= 0 {
		return nil, configErrorf("rose", "non-positive stem height %g", p.StemHeight)
	}
	if p.StemTipRadius <= 0 || p.StemBaseRadius < p.StemTipRadius {
		return nil, configErrorf("rose", "bad stem radii %g -> %g", p.StemBaseRadius, p.StemTipRadius)
	}
	if p.ThornCount < 0 || p.LeafCount < 0 {
		return nil, configErrorf("rose", "negative part count")
	}

	stemCurve := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: p.StemBend, Y: p.StemHeight * 0.55, Z: -p.StemBend * 0.4},
		{X: 0, Y: p.StemHeight, Z: 0},
	}
	taper := LinearTaper(p.StemBaseRadius, p.StemTipRadius)

	stem, err := TaperedTube(stemCurve, taper, p.StemSegments, p.StemSides)
	if err != nil {
		return nil, fmt.Errorf("rose stem: %w", err)
	}
	parts := []MeshPart{Part(stem, RegionStem)}

	thornParts, err := placeThorns(stemCurve, taper, p, rng)
	if err != nil {
		return nil, err
	}
	parts = append(parts, thornParts...)

	leafParts, err := placeLeaves(stemCurve, p, rng)
	if err != nil {
		return nil, err
	}
	parts = append(parts, leafParts...)

	tip := stemCurve.Point(1)
	bloomParts, err := buildBloom(p, tip, rng)
	if err != nil {
		return nil, err
	}
	parts = append(parts, bloomParts...)

	mesh, err := Merge(parts, RosePalette)
	if err != nil {
		return nil, fmt.Errorf("rose merge: %w", err)
	}

	return &Rose{
		Mesh:    mesh,
		StemTip: tip,
		Collider: Capsule{
			A:      math.Vec3{Y: 0},
			B:      tip.Add(math.Vec3{Y: p.BloomScale * 0.8}),
			Radius: p.BloomScale * 0.9,
		},
	}, nil
}

// placeThorns distributes thorns at evenly spaced curve parameters. Each
// thorn points along the local normal rotated around the tangent by an
// accumulating spiral angle, so thorns wind around the stem instead of
// lining up in one plane.
func placeThorns(curve Spline, taper RadiusFunc, p RoseParams, rng *Rand) ([]MeshPart, error) {
	if p.ThornCount == 0 {
		return nil, nil
	}

	thorn, err := Cone(p.ThornLength*0.32, p.ThornLength, 6)
	if err != nil {
		return nil, fmt.Errorf("thorn: %w", err)
	}

	frames := curve.Frames(p.ThornCount + 2)
	spiral := rng.Range(0, 2*math32.Pi)
	var parts []MeshPart

	for i := 1; i <= p.ThornCount; i++ {
		f := frames[i]
		t := float32(i) / float32(p.ThornCount+1)
		spiral += 2.4 + rng.Range(-0.3, 0.3) // roughly golden-angle winding

		out := f.Normal.Scale(math32.Cos(spiral)).Add(f.Binormal.Scale(math32.Sin(spiral)))
		anchor := f.Origin.Add(out.Scale(taper(t) * 0.85))

		parts = append(parts, MeshPart{
			Mesh: thorn,
			Transform: Transform{
				Position: anchor,
				Rotation: math.QuatBetween(math.Vec3{Y: 1}, out),
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Region: RegionThorn,
		})
	}
	return parts, nil
}

// placeLeaves attaches compound leaves at fixed stem parameters. Each leaf
// is a petiole tube with a terminal leaflet and two angled side leaflets,
// merged in leaf-local space and then rotated onto its anchor.
func placeLeaves(curve Spline, p RoseParams, rng *Rand) ([]MeshPart, error) {
	var parts []MeshPart
	frames := curve.Frames(32)

	for i := 0; i < p.LeafCount; i++ {
		t := 0.30 + 0.18*float32(i)
		f := frames[int(t*31)]

		leaf, err := buildCompoundLeaf(p.StemHeight*0.30, rng)
		if err != nil {
			return nil, err
		}

		yaw := rng.Range(0, 2*math32.Pi)
		out := f.Normal.Scale(math32.Cos(yaw)).Add(f.Binormal.Scale(math32.Sin(yaw)))
		// Droop the petiole ~35 degrees below horizontal.
		dir := out.Scale(math32.Cos(0.6)).Add(math.Vec3{Y: 1}.Scale(math32.Sin(0.6))).Normalize()

		for j := range leaf {
			local := leaf[j].Transform
			leaf[j].Transform = Transform{
				Position: f.Origin.Add(math.QuatBetween(math.Vec3{Y: 1}, dir).ToMat4().TransformVec3(local.Position)),
				Rotation: math.QuatBetween(math.Vec3{Y: 1}, dir).Mul(local.Rotation),
				Scale:    local.Scale,
			}
		}
		parts = append(parts, leaf...)
	}
	return parts, nil
}

// buildCompoundLeaf assembles one rose leaf in local space with the petiole
// running along +Y from the origin: petiole tube, terminal leaflet at the
// end, two side leaflets partway along at opposing angles.
func buildCompoundLeaf(size float32, rng *Rand) ([]MeshPart, error) {
	petioleCurve := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: size * 0.5, Z: size * 0.08},
		{X: 0, Y: size, Z: 0},
	}
	petiole, err := TaperedTube(petioleCurve, LinearTaper(size*0.035, size*0.018), 8, 6)
	if err != nil {
		return nil, fmt.Errorf("petiole: %w", err)
	}

	leafletLen := size * 0.72
	leafletWidth := size * 0.26
	curl := rng.Range(0.35, 0.6)

	terminal, err := SerratedLeaflet(leafletLen, leafletWidth, 7, curl)
	if err != nil {
		return nil, fmt.Errorf("leaflet: %w", err)
	}

	parts := []MeshPart{
		{Mesh: petiole, Transform: IdentityTransform(), Region: RegionStem},
		{
			Mesh: terminal,
			Transform: Transform{
				Position: petioleCurve.Point(1),
				Rotation: math.QuatFromAxisAngle(math.Vec3{X: 1}, 1.25),
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Region: RegionLeaf,
		},
	}

	for side := 0; side < 2; side++ {
		sign := float32(1)
		if side == 1 {
			sign = -1
		}
		side1, err := SerratedLeaflet(leafletLen*0.8, leafletWidth*0.85, 6, curl)
		if err != nil {
			return nil, fmt.Errorf("leaflet: %w", err)
		}
		rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, sign*1.05).
			Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, 1.25))
		parts = append(parts, MeshPart{
			Mesh: side1,
			Transform: Transform{
				Position: petioleCurve.Point(0.62),
				Rotation: rot,
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Region: RegionLeaf,
		})
	}
	return parts, nil
}

// buildBloom constructs the bloom parts for the configured strategy and
// positions them at the stem tip.
func buildBloom(p RoseParams, tip math.Vec3, rng *Rand) ([]MeshPart, error) {
	switch p.Strategy {
	case BloomSurface:
		bp := DefaultBloomParams()
		bp.Scale = p.BloomScale
		surface, err := RoseSurface(bp)
		if err != nil {
			return nil, err
		}
		return []MeshPart{{
			Mesh: surface,
			Transform: Transform{
				Position: tip,
				Rotation: math.QuatIdentity(),
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Region: RegionBloom,
		}}, nil

	case BloomLayered:
		parts, err := LayeredBloom(p.BloomScale, rng)
		if err != nil {
			return nil, err
		}
		for i := range parts {
			parts[i].Transform.Position = parts[i].Transform.Position.Add(tip)
		}
		return parts, nil
	}
	return nil, configErrorf("rose", "unknown bloom strategy %q", p.Strategy)
}
