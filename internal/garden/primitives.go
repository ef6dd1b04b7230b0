package garden

import (
	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// RadiusFunc maps a curve parameter in [0, 1] to a cross-section radius.
type RadiusFunc func(t float32) float32

// LinearTaper returns a radius function interpolating linearly from base at
// t=0 to tip at t=1.
func LinearTaper(base, tip float32) RadiusFunc {
	return func(t float32) float32 {
		return base + t*(tip-base)
	}
}

// TaperedTube builds a generalized cylinder along the spline: segments+1
// rings of sides vertices each, ring radius taken from the radius function
// at the ring's curve parameter. Ring vertices are placed on the local
// normal/binormal frame of each sample, so the configured radius is exact
// even where the frame has rotated. Both ends are closed with a center fan.
func TaperedTube(curve Spline, radius RadiusFunc, segments, sides int) (*Mesh, error) {
	if len(curve) < 2 {
		return nil, configErrorf("tapered tube", "need at least 2 control points, got %d", len(curve))
	}
	if segments < 2 {
		return nil, configErrorf("tapered tube", "need at least 2 segments, got %d", segments)
	}
	if sides < 3 {
		return nil, configErrorf("tapered tube", "need at least 3 sides, got %d", sides)
	}
	if radius(0) <= 0 {
		return nil, configErrorf("tapered tube", "non-positive base radius %g", radius(0))
	}

	m := &Mesh{}
	frames := curve.Frames(segments + 1)

	for i, f := range frames {
		t := float32(i) / float32(segments)
		r := radius(t)
		for j := 0; j < sides; j++ {
			a := float32(j) / float32(sides) * 2 * math32.Pi
			offset := f.Normal.Scale(math32.Cos(a) * r).Add(f.Binormal.Scale(math32.Sin(a) * r))
			p := f.Origin.Add(offset)
			m.Positions = append(m.Positions, p.X, p.Y, p.Z)
		}
	}

	for i := 0; i < segments; i++ {
		ring := uint32(i * sides)
		next := uint32((i + 1) * sides)
		for j := 0; j < sides; j++ {
			j1 := uint32((j + 1) % sides)
			a, b := ring+uint32(j), ring+j1
			c, d := next+uint32(j), next+j1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	// End caps: fan around the curve endpoints.
	m.capRing(frames[0].Origin, 0, sides, true)
	m.capRing(frames[segments].Origin, segments*sides, sides, false)

	m.ComputeNormals()
	return m, nil
}

// capRing adds a center vertex and a triangle fan closing the given ring.
func (m *Mesh) capRing(center math.Vec3, ringStart, sides int, flip bool) {
	ci := uint32(m.VertexCount())
	m.Positions = append(m.Positions, center.X, center.Y, center.Z)
	for j := 0; j < sides; j++ {
		a := uint32(ringStart + j)
		b := uint32(ringStart + (j+1)%sides)
		if flip {
			m.Indices = append(m.Indices, ci, b, a)
		} else {
			m.Indices = append(m.Indices, ci, a, b)
		}
	}
}

// Cone builds a cone with its base disc on the XZ plane and apex at +Y.
// Used for thorns.
func Cone(radius, height float32, sides int) (*Mesh, error) {
	if radius <= 0 || height <= 0 {
		return nil, configErrorf("cone", "non-positive dimensions %g x %g", radius, height)
	}
	if sides < 3 {
		return nil, configErrorf("cone", "need at least 3 sides, got %d", sides)
	}

	m := &Mesh{}
	for j := 0; j < sides; j++ {
		a := float32(j) / float32(sides) * 2 * math32.Pi
		m.Positions = append(m.Positions, math32.Cos(a)*radius, 0, math32.Sin(a)*radius)
	}
	apex := uint32(sides)
	m.Positions = append(m.Positions, 0, height, 0)

	for j := 0; j < sides; j++ {
		a := uint32(j)
		b := uint32((j + 1) % sides)
		m.Indices = append(m.Indices, apex, b, a)
	}
	m.capRing(math.Vec3{}, 0, sides, true)

	m.ComputeNormals()
	return m, nil
}

// Sphere builds a UV sphere centered at the origin.
func Sphere(radius float32, segments, rings int) (*Mesh, error) {
	if radius <= 0 {
		return nil, configErrorf("sphere", "non-positive radius %g", radius)
	}
	if segments < 3 || rings < 2 {
		return nil, configErrorf("sphere", "need >=3 segments and >=2 rings, got %dx%d", segments, rings)
	}

	m := &Mesh{}
	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			m.Positions = append(m.Positions,
				sinPhi*math32.Cos(theta)*radius,
				cosPhi*radius,
				sinPhi*math32.Sin(theta)*radius,
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			cur := uint32(ring*(segments+1) + seg)
			next := cur + uint32(segments+1)
			m.Indices = append(m.Indices, cur, next, cur+1, cur+1, next, next+1)
		}
	}

	m.ComputeNormals()
	return m, nil
}
