package garden

import (
	"github.com/chewxy/math32"
)

// curlBlade applies the longitudinal curvature shared by all flat foliage:
// every already-triangulated vertex is displaced in z by
// sin(pi * y/length) * x * k. The displacement is a function of the final
// 2D vertex, so teeth and outline detail bend with the blade instead of
// being re-curved per feature.
func curlBlade(m *Mesh, length, k float32) {
	for i := 0; i+2 < len(m.Positions); i += 3 {
		x, y := m.Positions[i], m.Positions[i+1]
		m.Positions[i+2] += math32.Sin(math32.Pi*y/length) * x * k
	}
}

// stripFromSides triangulates a blade outline given matched left/right side
// points ordered base to tip: quads between consecutive pairs, two triangles
// each. Left and right must have equal length >= 2. The blade lies in the XY
// plane with the centerline on +Y.
func stripFromSides(left, right [][2]float32) *Mesh {
	m := &Mesh{}
	n := len(left)
	for i := 0; i < n; i++ {
		m.Positions = append(m.Positions, left[i][0], left[i][1], 0)
		m.Positions = append(m.Positions, right[i][0], right[i][1], 0)
	}
	for i := 0; i < n-1; i++ {
		a := uint32(i * 2)       // left i
		b := a + 1               // right i
		c := uint32((i + 1) * 2) // left i+1
		d := c + 1               // right i+1
		m.Indices = append(m.Indices, a, b, c, c, b, d)
	}
	return m
}

// SerratedLeaflet builds a rose-style toothed leaflet of the given length
// and half-width: the outline alternates tooth tips and valleys along each
// side of the centerline, mirrored left/right, then the whole triangulated
// blade is curled longitudinally by curl.
func SerratedLeaflet(length, width float32, teeth int, curl float32) (*Mesh, error) {
	if length <= 0 || width <= 0 {
		return nil, configErrorf("serrated leaflet", "non-positive dimensions %g x %g", length, width)
	}
	if teeth < 2 {
		return nil, configErrorf("serrated leaflet", "need at least 2 teeth, got %d", teeth)
	}

	// Two samples per tooth (tip, valley) plus base and apex.
	steps := teeth * 2
	var left, right [][2]float32
	left = append(left, [2]float32{0, 0})
	right = append(right, [2]float32{0, 0})

	for i := 1; i < steps; i++ {
		f := float32(i) / float32(steps)
		y := f * length
		// Leaflet envelope: widest around 40% of the length, tapering to
		// the apex.
		envelope := width * math32.Sin(math32.Pi*math32.Pow(f, 0.8))
		r := envelope
		if i%2 == 0 {
			r = envelope * 0.72 // tooth valley
		}
		left = append(left, [2]float32{-r, y})
		right = append(right, [2]float32{r, y})
	}
	left = append(left, [2]float32{0, length})
	right = append(right, [2]float32{0, length})

	m := stripFromSides(left, right)
	curlBlade(m, length, curl)
	m.ComputeNormals()
	return m, nil
}

// PetalBlade builds a smooth curved petal or leaf blade: an elongated lobe
// whose half-width profile follows a quadratic bezier (zero at the base,
// widest past the middle, rounded tip), triangulated as a strip and curled
// longitudinally. Curl scales with blade length so larger blades keep the
// same silhouette.
func PetalBlade(length, width, curl float32, samples int) (*Mesh, error) {
	if length <= 0 || width <= 0 {
		return nil, configErrorf("petal blade", "non-positive dimensions %g x %g", length, width)
	}
	if samples < 3 {
		return nil, configErrorf("petal blade", "need at least 3 samples, got %d", samples)
	}

	var left, right [][2]float32
	for i := 0; i <= samples; i++ {
		f := float32(i) / float32(samples)
		y := f * length
		// Quadratic bezier through (0, 0.15w) -> (0.55, 1.1w) -> (1, 0):
		// a slightly cupped lobe with a soft shoulder.
		inv := 1 - f
		r := (inv*inv*0.15 + 2*inv*f*1.1) * width
		left = append(left, [2]float32{-r, y})
		right = append(right, [2]float32{r, y})
	}

	m := stripFromSides(left, right)
	curlBlade(m, length, curl)
	m.ComputeNormals()
	return m, nil
}
