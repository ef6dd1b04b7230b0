package garden

import (
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// Spline is a bezier curve defined by 2 to 4 control points, evaluated over
// t in [0, 1] by de Casteljau subdivision.
type Spline []math.Vec3

// Point evaluates the curve position at t.
func (s Spline) Point(t float32) math.Vec3 {
	pts := make([]math.Vec3, len(s))
	copy(pts, s)
	for n := len(pts); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			pts[i] = pts[i].Add(pts[i+1].Sub(pts[i]).Scale(t))
		}
	}
	return pts[0]
}

// Tangent returns the normalized curve direction at t.
func (s Spline) Tangent(t float32) math.Vec3 {
	// Derivative of a degree-n bezier is a degree-(n-1) bezier over the
	// scaled control-point differences.
	n := len(s) - 1
	diffs := make(Spline, n)
	for i := 0; i < n; i++ {
		diffs[i] = s[i+1].Sub(s[i]).Scale(float32(n))
	}
	d := diffs.Point(t)
	if d.Length() < 1e-6 {
		return math.Vec3{Y: 1}
	}
	return d.Normalize()
}

// Frame is a local coordinate frame on a curve sample: origin, tangent along
// the curve, and a normal/binormal pair perpendicular to it.
type Frame struct {
	Origin   math.Vec3
	Tangent  math.Vec3
	Normal   math.Vec3
	Binormal math.Vec3
}

// Frames samples n parallel-transport frames along the curve at evenly
// spaced parameters. Parallel transport carries the first frame's normal
// along the curve instead of recomputing it from curvature per sample, which
// avoids the sudden 180-degree flips a Frenet frame exhibits at inflection
// points and keeps tube cross-sections from twisting.
func (s Spline) Frames(n int) []Frame {
	frames := make([]Frame, n)

	t0 := s.Tangent(0)
	// Any vector not parallel to the tangent works to seed the normal.
	ref := math.Vec3{Y: 1}
	if abs32(t0.Dot(ref)) > 0.99 {
		ref = math.Vec3{X: 1}
	}
	normal := ref.Sub(t0.Scale(ref.Dot(t0))).Normalize()

	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		tangent := s.Tangent(t)

		// Rotate the previous normal into the new tangent plane.
		normal = normal.Sub(tangent.Scale(normal.Dot(tangent)))
		if normal.Length() < 1e-6 {
			normal = math.Vec3{X: 1}
			normal = normal.Sub(tangent.Scale(normal.Dot(tangent)))
		}
		normal = normal.Normalize()

		frames[i] = Frame{
			Origin:   s.Point(t),
			Tangent:  tangent,
			Normal:   normal,
			Binormal: tangent.Cross(normal).Normalize(),
		}
	}
	return frames
}

// FrameAt returns a single parallel-transport frame at parameter t,
// consistent with Frames sampling (transported from t=0 in small steps).
func (s Spline) FrameAt(t float32, steps int) Frame {
	if steps < 2 {
		steps = 2
	}
	frames := s.Frames(steps)
	i := int(t * float32(steps-1))
	if i < 0 {
		i = 0
	}
	if i >= steps {
		i = steps - 1
	}
	return frames[i]
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
