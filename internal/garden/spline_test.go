package garden

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

func TestSplineEndpoints(t *testing.T) {
	s := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 0, Y: 4, Z: 1},
	}
	if got := s.Point(0); got != s[0] {
		t.Errorf("Point(0) = %+v, want %+v", got, s[0])
	}
	if got := s.Point(1); got != s[2] {
		t.Errorf("Point(1) = %+v, want %+v", got, s[2])
	}
}

func TestSplineTangentNormalized(t *testing.T) {
	s := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 1.5, Z: 0.3},
		{X: 0, Y: 3, Z: 0},
	}
	for i := 0; i <= 10; i++ {
		tan := s.Tangent(float32(i) / 10)
		if math32.Abs(tan.Length()-1) > 1e-5 {
			t.Fatalf("Tangent(%v) length = %v", float32(i)/10, tan.Length())
		}
	}
}

// Parallel transport must keep frames orthonormal and free of sudden flips:
// consecutive normals never point more than a small angle apart.
func TestSplineFramesStable(t *testing.T) {
	s := Spline{
		{X: 0, Y: 0, Z: 0},
		{X: 0.8, Y: 1.2, Z: -0.5},
		{X: -0.3, Y: 2.5, Z: 0.4},
	}
	frames := s.Frames(40)

	for i, f := range frames {
		if math32.Abs(f.Tangent.Dot(f.Normal)) > 1e-4 {
			t.Fatalf("frame %d: normal not perpendicular to tangent", i)
		}
		if math32.Abs(f.Binormal.Length()-1) > 1e-4 {
			t.Fatalf("frame %d: binormal length %v", i, f.Binormal.Length())
		}
		if i > 0 {
			if frames[i-1].Normal.Dot(f.Normal) < 0.9 {
				t.Fatalf("frame %d: normal flipped (dot %v)", i, frames[i-1].Normal.Dot(f.Normal))
			}
		}
	}
}

func TestSplineStraightLineFrames(t *testing.T) {
	s := Spline{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 5, Z: 0}}
	frames := s.Frames(10)
	for i, f := range frames {
		if f.Origin.Sub(math.Vec3{Y: float32(i) * 5 / 9}).Length() > 1e-4 {
			t.Errorf("frame %d origin %+v", i, f.Origin)
		}
	}
}
