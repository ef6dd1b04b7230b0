package picking

import (
	"testing"

	"github.com/jerieldones/valentine-garden/pkg/math"
)

func TestNDCToRayCenter(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 2, Z: 10}
	center := math.Vec3{X: 0, Y: 2, Z: 0}
	view := math.LookAt(eye, center, math.Vec3{X: 0, Y: 1, Z: 0})
	proj := math.Perspective(0.8, 16.0/9.0, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	ray := NDCToRay(0, 0, inv)

	// Center of the screen looks straight down -Z
	if abs(ray.Direction.X) > 1e-3 || abs(ray.Direction.Y) > 1e-3 {
		t.Errorf("center ray direction = %+v, want -Z axis", ray.Direction)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("center ray points away from the scene: %+v", ray.Direction)
	}
	if abs(ray.Direction.Length()-1) > 1e-4 {
		t.Errorf("direction not normalized: %v", ray.Direction.Length())
	}
	// Origin sits on the near plane in front of the eye
	if ray.Origin.Z > float32(10) || ray.Origin.Z < 9 {
		t.Errorf("origin Z = %v, want just inside the near plane", ray.Origin.Z)
	}
}

func TestScreenToRayMatchesNDC(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 5, Z: 8}
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
	proj := math.Perspective(0.8, 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	// Screen center of a 800x600 viewport is NDC (0, 0)
	a := ScreenToRay(400, 300, 800, 600, inv)
	b := NDCToRay(0, 0, inv)
	if a.Direction.Distance(b.Direction) > 1e-5 {
		t.Errorf("screen center ray %+v != ndc center ray %+v", a.Direction, b.Direction)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
