// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/jerieldones/valentine-garden/pkg/math"
)

// SunDirection converts elevation/azimuth angles in degrees to a normalized
// direction vector pointing towards the sun. Azimuth is rotation around the
// Y axis (0-360), elevation is measured up from the horizon (0-90). Derived
// once at boot from the sky configuration; consumers use the vector, never
// the angles.
func SunDirection(elevation, azimuth float32) math.Vec3 {
	elevRad := float64(elevation) * gomath.Pi / 180.0
	azimRad := float64(azimuth) * gomath.Pi / 180.0

	// Spherical to Cartesian conversion
	v := math.Vec3{
		X: float32(gomath.Cos(elevRad) * gomath.Sin(azimRad)),
		Y: float32(gomath.Sin(elevRad)),
		Z: float32(gomath.Cos(elevRad) * gomath.Cos(azimRad)),
	}
	// The conversion already yields a unit vector, but renormalize so
	// downstream dot products never see accumulated rounding.
	return v.Normalize()
}
