package lighting

import (
	gomath "math"
	"testing"
)

func TestSunDirectionNormalized(t *testing.T) {
	angles := [][2]float32{
		{0, 0}, {18, 215}, {45, 90}, {90, 0}, {30, 359},
	}
	for _, a := range angles {
		v := SunDirection(a[0], a[1])
		l := float64(v.Length())
		if gomath.Abs(l-1) > 1e-5 {
			t.Errorf("SunDirection(%v, %v) length = %v", a[0], a[1], l)
		}
	}
}

func TestSunDirectionElevation(t *testing.T) {
	// Sun on the horizon has no vertical component; overhead is all Y.
	if v := SunDirection(0, 45); gomath.Abs(float64(v.Y)) > 1e-6 {
		t.Errorf("horizon sun Y = %v, want 0", v.Y)
	}
	if v := SunDirection(90, 0); v.Y < 0.9999 {
		t.Errorf("zenith sun Y = %v, want 1", v.Y)
	}
}

func TestSunDirectionAzimuth(t *testing.T) {
	// Azimuth 0 points along +Z, azimuth 90 along +X.
	if v := SunDirection(0, 0); v.Z < 0.9999 {
		t.Errorf("azimuth 0 Z = %v, want 1", v.Z)
	}
	if v := SunDirection(0, 90); v.X < 0.9999 {
		t.Errorf("azimuth 90 X = %v, want 1", v.X)
	}
}
