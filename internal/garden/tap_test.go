package garden

import (
	"testing"

	"github.com/jerieldones/valentine-garden/pkg/math"
)

var tapTarget = Capsule{
	A:      math.Vec3{Y: 0},
	B:      math.Vec3{Y: 3},
	Radius: 0.5,
}

// hitRay aims straight down the -Z axis at the capsule's midsection.
func hitRay() (math.Vec3, math.Vec3) {
	return math.Vec3{Y: 1.5, Z: 10}, math.Vec3{Z: -1}
}

func missRay() (math.Vec3, math.Vec3) {
	return math.Vec3{X: 5, Y: 1.5, Z: 10}, math.Vec3{Z: -1}
}

func TestTapTriggerFiresOnce(t *testing.T) {
	fired := 0
	trig := NewTapTrigger(0.5, func() { fired++ })

	o, d := hitRay()
	if !trig.PointerDown(1.0, o, d, tapTarget) {
		t.Fatal("first hit did not fire")
	}
	if trig.State() != TriggerFired {
		t.Fatalf("state = %v, want TriggerFired", trig.State())
	}

	// Second hit well beyond the cooldown: state is terminal, no re-fire.
	if trig.PointerDown(5.0, o, d, tapTarget) {
		t.Error("second hit fired again")
	}
	if fired != 1 {
		t.Errorf("callback ran %d times, want 1", fired)
	}
}

func TestTapTriggerCooldown(t *testing.T) {
	fired := 0
	trig := NewTapTrigger(0.5, func() { fired++ })

	o, d := missRay()
	// A miss still counts as an accepted pointer event for cooldown
	// purposes.
	trig.PointerDown(1.0, o, d, tapTarget)

	o, d = hitRay()
	if trig.PointerDown(1.2, o, d, tapTarget) {
		t.Error("hit within cooldown was accepted")
	}
	if fired != 0 {
		t.Errorf("callback ran %d times, want 0", fired)
	}

	if !trig.PointerDown(2.0, o, d, tapTarget) {
		t.Error("hit beyond cooldown did not fire")
	}
	if fired != 1 {
		t.Errorf("callback ran %d times, want 1", fired)
	}
}

func TestTapTriggerMissKeepsArmed(t *testing.T) {
	trig := NewTapTrigger(0.5, nil)
	o, d := missRay()
	if trig.PointerDown(1.0, o, d, tapTarget) {
		t.Error("miss fired the trigger")
	}
	if trig.State() != TriggerArmed {
		t.Errorf("state = %v, want TriggerArmed", trig.State())
	}
}

func TestCapsuleIntersectRay(t *testing.T) {
	tests := []struct {
		name    string
		origin  math.Vec3
		dir     math.Vec3
		wantHit bool
	}{
		{"side hit", math.Vec3{Y: 1.5, Z: 10}, math.Vec3{Z: -1}, true},
		{"cap hit from above", math.Vec3{Y: 10}, math.Vec3{Y: -1}, true},
		{"parallel miss", math.Vec3{X: 2, Y: 1.5, Z: 10}, math.Vec3{Z: -1}, false},
		{"behind origin", math.Vec3{Y: 1.5, Z: 10}, math.Vec3{Z: 1}, false},
		{"beyond the tip", math.Vec3{Y: 4.2, Z: 10}, math.Vec3{Z: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := tapTarget.IntersectRay(tt.origin, tt.dir.Normalize())
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && dist <= 0 {
				t.Errorf("hit distance = %v, want > 0", dist)
			}
		})
	}
}
