package garden

import "testing"

func TestHeartsSpawnBand(t *testing.T) {
	p := DefaultHeartsParams()
	h, err := NewHearts(p, NewRand(11))
	if err != nil {
		t.Fatalf("NewHearts() error = %v", err)
	}
	if len(h.Instances) != p.Count {
		t.Fatalf("instance count = %d, want %d", len(h.Instances), p.Count)
	}
	for i, inst := range h.Instances {
		if inst.Position.Y < p.GroundY || inst.Position.Y > p.SpawnMaxY {
			t.Errorf("heart %d starts at y=%v", i, inst.Position.Y)
		}
		if inst.FallSpeed < p.FallMin || inst.FallSpeed > p.FallMax {
			t.Errorf("heart %d fall speed %v outside [%v, %v]", i, inst.FallSpeed, p.FallMin, p.FallMax)
		}
	}
}

func TestHeartsFallAndRespawn(t *testing.T) {
	p := DefaultHeartsParams()
	p.Count = 10
	h, err := NewHearts(p, NewRand(21))
	if err != nil {
		t.Fatalf("NewHearts() error = %v", err)
	}

	before := make([]float32, p.Count)
	for i, inst := range h.Instances {
		before[i] = inst.Position.Y
	}

	h.Update(0, 0.5)
	for i, inst := range h.Instances {
		if inst.Position.Y >= before[i] {
			t.Errorf("heart %d did not fall: %v -> %v", i, before[i], inst.Position.Y)
		}
	}

	// Run long enough that every heart crosses the ground at least once;
	// all must be respawned above it, never left below.
	elapsed := float32(0)
	for step := 0; step < 400; step++ {
		elapsed += 0.1
		h.Update(elapsed, 0.1)
		for i, inst := range h.Instances {
			if inst.Position.Y < p.GroundY-p.FallMax*0.1-1e-4 {
				t.Fatalf("heart %d left below ground at y=%v", i, inst.Position.Y)
			}
		}
	}
	if len(h.Instances) != p.Count {
		t.Errorf("instance count changed to %d", len(h.Instances))
	}
}
