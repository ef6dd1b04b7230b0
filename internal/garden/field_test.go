package garden

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestFieldDeterminism(t *testing.T) {
	p := DefaultFieldParams()
	p.FlowerCount = 50

	a, err := BuildField(p, NewRand(2024))
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}
	b, err := BuildField(p, NewRand(2024))
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}

	for i := range a.Instances {
		ia, ib := a.Instances[i], b.Instances[i]
		if ia != ib {
			t.Fatalf("instance %d differs between runs:\n%+v\n%+v", i, ia, ib)
		}
	}
}

func TestFieldInstanceBounds(t *testing.T) {
	p := DefaultFieldParams()
	p.FlowerCount = 300

	field, err := BuildField(p, NewRand(99))
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}
	if len(field.Instances) != p.FlowerCount {
		t.Fatalf("instance count = %d, want %d", len(field.Instances), p.FlowerCount)
	}

	for i, inst := range field.Instances {
		d := inst.Position.XZ().Length()
		if d < p.ClearRadius-1e-4 || d > p.FieldRadius+p.MaxJitter+1e-4 {
			t.Errorf("instance %d at radius %v, want [%v, %v]", i, d, p.ClearRadius, p.FieldRadius+p.MaxJitter)
		}
		for _, s := range []float32{inst.Scale.X, inst.Scale.Y, inst.Scale.Z} {
			if s < p.ScaleMin || s > p.ScaleMax {
				t.Errorf("instance %d scale %v outside [%v, %v]", i, s, p.ScaleMin, p.ScaleMax)
			}
		}
		if inst.Sway < p.SwayMin || inst.Sway > p.SwayMax {
			t.Errorf("instance %d sway %v outside [%v, %v]", i, inst.Sway, p.SwayMin, p.SwayMax)
		}
	}
}

func TestFieldArchetypeMesh(t *testing.T) {
	field, err := BuildField(DefaultFieldParams(), NewRand(5))
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}
	if err := field.Archetype.Validate(); err != nil {
		t.Fatalf("archetype invalid: %v", err)
	}
	if len(field.Archetype.Colors) != len(field.Archetype.Positions) {
		t.Error("archetype missing per-vertex colors")
	}
}

func TestFieldDegenerateParams(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*FieldParams)
	}{
		{"zero flowers", func(p *FieldParams) { p.FlowerCount = 0 }},
		{"clear beyond field", func(p *FieldParams) { p.ClearRadius = p.FieldRadius + 1 }},
		{"zero scale", func(p *FieldParams) { p.ScaleMin = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultFieldParams()
			tt.mod(&p)
			if _, err := BuildField(p, NewRand(1)); err == nil {
				t.Error("expected ConfigError, got nil")
			}
		})
	}
}

// End-to-end scenario: fixed seed, 10 flowers in a [2, 10] annulus. All
// positions must land within the jitter-padded annulus and all colors must
// stay within the documented HSL jitter of a palette entry.
func TestFieldEndToEnd(t *testing.T) {
	p := DefaultFieldParams()
	p.FlowerCount = 10
	p.FieldRadius = 10
	p.ClearRadius = 2
	p.MaxJitter = 2.5

	field, err := BuildField(p, NewRand(20240214))
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}

	for i, inst := range field.Instances {
		d := inst.Position.XZ().Length()
		if d < 2-1e-4 || d > 10+2.5+1e-4 {
			t.Errorf("instance %d at radius %v, want [2, 12.5]", i, d)
		}

		// Color must be within jitter bounds of at least one palette entry.
		h, s, l := inst.Color.HSL()
		matched := false
		for _, base := range FieldFlowerPalette {
			bh, bs, bl := base.HSL()
			dh := math32.Abs(h - bh)
			if dh > 0.5 {
				dh = 1 - dh // hue wraps
			}
			if dh <= p.HueJitter+1e-3 &&
				math32.Abs(s-bs) <= p.SatJitter+1e-3 &&
				math32.Abs(l-bl) <= p.LightJitter+1e-3 {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("instance %d color %+v not within jitter of any palette entry", i, inst.Color)
		}
	}
}
