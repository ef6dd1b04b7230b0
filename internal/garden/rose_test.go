package garden

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBuildRose(t *testing.T) {
	p := DefaultRoseParams()
	rose, err := BuildRose(p, NewRand(77))
	if err != nil {
		t.Fatalf("BuildRose() error = %v", err)
	}
	if err := rose.Mesh.Validate(); err != nil {
		t.Fatalf("rose mesh invalid: %v", err)
	}
	if len(rose.Mesh.Colors) != len(rose.Mesh.Positions) {
		t.Error("rose mesh missing per-vertex colors")
	}

	// The collider wraps the stem: its span must reach from the base past
	// the stem tip.
	if rose.Collider.A.Y > 0.01 {
		t.Errorf("collider base at y=%v, want ~0", rose.Collider.A.Y)
	}
	if rose.Collider.B.Y < p.StemHeight {
		t.Errorf("collider top at y=%v, want >= %v", rose.Collider.B.Y, p.StemHeight)
	}
	if rose.Collider.Radius <= 0 {
		t.Error("collider has no radius")
	}
}

func TestBuildRoseDeterministic(t *testing.T) {
	p := DefaultRoseParams()
	a, err := BuildRose(p, NewRand(3))
	if err != nil {
		t.Fatalf("BuildRose() error = %v", err)
	}
	b, err := BuildRose(p, NewRand(3))
	if err != nil {
		t.Fatalf("BuildRose() error = %v", err)
	}
	if a.Mesh.VertexCount() != b.Mesh.VertexCount() {
		t.Fatalf("vertex counts differ: %d vs %d", a.Mesh.VertexCount(), b.Mesh.VertexCount())
	}
	for i := range a.Mesh.Positions {
		if a.Mesh.Positions[i] != b.Mesh.Positions[i] {
			t.Fatalf("positions diverge at float %d", i)
		}
	}
}

func TestBuildRoseLayeredStrategy(t *testing.T) {
	p := DefaultRoseParams()
	p.Strategy = BloomLayered
	rose, err := BuildRose(p, NewRand(8))
	if err != nil {
		t.Fatalf("BuildRose(layered) error = %v", err)
	}
	if err := rose.Mesh.Validate(); err != nil {
		t.Errorf("layered rose invalid: %v", err)
	}
}

func TestBuildRoseBadParams(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*RoseParams)
	}{
		{"zero height", func(p *RoseParams) { p.StemHeight = 0 }},
		{"inverted taper", func(p *RoseParams) { p.StemBaseRadius = 0.01; p.StemTipRadius = 0.05 }},
		{"unknown strategy", func(p *RoseParams) { p.Strategy = "cubist" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultRoseParams()
			tt.mod(&p)
			if _, err := BuildRose(p, NewRand(1)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// Thorn and leaf anchors are derived from the stem curve, so every part of
// the merged mesh should sit within the stem's reach.
func TestRosePartsStayNearStem(t *testing.T) {
	p := DefaultRoseParams()
	rose, err := BuildRose(p, NewRand(15))
	if err != nil {
		t.Fatalf("BuildRose() error = %v", err)
	}
	min, max := rose.Mesh.Bounds()
	reach := p.StemHeight + p.BloomScale*2
	for _, v := range []float32{min.X, min.Y, min.Z, max.X, max.Y, max.Z} {
		if math32.Abs(v) > reach {
			t.Errorf("rose extends to %v, beyond reach %v", v, reach)
		}
	}
}
