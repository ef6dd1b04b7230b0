package garden

import (
	"testing"

	"github.com/jerieldones/valentine-garden/pkg/math"
)

func triangle() *Mesh {
	return &Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr bool
	}{
		{"valid", triangle(), false},
		{"index out of range", &Mesh{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Indices:   []uint32{0, 1, 3},
		}, true},
		{"color count mismatch", &Mesh{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Colors:    []float32{1, 1, 1},
			Indices:   []uint32{0, 1, 2},
		}, true},
		{"ragged positions", &Mesh{
			Positions: []float32{0, 0},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	src := triangle()
	origPos := append([]float32(nil), src.Positions...)

	part := MeshPart{
		Mesh: src,
		Transform: Transform{
			Position: math.Vec3{X: 5, Y: 5, Z: 5},
			Rotation: math.QuatIdentity(),
			Scale:    math.Vec3{X: 2, Y: 2, Z: 2},
		},
		Region: RegionStem,
	}
	merged, err := Merge([]MeshPart{part, part}, Palette{RegionStem: {R: 0.5}})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	for i := range origPos {
		if src.Positions[i] != origPos[i] {
			t.Fatalf("Merge mutated input position %d", i)
		}
	}
	if merged.VertexCount() != 6 {
		t.Errorf("merged vertex count = %d, want 6", merged.VertexCount())
	}
	if err := merged.Validate(); err != nil {
		t.Errorf("merged mesh invalid: %v", err)
	}
}

func TestMergeAppliesTransformAndPalette(t *testing.T) {
	part := MeshPart{
		Mesh: triangle(),
		Transform: Transform{
			Position: math.Vec3{X: 10},
			Rotation: math.QuatIdentity(),
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Region: RegionLeaf,
	}
	merged, err := Merge([]MeshPart{part}, Palette{RegionLeaf: {R: 0.1, G: 0.9, B: 0.2}})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if merged.Positions[0] != 10 {
		t.Errorf("transformed x = %v, want 10", merged.Positions[0])
	}
	if merged.Colors[1] != 0.9 {
		t.Errorf("palette color g = %v, want 0.9", merged.Colors[1])
	}
	if len(merged.Normals) != len(merged.Positions) {
		t.Errorf("normals not computed: %d floats for %d", len(merged.Normals), len(merged.Positions))
	}
}

func TestMergeRebasesIndices(t *testing.T) {
	a := Part(triangle(), RegionStem)
	b := Part(triangle(), RegionLeaf)
	merged, err := Merge([]MeshPart{a, b}, nil)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := []uint32{0, 1, 2, 3, 4, 5}
	for i, idx := range merged.Indices {
		if idx != want[i] {
			t.Fatalf("indices = %v, want %v", merged.Indices, want)
		}
	}
}

func TestComputeNormalsFlatTriangle(t *testing.T) {
	m := triangle()
	m.ComputeNormals()
	// CCW triangle in the XY plane faces +Z.
	if m.Normals[2] < 0.99 {
		t.Errorf("normal z = %v, want ~1", m.Normals[2])
	}
}
