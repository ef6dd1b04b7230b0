package garden

import (
	"fmt"

	"github.com/jerieldones/valentine-garden/pkg/math"
)

// Region labels the anatomical role of a mesh part. Merged meshes are
// colored by region label rather than by re-deriving height/radius
// thresholds from the merged vertices, so builder parameter changes cannot
// silently desynchronize the coloring.
type Region uint8

const (
	RegionNone Region = iota
	RegionStem
	RegionLeaf
	RegionThorn
	RegionBloom
	RegionCenter
	RegionHeart
)

// Palette maps regions to vertex colors.
type Palette map[Region]Color

// Mesh is triangulated geometry ready for upload: flat position/normal/color
// arrays (3 floats per vertex) plus a triangle index list.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the mesh invariants: index ranges, attribute counts and
// index list length.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("mesh: position array length %d not divisible by 3", len(m.Positions))
	}
	n := m.VertexCount()
	if m.Normals != nil && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("mesh: %d normal floats for %d vertices", len(m.Normals), n)
	}
	if m.Colors != nil && len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh: %d color floats for %d vertices", len(m.Colors), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d not divisible by 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// FillColor sets every vertex color to c.
func (m *Mesh) FillColor(c Color) {
	n := m.VertexCount()
	m.Colors = make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		m.Colors = append(m.Colors, c.R, c.G, c.B)
	}
}

// Bounds returns the axis-aligned min/max corners of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	min = math.Vec3{X: 1e10, Y: 1e10, Z: 1e10}
	max = math.Vec3{X: -1e10, Y: -1e10, Z: -1e10}
	for i := 0; i+2 < len(m.Positions); i += 3 {
		x, y, z := m.Positions[i], m.Positions[i+1], m.Positions[i+2]
		min.X = minf(min.X, x)
		min.Y = minf(min.Y, y)
		min.Z = minf(min.Z, z)
		max.X = maxf(max.X, x)
		max.Y = maxf(max.Y, y)
		max.Z = maxf(max.Z, z)
	}
	return min, max
}

// ComputeNormals replaces the normal array with smooth per-vertex normals
// accumulated from the final triangle positions. Call after any displacement
// or non-uniform scale so lighting matches the deformed surface.
func (m *Mesh) ComputeNormals() {
	n := m.VertexCount()
	normals := make([]float32, n*3)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0 := m.vertex(int(i0))
		v1 := m.vertex(int(i1))
		v2 := m.vertex(int(i2))

		face := v1.Sub(v0).Cross(v2.Sub(v0))
		// Unnormalized face normal weights large triangles more, which is
		// the usual smooth-shading accumulation.
		for _, idx := range []uint32{i0, i1, i2} {
			normals[idx*3] += face.X
			normals[idx*3+1] += face.Y
			normals[idx*3+2] += face.Z
		}
	}

	for i := 0; i < n; i++ {
		v := math.Vec3{X: normals[i*3], Y: normals[i*3+1], Z: normals[i*3+2]}.Normalize()
		if v.Length() == 0 {
			v = math.Vec3{Y: 1}
		}
		normals[i*3] = v.X
		normals[i*3+1] = v.Y
		normals[i*3+2] = v.Z
	}
	m.Normals = normals
}

func (m *Mesh) vertex(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Transform is a position/rotation/non-uniform-scale triple composable into
// a single linear map.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// IdentityTransform returns a transform that leaves geometry unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: math.QuatIdentity(), Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Mat4 composes the transform as translate * rotate * scale.
func (t Transform) Mat4() math.Mat4 {
	m := math.Translate(t.Position.X, t.Position.Y, t.Position.Z)
	m = m.Mul(t.Rotation.ToMat4())
	return m.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// MeshPart is one building block of a merged mesh: geometry, where it goes,
// and which region colors it.
type MeshPart struct {
	Mesh      *Mesh
	Transform Transform
	Region    Region
}

// Part wraps a mesh in a MeshPart with an identity transform.
func Part(m *Mesh, region Region) MeshPart {
	return MeshPart{Mesh: m, Transform: IdentityTransform(), Region: region}
}

// Merge concatenates the transformed parts into a single new mesh. Input
// meshes are never mutated; sharing a mesh between parts is safe. Vertex
// colors are assigned from the palette by region label; parts whose region
// is missing from the palette keep their own colors (white when they have
// none). Normals are recomputed from the final transformed positions.
func Merge(parts []MeshPart, palette Palette) (*Mesh, error) {
	out := &Mesh{}
	for _, p := range parts {
		if p.Mesh == nil {
			return nil, fmt.Errorf("merge: nil mesh part")
		}
		if err := p.Mesh.Validate(); err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}

		base := uint32(out.VertexCount())
		mat := p.Transform.Mat4()
		n := p.Mesh.VertexCount()

		for i := 0; i < n; i++ {
			v := mat.TransformVec3(p.Mesh.vertex(i))
			out.Positions = append(out.Positions, v.X, v.Y, v.Z)
		}

		if c, ok := palette[p.Region]; ok {
			for i := 0; i < n; i++ {
				out.Colors = append(out.Colors, c.R, c.G, c.B)
			}
		} else if p.Mesh.Colors != nil {
			out.Colors = append(out.Colors, p.Mesh.Colors...)
		} else {
			for i := 0; i < n; i++ {
				out.Colors = append(out.Colors, 1, 1, 1)
			}
		}

		for _, idx := range p.Mesh.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	out.ComputeNormals()
	return out, nil
}
