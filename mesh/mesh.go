// Package mesh holds indexed triangle meshes for the wireframe projector.
package mesh

import (
	"iter"

	"github.com/disasterengine/canvas/math3d"
)

// Mesh is an indexed triangle list.
//
// Triangles are counter-clockwise when seen from outside the surface;
// backface culling relies on it.
type Mesh struct {
	Vertices []math3d.Vec3
	Indices  []int
}

// Triangle is one face resolved to vertex positions.
type Triangle struct {
	A, B, C math3d.Vec3
}

// Normal returns the unnormalised face normal (B-A)×(C-A).
func (t Triangle) Normal() math3d.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Centroid returns the average of the three corners.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Triangles yields every triangle whose indices are in range, keyed by
// triangle number. Out-of-range triangles are skipped.
func (m *Mesh) Triangles() iter.Seq2[int, Triangle] {
	return func(yield func(int, Triangle) bool) {
		if m == nil {
			return
		}
		n := len(m.Vertices)
		for i := 0; i+2 < len(m.Indices); i += 3 {
			i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= n || i1 >= n || i2 >= n {
				continue
			}
			tri := Triangle{A: m.Vertices[i0], B: m.Vertices[i1], C: m.Vertices[i2]}
			if !yield(i/3, tri) {
				return
			}
		}
	}
}

// Cube returns an axis-aligned cube with the given edge length centred on
// the origin: 8 vertices, 12 outward-facing triangles.
func Cube(size float64) *Mesh {
	h := size / 2
	return &Mesh{
		Vertices: []math3d.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
		},
		Indices: []int{
			4, 5, 6, 4, 6, 7, // +Z
			1, 0, 3, 1, 3, 2, // -Z
			5, 1, 2, 5, 2, 6, // +X
			0, 4, 7, 0, 7, 3, // -X
			7, 6, 2, 7, 2, 3, // +Y
			0, 1, 5, 0, 5, 4, // -Y
		},
	}
}
