package mesh

import (
	"errors"
	"strings"
	"testing"

	"github.com/disasterengine/canvas/math3d"
)

func TestCubeFacesPointOutward(t *testing.T) {
	c := Cube(2)
	if got := c.TriangleCount(); got != 12 {
		t.Fatalf("TriangleCount = %d, want 12", got)
	}
	count := 0
	for i, tri := range c.Triangles() {
		n := tri.Normal()
		if n.Dot(tri.Centroid()) <= 0 {
			t.Errorf("triangle %d normal %v points inward", i, n)
		}
		count++
	}
	if count != 12 {
		t.Errorf("Triangles yielded %d, want 12", count)
	}
}

func TestTrianglesSkipsBadIndices(t *testing.T) {
	m := &Mesh{
		Vertices: []math3d.Vec3{{}, {X: 1}, {Y: 1}},
		Indices:  []int{0, 1, 2, 0, 1, 9, 2, 1},
	}
	n := 0
	for range m.Triangles() {
		n++
	}
	if n != 1 {
		t.Errorf("yielded %d triangles, want 1", n)
	}
	var nilMesh *Mesh
	for range nilMesh.Triangles() {
		t.Fatal("nil mesh yielded a triangle")
	}
}

func TestParseOBJ(t *testing.T) {
	src := `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4 -3 -2
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4", len(m.Vertices))
	}
	want := []int{0, 1, 2, 0, 2, 3, 0, 1, 2}
	if len(m.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad float", "v 1 x 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 0 1 2\n"},
		{"out of range", "v 0 0 0\nf 1 2 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseOBJ error = %v, want ErrMalformed", err)
			}
		})
	}
}
