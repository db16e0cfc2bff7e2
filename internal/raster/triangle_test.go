package raster

import "testing"

func maskSet(m *Mask) map[Point]bool {
	out := map[Point]bool{}
	for p := range m.Points() {
		out[p] = true
	}
	return out
}

func TestFillTriangleWindingIndependent(t *testing.T) {
	a, b, c := Point{1, 1}, Point{12, 3}, Point{4, 10}
	orders := [][3]Point{{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
	ref := maskSet(FillTriangle(a, b, c, all))
	for _, o := range orders[1:] {
		got := maskSet(FillTriangle(o[0], o[1], o[2], all))
		if len(got) != len(ref) {
			t.Errorf("order %v covers %d pixels, want %d", o, len(got), len(ref))
			continue
		}
		for p := range ref {
			if !got[p] {
				t.Errorf("order %v missing %v", o, p)
			}
		}
	}
}

func TestFillTriangleContainsOutline(t *testing.T) {
	a, b, c := Point{0, 0}, Point{17, 5}, Point{3, 13}
	fill := FillTriangle(a, b, c, all)
	outline := NewMask(all, a, b, c)
	TriangleOutline(outline, a, b, c)
	for p := range outline.Points() {
		if !fill.Has(p) {
			t.Errorf("outline pixel %v not in fill", p)
		}
	}
	if !fill.Has(Point{5, 5}) {
		t.Error("interior pixel (5,5) not filled")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	m := FillTriangle(Point{0, 0}, Point{5, 5}, Point{10, 10}, all)
	got := maskSet(m)
	if len(got) != 11 {
		t.Errorf("collinear triangle covers %d pixels, want 11", len(got))
	}
}

func TestMaskIgnoresOutside(t *testing.T) {
	m := NewMask(all, Point{0, 0}, Point{2, 2})
	m.Set(Point{5, 5})
	m.Set(Point{-1, 0})
	if len(maskSet(m)) != 0 {
		t.Error("out of range Set changed the mask")
	}
	if m.Has(Point{9, 9}) {
		t.Error("Has reported a pixel outside the mask")
	}
}

func TestMaskClippedToBounds(t *testing.T) {
	clip := Bounds{X1: 32, Y1: 32}
	m := NewMask(clip, Point{-3e9, -3e9}, Point{3e9, 3e9})
	if m.X != 0 || m.Y != 0 || m.W != 32 || m.H != 32 {
		t.Errorf("mask region = (%d,%d %dx%d), want (0,0 32x32)", m.X, m.Y, m.W, m.H)
	}
	m = NewMask(clip, Point{100, 100}, Point{200, 300})
	if m.W != 0 || m.H != 0 {
		t.Errorf("mask off the clip is %dx%d, want empty", m.W, m.H)
	}
}

func TestFillTriangleHugeCoordinates(t *testing.T) {
	clip := Bounds{X1: 32, Y1: 32}
	got := maskSet(FillTriangle(Point{0, 0}, Point{3e9, 0}, Point{0, 3e9}, clip))
	if len(got) != 32*32 {
		t.Errorf("covering triangle filled %d pixels, want %d", len(got), 32*32)
	}
	outline := NewMask(clip, Point{0, 0}, Point{3e9, 0}, Point{0, 3e9})
	TriangleOutline(outline, Point{0, 0}, Point{3e9, 0}, Point{0, 3e9})
	if n := len(maskSet(outline)); n != 63 {
		t.Errorf("outline covers %d pixels, want 63 (top row and left column)", n)
	}
}

func TestOrientExact(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p Point
		want    int
	}{
		{"small left", Point{0, 0}, Point{4, 0}, Point{0, 4}, 1},
		{"small right", Point{0, 0}, Point{0, 4}, Point{4, 0}, -1},
		{"small on edge", Point{0, 0}, Point{4, 4}, Point{2, 2}, 0},
		{"huge left", Point{0, 0}, Point{4e9, 0}, Point{0, 4e9}, 1},
		{"huge right", Point{0, 0}, Point{0, 4e9}, Point{4e9, 0}, -1},
		{"huge on edge", Point{-4e9, -4e9}, Point{4e9, 4e9}, Point{1, 1}, 0},
		{"huge off by one", Point{-4e9, -4e9}, Point{4e9, 4e9}, Point{1, 2}, 1},
	}
	for _, tt := range tests {
		if got := Orient(tt.a, tt.b, tt.p); got != tt.want {
			t.Errorf("%s: Orient = %d, want %d", tt.name, got, tt.want)
		}
	}
}
