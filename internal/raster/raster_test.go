package raster

import "testing"

// all is a clip larger than any test geometry.
var all = Bounds{X0: -1 << 20, Y0: -1 << 20, X1: 1 << 20, Y1: 1 << 20}

func collectLine(x0, y0, x1, y1 int, clip Bounds) map[int]Point {
	pts := map[int]Point{}
	for i, p := range Line(x0, y0, x1, y1, clip) {
		pts[i] = p
	}
	return pts
}

func TestLineZeroLength(t *testing.T) {
	pts := collectLine(4, 7, 4, 7, all)
	if len(pts) != 1 || pts[0] != (Point{4, 7}) {
		t.Fatalf("zero-length line = %v, want [{4 7}]", pts)
	}
	if n := LineSteps(4, 7, 4, 7); n != 0 {
		t.Errorf("LineSteps = %d, want 0", n)
	}
}

var lineCases = []struct {
	name           string
	x0, y0, x1, y1 int
}{
	{"horizontal", 0, 0, 9, 0},
	{"vertical up", 3, 8, 3, -2},
	{"diagonal", 0, 0, 5, 5},
	{"shallow", -4, 1, 10, 4},
	{"steep reversed", 7, 12, 2, 0},
	{"half steps", 0, 0, 8, 3},
}

func TestLineEndpointsAndCount(t *testing.T) {
	for _, tt := range lineCases {
		t.Run(tt.name, func(t *testing.T) {
			pts := collectLine(tt.x0, tt.y0, tt.x1, tt.y1, all)
			n := LineSteps(tt.x0, tt.y0, tt.x1, tt.y1)
			if pts[0] != (Point{tt.x0, tt.y0}) {
				t.Errorf("first point %v, want (%d,%d)", pts[0], tt.x0, tt.y0)
			}
			if last := pts[n]; last != (Point{tt.x1, tt.y1}) {
				t.Errorf("last point %v, want (%d,%d)", last, tt.x1, tt.y1)
			}
			if len(pts) != n+1 {
				t.Errorf("pixel count %d, want %d", len(pts), n+1)
			}
			seen := map[Point]bool{}
			for i := 0; i <= n; i++ {
				p, ok := pts[i]
				if !ok {
					t.Fatalf("step %d missing", i)
				}
				if seen[p] {
					t.Fatalf("pixel %v yielded twice", p)
				}
				seen[p] = true
			}
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	for _, tt := range lineCases {
		pts := collectLine(tt.x0, tt.y0, tt.x1, tt.y1, all)
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			if absInt(a.X-b.X) > 1 || absInt(a.Y-b.Y) > 1 {
				t.Errorf("%s: step %d jumps from %v to %v", tt.name, i, a, b)
			}
		}
	}
}

func TestLineReversedCoversSamePixels(t *testing.T) {
	for _, tt := range lineCases {
		fwd := collectLine(tt.x0, tt.y0, tt.x1, tt.y1, all)
		back := collectLine(tt.x1, tt.y1, tt.x0, tt.y0, all)
		n := len(fwd) - 1
		for i, p := range fwd {
			if back[n-i] != p {
				t.Errorf("%s: step %d is %v forward, %v backward", tt.name, i, p, back[n-i])
			}
		}
	}
}

func TestLineClipKeepsStepIndex(t *testing.T) {
	clips := []Bounds{
		{X0: 0, Y0: 0, X1: 4, Y1: 4},
		{X0: 2, Y0: -1, X1: 6, Y1: 3},
		{X0: -3, Y0: 5, X1: 8, Y1: 9},
		{X0: 20, Y0: 20, X1: 30, Y1: 30},
	}
	for _, tt := range lineCases {
		full := collectLine(tt.x0, tt.y0, tt.x1, tt.y1, all)
		for _, c := range clips {
			got := collectLine(tt.x0, tt.y0, tt.x1, tt.y1, c)
			want := 0
			for i, p := range full {
				if !c.Contains(p) {
					continue
				}
				want++
				if got[i] != p {
					t.Errorf("%s clip %v: step %d = %v, want %v", tt.name, c, i, got[i], p)
				}
			}
			if len(got) != want {
				t.Errorf("%s clip %v: %d pixels, want %d", tt.name, c, len(got), want)
			}
		}
	}
}

func TestLineHugeCoordinates(t *testing.T) {
	clip := Bounds{X1: 32, Y1: 32}
	diag := collectLine(-3e9, -3e9, 3e9, 3e9, clip)
	if len(diag) != 32 {
		t.Fatalf("diagonal yielded %d pixels, want 32", len(diag))
	}
	for i, p := range diag {
		if p.X != p.Y || i != p.X+3e9 {
			t.Errorf("step %d = %v, want on the diagonal at step x+3e9", i, p)
		}
	}
	if n := len(collectLine(-3e9, 40, 3e9, 40, clip)); n != 0 {
		t.Errorf("line below the clip yielded %d pixels", n)
	}
	if n := len(collectLine(-Limit, 5, Limit, 6, clip)); n != 32 {
		t.Errorf("near-horizontal line yielded %d pixels, want 32", n)
	}
}

func TestRectOutline(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		clip       Bounds
		want       int
	}{
		{"regular", 0, 0, 5, 4, all, 14},
		{"single row", 2, 2, 6, 1, all, 6},
		{"single column", 2, 2, 1, 6, all, 6},
		{"single pixel", 0, 0, 1, 1, all, 1},
		{"zero width", 0, 0, 0, 5, all, 0},
		{"negative height", 0, 0, 5, -3, all, 0},
		{"clipped corner", 0, 0, 5, 4, Bounds{X0: 3, Y0: 2, X1: 10, Y1: 10}, 3},
		{"huge around clip", -3e9, -3e9, 6e9, 6e9, Bounds{X1: 32, Y1: 32}, 0},
		{"huge left edge", 0, -3e9, 6e9, 6e9, Bounds{X1: 32, Y1: 32}, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[Point]bool{}
			for p := range RectOutline(tt.x, tt.y, tt.w, tt.h, tt.clip) {
				if seen[p] {
					t.Fatalf("pixel %v yielded twice", p)
				}
				if !tt.clip.Contains(p) {
					t.Fatalf("pixel %v outside clip", p)
				}
				seen[p] = true
			}
			if len(seen) != tt.want {
				t.Errorf("outline pixels = %d, want %d", len(seen), tt.want)
			}
		})
	}
}

func TestInLimit(t *testing.T) {
	if !InLimit(0, -Limit, Limit, 3e9) {
		t.Error("values within the limit rejected")
	}
	if InLimit(1, Limit+1) || InLimit(-Limit-1) {
		t.Error("value beyond the limit accepted")
	}
}
