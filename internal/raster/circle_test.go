package raster

import "testing"

// midpointOutline is the stepping form of the midpoint circle algorithm.
func midpointOutline(r int) map[Point]bool {
	out := map[Point]bool{}
	x, y, err := r, 0, 1-r
	for x >= y {
		for _, p := range [8]Point{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			out[p] = true
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return out
}

func TestCircleOutlineMatchesMidpoint(t *testing.T) {
	for r := 0; r <= 40; r++ {
		want := midpointOutline(r)
		got := map[Point]bool{}
		for p := range CircleOutline(0, 0, r, all) {
			if got[p] {
				t.Fatalf("r=%d: pixel %v yielded twice", r, p)
			}
			got[p] = true
		}
		if len(got) != len(want) {
			t.Errorf("r=%d: %d pixels, want %d", r, len(got), len(want))
		}
		for p := range want {
			if !got[p] {
				t.Errorf("r=%d: missing %v", r, p)
			}
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	for range CircleOutline(0, 0, -1, all) {
		t.Fatal("negative radius yielded a pixel")
	}
	for range CircleSpans(0, 0, -3, all) {
		t.Fatal("negative radius yielded a span")
	}
}

func collectSpans(cx, cy, r int, clip Bounds) map[int]Span {
	byRow := map[int]Span{}
	for s := range CircleSpans(cx, cy, r, clip) {
		byRow[s.Y] = s
	}
	return byRow
}

func TestCircleSpansCoverOutline(t *testing.T) {
	for r := 0; r <= 15; r++ {
		byRow := collectSpans(0, 0, r, all)
		if len(byRow) != 2*r+1 {
			t.Fatalf("r=%d: %d spans, want %d", r, len(byRow), 2*r+1)
		}
		for p := range CircleOutline(0, 0, r, all) {
			s, ok := byRow[p.Y]
			if !ok || p.X < s.X0 || p.X > s.X1 {
				t.Errorf("r=%d: outline pixel %v not inside fill span %v", r, p, s)
			}
		}
	}
}

func TestCircleClipped(t *testing.T) {
	clip := Bounds{X0: 3, Y0: -2, X1: 9, Y1: 4}
	for r := 1; r <= 10; r++ {
		want := 0
		for p := range midpointOutline(r) {
			if clip.Contains(p) {
				want++
			}
		}
		got := 0
		for p := range CircleOutline(0, 0, r, clip) {
			if !clip.Contains(p) {
				t.Fatalf("r=%d: pixel %v outside clip", r, p)
			}
			got++
		}
		if got != want {
			t.Errorf("r=%d: %d clipped pixels, want %d", r, got, want)
		}
	}
}

func TestCircleHugeRadius(t *testing.T) {
	clip := Bounds{X1: 32, Y1: 32}
	spans := collectSpans(4, 4, Limit, clip)
	if len(spans) != 32 {
		t.Fatalf("%d spans, want 32", len(spans))
	}
	for y, s := range spans {
		if s.X0 != 0 || s.X1 != 31 {
			t.Errorf("row %d span %v, want full width", y, s)
		}
	}
	for p := range CircleOutline(4, 4, Limit, clip) {
		t.Fatalf("outline far outside the clip yielded %v", p)
	}
	for range CircleSpans(-3e9, 4, 10, clip) {
		t.Fatal("circle left of the clip yielded a span")
	}
}
