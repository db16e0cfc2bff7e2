package canvas

import (
	"math"
	"testing"
)

func TestZeroLengthLine(t *testing.T) {
	red := Color32{R: 255, A: 255}
	for _, gradient := range []bool{false, true} {
		cv := newTestCanvas(8, 8)
		if gradient {
			cv.LineGradient(3, 4, 3, 4, red, White)
		} else {
			cv.Line(3, 4, 3, 4, red)
		}
		got := inked(cv.Screen())
		if len(got) != 1 || !got[pt{3, 4}] {
			t.Errorf("gradient=%v: pixels = %v, want only (3,4)", gradient, got)
		}
		if c := cv.Screen().GetPixel(3, 4); c != red {
			t.Errorf("gradient=%v: colour = %v, want start colour", gradient, c)
		}
	}
}

func TestLineGradientEndpoints(t *testing.T) {
	cv := newTestCanvas(16, 4)
	start, end := Color32{R: 255, A: 255}, Color32{B: 255, A: 255}
	cv.LineGradient(0, 1, 10, 1, start, end)
	if got := cv.Screen().GetPixel(0, 1); got != start {
		t.Errorf("first pixel = %v, want %v", got, start)
	}
	if got := cv.Screen().GetPixel(10, 1); got != end {
		t.Errorf("last pixel = %v, want %v", got, end)
	}
	if got := cv.Screen().GetPixel(5, 1); got.R != 128 || got.B != 128 {
		t.Errorf("midpoint = %v, want half way", got)
	}
}

func TestFilledContainsOutline(t *testing.T) {
	shapes := []struct {
		name string
		draw func(cv *Canvas, filled bool)
	}{
		{"rect", func(cv *Canvas, f bool) { cv.Rect(3, 4, 10, 7, White, f) }},
		{"thin rect", func(cv *Canvas, f bool) { cv.Rect(3, 4, 1, 9, White, f) }},
		{"circle", func(cv *Canvas, f bool) { cv.Circle(16, 16, 9.4, White, f) }},
		{"small circle", func(cv *Canvas, f bool) { cv.Circle(5, 5, 1, White, f) }},
		{"triangle cw", func(cv *Canvas, f bool) { cv.Triangle(2, 2, 28, 9, 11, 30, White, f) }},
		{"triangle ccw", func(cv *Canvas, f bool) { cv.Triangle(2, 2, 11, 30, 28, 9, White, f) }},
		{"sliver", func(cv *Canvas, f bool) { cv.Triangle(0, 0, 30, 1, 15, 2, White, f) }},
	}
	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			outline, filled := newTestCanvas(32, 32), newTestCanvas(32, 32)
			s.draw(outline, false)
			s.draw(filled, true)
			o, f := inked(outline.Screen()), inked(filled.Screen())
			if len(o) == 0 {
				t.Fatal("outline drew nothing")
			}
			if !isSubset(o, f) {
				t.Error("filled shape misses outline pixels")
			}
		})
	}
}

func TestTriangleWindingIndependent(t *testing.T) {
	a, b := newTestCanvas(32, 32), newTestCanvas(32, 32)
	a.Triangle(1, 1, 30, 5, 8, 25, White, true)
	b.Triangle(8, 25, 30, 5, 1, 1, White, true)
	if !mapsEqual(inked(a.Screen()), inked(b.Screen())) {
		t.Error("vertex order changed coverage")
	}
}

func mapsEqual(a, b map[pt]bool) bool {
	return len(a) == len(b) && isSubset(a, b)
}

func TestRectDegenerate(t *testing.T) {
	cv := newTestCanvas(8, 8)
	cv.Rect(1, 1, 0, 5, White, true)
	cv.Rect(1, 1, 5, -2, White, false)
	cv.Circle(4, 4, -3, White, true)
	if n := len(inked(cv.Screen())); n != 0 {
		t.Errorf("degenerate shapes drew %d pixels", n)
	}
}

func TestRectPixelCounts(t *testing.T) {
	cv := newTestCanvas(16, 16)
	cv.Rect(2, 2, 5, 4, White, true)
	if n := len(inked(cv.Screen())); n != 20 {
		t.Errorf("filled 5x4 = %d pixels, want 20", n)
	}
	cv = newTestCanvas(16, 16)
	cv.Rect(2, 2, 5, 4, White, false)
	if n := len(inked(cv.Screen())); n != 14 {
		t.Errorf("outline 5x4 = %d pixels, want 14", n)
	}
}

func TestOutlineWritesEachPixelOnce(t *testing.T) {
	// With Add, a pixel written twice would reach 2x the source value.
	half := Color32{R: 100, A: 255}
	cv := newTestCanvas(32, 32)
	cv.SetBlend(BlendAdd)
	cv.Rect(1, 1, 10, 10, half, false)
	cv.Circle(20, 20, 7, half, false)
	cv.Circle(20, 20, 4, half, true)
	for y := range 32 {
		for x := range 32 {
			if r := cv.Screen().GetPixel(x, y).R; r != 0 && r != 100 {
				t.Fatalf("pixel (%d,%d) R=%d, blended more than once", x, y, r)
			}
		}
	}
}

func TestNormalBlendThroughCanvas(t *testing.T) {
	base := Color32{R: 10, G: 20, B: 30, A: 255}
	src := Color32{R: 200, G: 100, B: 50, A: 255}

	cv := NewCanvas(2, 1, WithClearColor(base))
	cv.Rect(0, 0, 1, 1, src, true)
	src.A = 0
	cv.Rect(1, 0, 1, 1, src, true)

	if got := cv.Screen().GetPixel(0, 0); got != (Color32{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("alpha 255: got %v, want source", got)
	}
	if got := cv.Screen().GetPixel(1, 0); got != base {
		t.Errorf("alpha 0: got %v, want destination", got)
	}
}

func TestColorBuffer(t *testing.T) {
	cv := newTestCanvas(8, 8)
	cols := []Color32{White, Magenta, Palette[8], Palette[9], Palette[10]}
	cv.ColorBuffer(cols, 2, 3, 2)
	want := map[pt]Color32{{2, 3}: White, {3, 3}: Magenta, {2, 4}: Palette[8], {3, 4}: Palette[9], {2, 5}: Palette[10]}
	for p, c := range want {
		if got := cv.Screen().GetPixel(p.x, p.y); got != c {
			t.Errorf("(%d,%d) = %v, want %v", p.x, p.y, got, c)
		}
	}
	if n := len(inked(cv.Screen())); n != len(cols) {
		t.Errorf("drew %d pixels, want %d", n, len(cols))
	}
}

func TestDitherIsStippled(t *testing.T) {
	cv := newTestCanvas(8, 8)
	cv.SetBlendMode("dither")
	cv.Rect(0, 0, 8, 8, Color32{R: 255, A: 128}, true)
	n := len(inked(cv.Screen()))
	if n == 0 || n == 64 {
		t.Errorf("half alpha dither drew %d of 64 pixels", n)
	}
	for p := range inked(cv.Screen()) {
		if c := cv.Screen().GetPixel(p.x, p.y); c.A != 255 {
			t.Fatalf("kept pixel alpha = %d, want 255", c.A)
		}
	}
}

func TestHugeGeometryIsClipped(t *testing.T) {
	const full = 32 * 32
	tests := []struct {
		name string
		draw func(cv *Canvas)
		want int
	}{
		{"filled triangle", func(cv *Canvas) { cv.Triangle(0, 0, 3e9, 0, 0, 3e9, White, true) }, full},
		{"triangle outline", func(cv *Canvas) { cv.Triangle(0, 0, 3e9, 0, 0, 3e9, White, false) }, 63},
		{"filled circle", func(cv *Canvas) { cv.Circle(4, 4, 5e18, White, true) }, full},
		{"circle outline", func(cv *Canvas) { cv.Circle(4, 4, 5e18, White, false) }, 0},
		{"infinite radius", func(cv *Canvas) { cv.Circle(4, 4, math.Inf(1), White, true) }, full},
		{"horizontal line", func(cv *Canvas) { cv.Line(-3e9, 5, 3e9, 5, White) }, 32},
		{"diagonal line", func(cv *Canvas) { cv.Line(-3e9, -3e9, 3e9, 3e9, White) }, 32},
		{"filled rect", func(cv *Canvas) { cv.Rect(-3e9, -3e9, 6e9, 6e9, White, true) }, full},
		{"rect outline", func(cv *Canvas) { cv.Rect(-3e9, -3e9, 6e9, 6e9, White, false) }, 0},
		{"beyond limit", func(cv *Canvas) { cv.Line(math.MinInt, 0, math.MaxInt, 0, White) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := newTestCanvas(32, 32)
			tt.draw(cv)
			if n := len(inked(cv.Screen())); n != tt.want {
				t.Errorf("inked %d pixels, want %d", n, tt.want)
			}
		})
	}
}

func TestClippedGradientKeepsFullLength(t *testing.T) {
	start, end := Color32{A: 255}, Color32{R: 255, G: 255, B: 255, A: 255}
	clipped := newTestCanvas(64, 1)
	clipped.LineGradient(-64, 0, 63, 0, start, end)
	whole := newTestCanvas(128, 1)
	whole.LineGradient(0, 0, 127, 0, start, end)
	for x := range 64 {
		if got, want := clipped.Screen().GetPixel(x, 0), whole.Screen().GetPixel(x+64, 0); got != want {
			t.Fatalf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestClipFollowsOffset(t *testing.T) {
	cv := newTestCanvas(16, 16)
	cv.Offset(-1e9, 0)
	cv.Line(1e9, 3, 1e9+15, 3, White)
	if n := len(inked(cv.Screen())); n != 16 {
		t.Errorf("offset line inked %d pixels, want 16", n)
	}
}
