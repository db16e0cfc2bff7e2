// Package raster provides integer pixel stepping for the canvas primitives.
//
// Nothing here touches pixel memory: each function yields the pixel
// positions a primitive covers inside a clip rectangle and the canvas
// composites them. Every position is yielded exactly once so translucent
// colours blend once per pixel. Work and memory are bounded by the clip
// rectangle, not by the size of the primitive.
package raster

import (
	"iter"
	"math/bits"
	"sort"
)

// Limit bounds the magnitude of the coordinates and sizes the raster
// functions accept. Within it no intermediate sum overflows.
const Limit = 1 << 61

// InLimit reports whether every value lies within [-Limit, Limit].
func InLimit(vs ...int) bool {
	for _, v := range vs {
		if int64(v) > Limit || int64(v) < -Limit {
			return false
		}
	}
	return true
}

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Span is the inclusive horizontal run [X0, X1] on row Y.
type Span struct {
	Y, X0, X1 int
}

// Bounds is the half-open pixel rectangle [X0, X1) x [Y0, Y1).
type Bounds struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether b contains no pixel.
func (b Bounds) Empty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X0 && p.X < b.X1 && p.Y >= b.Y0 && p.Y < b.Y1
}

// LineSteps returns the number of Bresenham steps between two points,
// max(|dx|, |dy|). A zero-length line has zero steps and one pixel.
func LineSteps(x0, y0, x1, y1 int) int {
	return max(absInt(x1-x0), absInt(y1-y0))
}

// line is a Bresenham line in closed form: step k moves k pixels along
// the major axis from the start, and the minor offset is the rounded
// exact position measured from the canonical end (the one with the
// smaller major coordinate). Both directions therefore cover the same
// pixels.
type line struct {
	x0, y0   int // start
	n        int // steps
	xMajor   bool
	ms       int // major direction from the start
	reversed bool
	cx, cy   int // canonical end
	cs       int // minor direction from the canonical end
	amin     uint64
}

func newLine(x0, y0, x1, y1 int) line {
	dx, dy := x1-x0, y1-y0
	l := line{x0: x0, y0: y0, xMajor: absInt(dx) >= absInt(dy)}
	major, minor := dx, dy
	if !l.xMajor {
		major, minor = dy, dx
	}
	l.n = absInt(major)
	l.amin = uint64(absInt(minor))
	l.ms = 1
	l.cx, l.cy = x0, y0
	if major < 0 {
		l.ms = -1
		l.reversed = true
		l.cx, l.cy = x1, y1
		minor = -minor
	}
	l.cs = 1
	if minor < 0 {
		l.cs = -1
	}
	return l
}

// minorOffset returns round(j * amin / n), halves rounding up, in exact
// 128-bit arithmetic.
func (l line) minorOffset(j int) int {
	if l.n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(2*uint64(j), l.amin)
	lo, carry := bits.Add64(lo, uint64(l.n), 0)
	q, _ := bits.Div64(hi+carry, lo, 2*uint64(l.n))
	return int(q)
}

// at returns the pixel of step k.
func (l line) at(k int) Point {
	j := k
	if l.reversed {
		j = l.n - k
	}
	m := l.cs * l.minorOffset(j)
	if l.xMajor {
		return Point{X: l.x0 + l.ms*k, Y: l.cy + m}
	}
	return Point{X: l.cx + m, Y: l.y0 + l.ms*k}
}

func (l line) minorAt(k int) int {
	p := l.at(k)
	if l.xMajor {
		return p.Y
	}
	return p.X
}

// clipSteps returns the inclusive step range whose pixels lie in c.
func (l line) clipSteps(c Bounds) (k0, k1 int, ok bool) {
	start, lo, hi := l.x0, c.X0, c.X1-1
	mlo, mhi := c.Y0, c.Y1-1
	if !l.xMajor {
		start, lo, hi = l.y0, c.Y0, c.Y1-1
		mlo, mhi = c.X0, c.X1-1
	}
	if l.ms > 0 {
		k0, k1 = lo-start, hi-start
	} else {
		k0, k1 = start-hi, start-lo
	}
	k0, k1 = max(k0, 0), min(k1, l.n)
	if k0 > k1 {
		return 0, 0, false
	}

	// The minor coordinate is monotonic in k.
	base, count := k0, k1-k0+1
	first := func(pred func(m int) bool) int {
		return base + sort.Search(count, func(i int) bool { return pred(l.minorAt(base + i)) })
	}
	if (l.cs > 0) != l.reversed {
		k0 = first(func(m int) bool { return m >= mlo })
		k1 = first(func(m int) bool { return m > mhi }) - 1
	} else {
		k0 = first(func(m int) bool { return m <= mhi })
		k1 = first(func(m int) bool { return m < mlo }) - 1
	}
	return k0, k1, k0 <= k1
}

// Line yields the pixels of the Bresenham line from (x0, y0) to (x1, y1)
// inclusive that lie in clip, keyed by their step index in the whole
// line, 0..LineSteps. Swapping the endpoints covers the same pixels.
func Line(x0, y0, x1, y1 int, clip Bounds) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		if clip.Empty() {
			return
		}
		l := newLine(x0, y0, x1, y1)
		k0, k1, ok := l.clipSteps(clip)
		if !ok {
			return
		}
		for k := k0; k <= k1; k++ {
			if !yield(k, l.at(k)) {
				return
			}
		}
	}
}

// RectOutline yields the border pixels of [x, x+w) x [y, y+h) that lie in
// clip. Nothing is yielded when w or h is not positive.
func RectOutline(x, y, w, h int, clip Bounds) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if w <= 0 || h <= 0 || clip.Empty() {
			return
		}
		right, bottom := x+w-1, y+h-1
		cx0, cx1 := max(x, clip.X0), min(right, clip.X1-1)
		row := func(py int) bool {
			if py < clip.Y0 || py >= clip.Y1 {
				return true
			}
			for px := cx0; px <= cx1; px++ {
				if !yield(Point{X: px, Y: py}) {
					return false
				}
			}
			return true
		}
		if !row(y) {
			return
		}
		if bottom != y && !row(bottom) {
			return
		}
		leftIn := x >= clip.X0 && x < clip.X1
		rightIn := right != x && right >= clip.X0 && right < clip.X1
		for py := max(y+1, clip.Y0); py < min(bottom, clip.Y1); py++ {
			if leftIn && !yield(Point{X: x, Y: py}) {
				return
			}
			if rightIn && !yield(Point{X: right, Y: py}) {
				return
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
