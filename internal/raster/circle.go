package raster

import (
	"iter"
	"math/bits"
	"sort"
)

// circle evaluates the midpoint circle algorithm in closed form. Starting
// at (r, 0), the algorithm keeps x on row y while x(x-1) + y² < r² and
// steps x down otherwise, so on every first-octant row x is the largest
// value passing that test. Solving per row lets a clipped circle skip the
// rows and columns outside the target.
type circle struct {
	r          uint64
	r2hi, r2lo uint64
}

func newCircle(r int) circle {
	hi, lo := bits.Mul64(uint64(r), uint64(r))
	return circle{r: uint64(r), r2hi: hi, r2lo: lo}
}

// keeps reports x(x-1) + y² < r².
func (c circle) keeps(x, y uint64) bool {
	var ahi, alo uint64
	if x > 0 {
		ahi, alo = bits.Mul64(x, x-1)
	}
	bhi, blo := bits.Mul64(y, y)
	lo, carry := bits.Add64(alo, blo, 0)
	hi := ahi + bhi + carry
	return hi < c.r2hi || hi == c.r2hi && lo < c.r2lo
}

// last returns the largest v in [0, r] with ok(v), or -1. ok must hold on
// a prefix of the range.
func (c circle) last(ok func(v uint64) bool) int {
	return sort.Search(int(c.r)+1, func(i int) bool { return !ok(uint64(i)) }) - 1
}

// row returns the outline columns at vertical distance a from the centre
// as up to two ordered runs of non-negative offsets. The first octant
// contributes x(a) when x(a) >= a; the second contributes every y <= a
// whose x(y) is a.
func (c circle) row(a uint64) (runs [2][2]int, n int) {
	x := c.last(func(v uint64) bool { return c.keeps(v, a) })
	lo := c.last(func(v uint64) bool { return c.keeps(a+1, v) }) + 1
	hi := min(c.last(func(v uint64) bool { return c.keeps(a, v) }), int(a))

	hasRun, hasX := lo <= hi, x >= int(a)
	switch {
	case hasRun && hasX && x <= hi+1:
		runs[0] = [2]int{lo, max(x, hi)}
		n = 1
	case hasRun && hasX:
		runs[0], runs[1] = [2]int{lo, hi}, [2]int{x, x}
		n = 2
	case hasRun:
		runs[0] = [2]int{lo, hi}
		n = 1
	case hasX:
		runs[0] = [2]int{x, x}
		n = 1
	}
	return runs, n
}

// circleRows returns the clipped row range of a circle, or ok false when its
// bounding box misses clip.
func circleRows(cx, cy, r int, clip Bounds) (y0, y1 int, ok bool) {
	if r < 0 || clip.Empty() || cx+r < clip.X0 || cx-r >= clip.X1 {
		return 0, 0, false
	}
	y0, y1 = max(cy-r, clip.Y0), min(cy+r, clip.Y1-1)
	return y0, y1, y0 <= y1
}

// CircleOutline yields the outline of the midpoint circle of radius r
// centred on (cx, cy) that lies in clip, with 8-way symmetry. A zero
// radius yields the centre only; a negative radius yields nothing.
func CircleOutline(cx, cy, r int, clip Bounds) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		y0, y1, ok := circleRows(cx, cy, r, clip)
		if !ok {
			return
		}
		if r == 0 {
			yield(Point{X: cx, Y: cy})
			return
		}
		c := newCircle(r)
		cols := func(x0, x1, py int) bool {
			for px := max(x0, clip.X0); px <= min(x1, clip.X1-1); px++ {
				if !yield(Point{X: px, Y: py}) {
					return false
				}
			}
			return true
		}
		for py := y0; py <= y1; py++ {
			runs, n := c.row(uint64(absInt(py - cy)))
			for _, run := range runs[:n] {
				if !cols(cx+run[0], cx+run[1], py) {
					return
				}
				// The centre column belongs to the right half only.
				if p := max(run[0], 1); p <= run[1] && !cols(cx-run[1], cx-p, py) {
					return
				}
			}
		}
	}
}

// CircleSpans yields one span per clipped scanline of the filled circle
// of radius r centred on (cx, cy), ordered by Y. Each span covers every
// outline pixel on its row.
func CircleSpans(cx, cy, r int, clip Bounds) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		y0, y1, ok := circleRows(cx, cy, r, clip)
		if !ok {
			return
		}
		c := newCircle(r)
		for py := y0; py <= y1; py++ {
			half := 0
			if r > 0 {
				runs, n := c.row(uint64(absInt(py - cy)))
				if n == 0 {
					continue
				}
				half = runs[n-1][1]
			}
			s := Span{Y: py, X0: max(cx-half, clip.X0), X1: min(cx+half, clip.X1-1)}
			if s.X0 <= s.X1 && !yield(s) {
				return
			}
		}
	}
}
