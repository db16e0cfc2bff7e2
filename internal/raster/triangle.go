package raster

import (
	"iter"
	"math/bits"
)

// Orient returns the sign of the doubled signed area of (a, b, p): 1, 0
// or -1. The result is exact for every coordinate within Limit.
func Orient(a, b, p Point) int {
	d0, d1 := b.X-a.X, p.Y-a.Y
	d2, d3 := b.Y-a.Y, p.X-a.X
	if small(d0, d1, d2, d3) {
		v := int64(d0)*int64(d1) - int64(d2)*int64(d3)
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	}
	return mul128(d0, d1).cmp(mul128(d2, d3))
}

func small(vs ...int) bool {
	for _, v := range vs {
		if v >= 1<<30 || v <= -(1<<30) {
			return false
		}
	}
	return true
}

// int128 is a two's complement 128-bit integer.
type int128 struct {
	hi int64
	lo uint64
}

func mul128(x, y int) int128 {
	hi, lo := bits.Mul64(uabs(x), uabs(y))
	v := int128{hi: int64(hi), lo: lo}
	if (x < 0) != (y < 0) {
		lo, borrow := bits.Sub64(0, v.lo, 0)
		v = int128{hi: -v.hi - int64(borrow), lo: lo}
	}
	return v
}

func (v int128) cmp(w int128) int {
	switch {
	case v.hi < w.hi:
		return -1
	case v.hi > w.hi:
		return 1
	case v.lo < w.lo:
		return -1
	case v.lo > w.lo:
		return 1
	}
	return 0
}

func uabs(v int) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// Mask is a coverage bitmap over a rectangular pixel region.
type Mask struct {
	X, Y int // top-left pixel
	W, H int
	bits []bool
}

// NewMask allocates a mask covering the bounding box of pts intersected
// with clip. The mask is empty when they do not overlap.
func NewMask(clip Bounds, pts ...Point) *Mask {
	if len(pts) == 0 {
		return &Mask{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	minX, minY = max(minX, clip.X0), max(minY, clip.Y0)
	maxX, maxY = min(maxX, clip.X1-1), min(maxY, clip.Y1-1)
	if minX > maxX || minY > maxY {
		return &Mask{}
	}
	w, h := maxX-minX+1, maxY-minY+1
	return &Mask{X: minX, Y: minY, W: w, H: h, bits: make([]bool, w*h)}
}

// Bounds returns the region the mask covers.
func (m *Mask) Bounds() Bounds {
	return Bounds{X0: m.X, Y0: m.Y, X1: m.X + m.W, Y1: m.Y + m.H}
}

// Set marks p as covered. Points outside the mask are ignored.
func (m *Mask) Set(p Point) {
	x, y := p.X-m.X, p.Y-m.Y
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = true
}

// Has reports whether p is covered.
func (m *Mask) Has(p Point) bool {
	x, y := p.X-m.X, p.Y-m.Y
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Points yields covered pixels in row-major order.
func (m *Mask) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < m.H; y++ {
			row := m.bits[y*m.W : (y+1)*m.W]
			for x, on := range row {
				if on && !yield(Point{X: m.X + x, Y: m.Y + y}) {
					return
				}
			}
		}
	}
}

// TriangleOutline marks the three Bresenham edges of (a, b, c) in m.
func TriangleOutline(m *Mask, a, b, c Point) {
	if m.W == 0 || m.H == 0 {
		return
	}
	for _, e := range [3][2]Point{{a, b}, {b, c}, {c, a}} {
		for _, p := range Line(e[0].X, e[0].Y, e[1].X, e[1].Y, m.Bounds()) {
			m.Set(p)
		}
	}
}

// FillTriangle returns the coverage mask, limited to clip, of the filled
// triangle (a, b, c): every pixel centre inside or on the edges, plus the
// outline pixels. The vertex order does not matter.
func FillTriangle(a, b, c Point, clip Bounds) *Mask {
	m := NewMask(clip, a, b, c)
	TriangleOutline(m, a, b, c)

	sign := Orient(a, b, c)
	if sign == 0 {
		return m
	}
	for y := m.Y; y < m.Y+m.H; y++ {
		for x := m.X; x < m.X+m.W; x++ {
			p := Point{X: x, Y: y}
			if Orient(b, c, p)*sign >= 0 && Orient(c, a, p)*sign >= 0 && Orient(a, b, p)*sign >= 0 {
				m.Set(p)
			}
		}
	}
	return m
}
