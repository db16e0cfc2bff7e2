package canvas

import (
	"math"

	"github.com/disasterengine/canvas/internal/blend"
	"github.com/disasterengine/canvas/internal/mathx"
)

// DrawPixelBuffer draws all of src with its top-left at (x, y).
func (cv *Canvas) DrawPixelBuffer(src *PixelBuffer, x, y int) {
	if src == nil {
		return
	}
	cv.DrawPixelBufferTransformed(src, x, y, Rect{W: src.width, H: src.height}, IdentityTransform())
}

// DrawPixelBufferRect draws the region r of src with its top-left at
// (x, y). A negative r.W or r.H mirrors the region on that axis.
func (cv *Canvas) DrawPixelBufferRect(src *PixelBuffer, x, y int, r Rect) {
	cv.DrawPixelBufferTransformed(src, x, y, r, IdentityTransform())
}

// DrawPixelBufferTransformed draws the region r of src so that t.Origin
// lands on (x, y), rotated by t.Rotation degrees about it and scaled by
// t.Scale. Every destination pixel centre is mapped back into the region
// and point sampled; pixels falling outside the region or src are skipped.
//
// Geometry uses the magnitude of t.Scale. A negative scale component, or a
// negative r size, mirrors sampling inside the region, so scale (-1, 1)
// covers exactly the pixels of (1, 1) with each row reversed.
func (cv *Canvas) DrawPixelBufferTransformed(src *PixelBuffer, x, y int, r Rect, t Transform2D) {
	if src == nil || r.Empty() {
		return
	}
	flipX := (r.W < 0) != (t.Scale.X < 0)
	flipY := (r.H < 0) != (t.Scale.Y < 0)
	r = r.Canon()
	alpha := mathx.Clamp(t.Alpha, 0, 1)
	if alpha == 0 {
		return
	}

	tx, ty := cv.toTarget(x, y)
	fwd := spriteAffine(float64(tx), float64(ty), t)
	inv, ok := fwd.invert()
	if !ok {
		return
	}

	// Destination box from the forward-mapped region corners.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {float64(r.W), 0}, {0, float64(r.H)}, {float64(r.W), float64(r.H)}} {
		px, py := fwd.apply(c[0], c[1])
		minX, maxX = min(minX, px), max(maxX, px)
		minY, maxY = min(minY, py), max(maxY, py)
	}
	dst := cv.Target()
	x0, x1 := pixelRange(minX, maxX, dst.width)
	y0, y1 := pixelRange(minY, maxY, dst.height)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			u, v := inv.apply(float64(px)+0.5, float64(py)+0.5)
			if !(u >= 0 && v >= 0 && u < float64(r.W) && v < float64(r.H)) {
				continue
			}
			lx, ly := int(u), int(v)
			if flipX {
				lx = r.W - 1 - lx
			}
			if flipY {
				ly = r.H - 1 - ly
			}
			sx, sy := r.X+lx, r.Y+ly
			if !src.inBounds(sx, sy) {
				continue
			}
			i := src.offset(sx, sy)
			sp := blend.Pixel{R: src.pix[i], G: src.pix[i+1], B: src.pix[i+2], A: src.pix[i+3]}
			if alpha < 1 {
				sp.A = mathx.Clamp255(float64(sp.A) * alpha)
			}
			cv.plotTarget(dst, px, py, sp)
		}
	}
}

// pixelRange converts a float extent to the half-open pixel range it
// touches inside [0, size). NaN extents give an empty range.
func pixelRange(lo, hi float64, size int) (int, int) {
	lo = mathx.Clamp(math.Floor(lo), 0, float64(size))
	hi = mathx.Clamp(math.Ceil(hi), 0, float64(size))
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0
	}
	return int(lo), int(hi)
}
