package canvas

import (
	"github.com/disasterengine/canvas/internal/mathx"
	"github.com/disasterengine/canvas/internal/raster"
)

// sliceCell is one third of a nine-slice axis: the source run and the
// destination run it fills.
type sliceCell struct {
	src, srcLen int
	dst, dstLen int
}

// sliceAxis cuts one axis at 0, cut, cut+cutLen and size. Corners keep
// their native length clamped to the destination; the far corner keeps
// its outer edge when clamped. The middle takes what is left.
func sliceAxis(size, cut, cutLen, dst, dstLen int) [3]sliceCell {
	lo := mathx.Clamp(cut, 0, size)
	hi := mathx.Clamp(cut+cutLen, lo, size)

	near := min(lo, max(dstLen, 0))
	far := min(size-hi, max(dstLen-near, 0))
	mid := dstLen - near - far

	return [3]sliceCell{
		{src: 0, srcLen: near, dst: dst, dstLen: near},
		{src: lo, srcLen: hi - lo, dst: dst + near, dstLen: mid},
		{src: size - far, srcLen: far, dst: dst + dstLen - far, dstLen: far},
	}
}

// NineSlice draws src into dest, cut into a 3x3 grid by center. Corners
// are drawn at native size; edges and the centre are tiled at native
// resolution and the last tile on each axis is clipped, never scaled.
// Cells with no destination or source area are skipped.
func (cv *Canvas) NineSlice(src *PixelBuffer, center, dest Rect) {
	if src == nil || !raster.InLimit(center.X, center.Y, center.W, center.H, dest.X, dest.Y, dest.W, dest.H) {
		return
	}
	center, dest = center.Canon(), dest.Canon()
	cols := sliceAxis(src.width, center.X, center.W, dest.X, dest.W)
	rows := sliceAxis(src.height, center.Y, center.H, dest.Y, dest.H)
	for _, row := range rows {
		for _, col := range cols {
			cv.tile(src, col, row)
		}
	}
}

// tile repeats the source cell over the part of the destination cell
// that lies on the target.
func (cv *Canvas) tile(src *PixelBuffer, col, row sliceCell) {
	if col.dstLen <= 0 || row.dstLen <= 0 || col.srcLen <= 0 || row.srcLen <= 0 {
		return
	}
	clip := cv.clip()
	for oy := firstTile(row, clip.Y0); oy < row.dstLen && row.dst+oy < clip.Y1; oy += row.srcLen {
		h := min(row.srcLen, row.dstLen-oy)
		for ox := firstTile(col, clip.X0); ox < col.dstLen && col.dst+ox < clip.X1; ox += col.srcLen {
			w := min(col.srcLen, col.dstLen-ox)
			cv.DrawPixelBufferRect(src, col.dst+ox, row.dst+oy, Rect{X: col.src, Y: row.src, W: w, H: h})
		}
	}
}

// firstTile returns the offset of the first tile of c that reaches lo.
func firstTile(c sliceCell, lo int) int {
	if lo <= c.dst {
		return 0
	}
	return (lo - c.dst) / c.srcLen * c.srcLen
}
