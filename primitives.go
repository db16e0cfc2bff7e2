package canvas

import (
	"math"

	"github.com/disasterengine/canvas/internal/raster"
)

// Line draws a one-pixel line from (x0, y0) to (x1, y1) inclusive.
func (cv *Canvas) Line(x0, y0, x1, y1 int, col Color32) {
	if !raster.InLimit(x0, y0, x1, y1) {
		return
	}
	for _, p := range raster.Line(x0, y0, x1, y1, cv.clip()) {
		cv.plot(p.X, p.Y, col)
	}
}

// LineGradient draws a line whose colour moves from start to end by the
// fraction of Bresenham steps taken. A zero-length line is one pixel of
// start.
func (cv *Canvas) LineGradient(x0, y0, x1, y1 int, start, end Color32) {
	if !raster.InLimit(x0, y0, x1, y1) {
		return
	}
	n := raster.LineSteps(x0, y0, x1, y1)
	if n == 0 || start == end {
		cv.Line(x0, y0, x1, y1, start)
		return
	}
	for i, p := range raster.Line(x0, y0, x1, y1, cv.clip()) {
		cv.plot(p.X, p.Y, start.Lerp(end, float64(i)/float64(n)))
	}
}

// Rect draws the rectangle [x, x+w) x [y, y+h), outlined or filled.
// A non-positive w or h draws nothing.
func (cv *Canvas) Rect(x, y, w, h int, col Color32, filled bool) {
	if w <= 0 || h <= 0 || !raster.InLimit(x, y, w, h) {
		return
	}
	if !filled {
		for p := range raster.RectOutline(x, y, w, h, cv.clip()) {
			cv.plot(p.X, p.Y, col)
		}
		return
	}
	cv.fillRect(x, y, w, h, col)
}

func (cv *Canvas) fillRect(x, y, w, h int, col Color32) {
	t := cv.Target()
	tx, ty := cv.toTarget(x, y)
	x0, y0 := max(tx, 0), max(ty, 0)
	x1, y1 := min(tx+w, t.width), min(ty+h, t.height)
	px := col.pixel()
	for py := y0; py < y1; py++ {
		for qx := x0; qx < x1; qx++ {
			cv.plotTarget(t, qx, py, px)
		}
	}
}

// Circle draws a circle of radius r centred on (x, y) with the midpoint
// algorithm. The radius is rounded to the nearest pixel; a negative radius
// draws nothing.
func (cv *Canvas) Circle(x, y int, r float64, col Color32, filled bool) {
	if math.IsNaN(r) || r <= -0.5 || !raster.InLimit(x, y) {
		return
	}
	ri := int(math.Round(math.Min(r, raster.Limit)))
	if !filled {
		for p := range raster.CircleOutline(x, y, ri, cv.clip()) {
			cv.plot(p.X, p.Y, col)
		}
		return
	}
	for s := range raster.CircleSpans(x, y, ri, cv.clip()) {
		for px := s.X0; px <= s.X1; px++ {
			cv.plot(px, s.Y, col)
		}
	}
}

// Triangle draws the triangle through three points. The outline is the
// three edges; the filled form also covers every pixel centre inside,
// whatever the vertex order.
func (cv *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int, col Color32, filled bool) {
	if !raster.InLimit(x1, y1, x2, y2, x3, y3) {
		return
	}
	a := raster.Point{X: x1, Y: y1}
	b := raster.Point{X: x2, Y: y2}
	c := raster.Point{X: x3, Y: y3}
	var m *raster.Mask
	if filled {
		m = raster.FillTriangle(a, b, c, cv.clip())
	} else {
		m = raster.NewMask(cv.clip(), a, b, c)
		raster.TriangleOutline(m, a, b, c)
	}
	for p := range m.Points() {
		cv.plot(p.X, p.Y, col)
	}
}

// ColorBuffer draws row-major colours as a width-wide image with its top
// left at (x, y). A trailing partial row is drawn as far as it goes.
func (cv *Canvas) ColorBuffer(colors []Color32, x, y, width int) {
	if width <= 0 || !raster.InLimit(x, y) {
		return
	}
	for i, col := range colors {
		cv.plot(x+i%width, y+i/width, col)
	}
}
