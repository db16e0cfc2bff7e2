package canvas

import (
	"math"

	"github.com/disasterengine/canvas/internal/mathx"
	"github.com/disasterengine/canvas/math3d"
)

// Rect is an integer rectangle. A negative W or H flips sampling on that
// axis when the rect selects a sprite region; the covered pixels are the
// same as for the absolute size.
type Rect struct {
	X, Y, W, H int
}

// Canon returns r with non-negative W and H, keeping X and Y.
func (r Rect) Canon() Rect {
	return Rect{X: r.X, Y: r.Y, W: mathx.Abs(r.W), H: mathx.Abs(r.H)}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Vec2 is a 2D vector in pixels.
type Vec2 struct {
	X, Y float64
}

// Transform2D places a sprite: Origin is the pivot in source pixels
// relative to the region's top-left, Rotation is in degrees, and Alpha
// scales source alpha.
type Transform2D struct {
	Origin   Vec2
	Scale    Vec2
	Rotation float64
	Alpha    float64
}

// IdentityTransform returns origin (0,0), scale (1,1), no rotation and
// full alpha.
func IdentityTransform() Transform2D {
	return Transform2D{Scale: Vec2{X: 1, Y: 1}, Alpha: 1}
}

// affine is the 2x3 matrix
//
//	| a  b  c |
//	| d  e  f |
type affine struct {
	a, b, c float64
	d, e, f float64
}

// spriteAffine maps sprite-local pixel coordinates to destination pixels:
// translate to (x, y), rotate, scale by |scale|, then subtract the origin.
func spriteAffine(x, y float64, t Transform2D) affine {
	sx, sy := math.Abs(t.Scale.X), math.Abs(t.Scale.Y)
	sin, cos := math.Sincos(math3d.Radians(t.Rotation))
	m := affine{
		a: cos * sx, b: -sin * sy,
		d: sin * sx, e: cos * sy,
	}
	m.c = x - (m.a*t.Origin.X + m.b*t.Origin.Y)
	m.f = y - (m.d*t.Origin.X + m.e*t.Origin.Y)
	return m
}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// invert returns the inverse and false when m is singular.
func (m affine) invert() (affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return affine{}, false
	}
	inv := 1 / det
	return affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}
