package present

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/math3d"
	"github.com/disasterengine/canvas/mesh"
)

// FitScale returns the largest whole-number scale at which a w x h buffer
// fits inside outW x outH, never less than 1.
func FitScale(w, h, outW, outH int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	return max(1, min(outW/w, outH/h))
}

// NRGBA converts a canvas colour for ebiten draw calls.
func NRGBA(c canvas.Color32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Shaded is a projected model triangle ready for DrawTriangles.
type Shaded struct {
	P     [3]canvas.Vec2
	Depth float64 // mean camera-space distance
	Light float64 // brightness in [0.25, 1]
}

// ProjectMesh projects and shades the front-facing triangles of m for a
// w x h target, sorted far to near for painter's order. Triangles touching
// the near plane are dropped.
func ProjectMesh(m *mesh.Mesh, world canvas.WorldTransform, cam canvas.Camera, w, h int) []Shaded {
	if m == nil || w <= 0 || h <= 0 {
		return nil
	}
	wm := world.Matrix()
	view := cam.View()
	mv := view.Mul(wm)
	proj := cam.Projection(float64(w) / float64(h))
	toEye := cam.Forward().Mul(-1)

	var out []Shaded
	for _, tri := range m.Triangles() {
		var (
			s     Shaded
			ok    = true
			depth float64
		)
		for i, v := range [3]math3d.Vec3{tri.A, tri.B, tri.C} {
			ev := mv.MulPoint(v)
			if -ev.Z <= cam.Near {
				ok = false
				break
			}
			win := math3d.Project(ev, math3d.Identity(), proj, w, h)
			s.P[i] = canvas.Vec2{X: win.X, Y: win.Y}
			depth += ev.Len()
		}
		if !ok || area(s.P) >= 0 {
			continue
		}
		worldTri := mesh.Triangle{A: wm.MulPoint(tri.A), B: wm.MulPoint(tri.B), C: wm.MulPoint(tri.C)}
		s.Depth = depth / 3
		s.Light = 0.25 + 0.75*math.Max(0, worldTri.Normal().Normalize().Dot(toEye))
		out = append(out, s)
	}
	slices.SortStableFunc(out, func(a, b Shaded) int { return cmp.Compare(b.Depth, a.Depth) })
	return out
}

func area(p [3]canvas.Vec2) float64 {
	return (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[1].Y-p[0].Y)*(p[2].X-p[0].X)
}

// LineEnds projects a world-space segment for a w x h target.
func LineEnds(cam canvas.Camera, from, to math3d.Vec3, w, h int) (a, b canvas.Vec2, ok bool) {
	a, okA := cam.Project(from, w, h)
	b, okB := cam.Project(to, w, h)
	return a, b, okA && okB
}

// Sprite holds the affine parameters of a queued texture draw, applied in
// order: mirror inside the region, move the origin to zero, scale by the
// magnitude, rotate, translate.
type Sprite struct {
	FlipX, FlipY   bool
	W, H           float64
	OriginX        float64
	OriginY        float64
	ScaleX, ScaleY float64
	Radians        float64
	X, Y           float64
	Alpha          float64
}

// SpriteParams derives the parameters for drawing region src of a buffer
// so that t.Origin lands on (x, y), matching the software compositor.
func SpriteParams(x, y float64, src canvas.Rect, t canvas.Transform2D) Sprite {
	c := src.Canon()
	return Sprite{
		FlipX:   (src.W < 0) != (t.Scale.X < 0),
		FlipY:   (src.H < 0) != (t.Scale.Y < 0),
		W:       float64(c.W),
		H:       float64(c.H),
		OriginX: t.Origin.X,
		OriginY: t.Origin.Y,
		ScaleX:  math.Abs(t.Scale.X),
		ScaleY:  math.Abs(t.Scale.Y),
		Radians: math3d.Radians(t.Rotation),
		X:       x,
		Y:       y,
		Alpha:   math.Max(0, math.Min(1, t.Alpha)),
	}
}
