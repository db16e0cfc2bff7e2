package canvas

import (
	"math"

	"github.com/disasterengine/canvas/internal/mathx"
	"github.com/disasterengine/canvas/internal/raster"
	"github.com/disasterengine/canvas/math3d"
	"github.com/disasterengine/canvas/mesh"
)

// WorldTransform places a mesh: position, Euler rotation in degrees and
// per-axis scale.
type WorldTransform struct {
	Position math3d.Vec3
	Rotation math3d.Vec3
	Scale    math3d.Vec3
}

// IdentityWorld returns a transform with unit scale at the origin.
func IdentityWorld() WorldTransform {
	return WorldTransform{Scale: math3d.V3(1, 1, 1)}
}

// Matrix returns T * Rz * Ry * Rx * S.
func (w WorldTransform) Matrix() math3d.Mat4 {
	return math3d.TRS(w.Position, w.Rotation, w.Scale)
}

// WireframeOptions selects how Wireframe draws.
type WireframeOptions struct {
	// BackfaceCulling skips triangles facing away from the camera.
	// Meshes are counter-clockwise seen from outside.
	BackfaceCulling bool
	// DrawDepth darkens the colour with camera distance.
	DrawDepth bool
	// Filled draws solid triangles instead of edges.
	Filled bool
}

// Wireframe projects m through the camera into the active buffer and
// returns the number of triangles drawn. Triangles touching or behind the
// near plane are skipped.
func (cv *Canvas) Wireframe(m *mesh.Mesh, world WorldTransform, col Color32, opts WireframeOptions) int {
	if m == nil {
		return 0
	}
	t := cv.Target()
	pr := newProjector(cv.camera, t.width, t.height)
	mv := pr.view.Mul(world.Matrix())

	drawn := 0
	for _, tri := range m.Triangles() {
		cam := [3]math3d.Vec3{mv.MulPoint(tri.A), mv.MulPoint(tri.B), mv.MulPoint(tri.C)}
		var scr [3]Vec2
		visible := true
		for i, v := range cam {
			if scr[i], visible = pr.toScreen(v); !visible {
				break
			}
		}
		if !visible {
			continue
		}
		if opts.BackfaceCulling && screenArea(scr[0], scr[1], scr[2]) >= 0 {
			continue
		}
		pts, ok := screenPoints(scr)
		if !ok {
			continue
		}
		if opts.Filled {
			c := col
			if opts.DrawDepth {
				centroid := mesh.Triangle{A: cam[0], B: cam[1], C: cam[2]}.Centroid()
				c = col.Shade(cv.depthShade(centroid))
			}
			cv.Triangle(pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], c, true)
		} else {
			for i := range 3 {
				j := (i + 1) % 3
				a, b := col, col
				if opts.DrawDepth {
					a = col.Shade(cv.depthShade(cam[i]))
					b = col.Shade(cv.depthShade(cam[j]))
				}
				cv.LineGradient(pts[i][0], pts[i][1], pts[j][0], pts[j][1], a, b)
			}
		}
		drawn++
	}
	return drawn
}

// screenPoints floors projected vertices to pixels. It fails for vertices
// so close to the near plane that they leave the rasterizer's range.
func screenPoints(scr [3]Vec2) (pts [3][2]int, ok bool) {
	for i, s := range scr {
		x, y := math.Floor(s.X), math.Floor(s.Y)
		if !(math.Abs(x) <= raster.Limit && math.Abs(y) <= raster.Limit) {
			return pts, false
		}
		pts[i] = [2]int{int(x), int(y)}
	}
	return pts, true
}

// depthShade maps camera-space distance to brightness in [0, 1].
func (cv *Canvas) depthShade(v math3d.Vec3) float64 {
	return mathx.Clamp(1-v.Len()/cv.depthRange, 0, 1)
}

// screenArea returns the doubled signed area of a screen triangle with y
// pointing down; counter-clockwise world triangles facing the camera are
// negative.
func screenArea(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
