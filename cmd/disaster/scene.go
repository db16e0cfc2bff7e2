package main

import (
	"fmt"
	"math"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/assets"
	"github.com/disasterengine/canvas/math3d"
	"github.com/disasterengine/canvas/mesh"
)

// scene exercises every canvas feature once per frame.
type scene struct {
	reg   *assets.Registry
	cube  *mesh.Mesh
	panel string // asset key of the nine-slice panel
	badge string // asset key of a sprite drawn off-screen
	t     float64
	count int
}

func newScene(reg *assets.Registry) *scene {
	return &scene{reg: reg, cube: mesh.Cube(2)}
}

// bake draws the panel and badge art into off-screen buffers once.
func (s *scene) bake(cv *canvas.Canvas) {
	cv.StartBuffer(9, 9)
	cv.Rect(0, 0, 9, 9, canvas.Palette[5], true)
	cv.Rect(0, 0, 9, 9, canvas.Palette[6], false)
	cv.Rect(3, 3, 3, 3, canvas.Palette[13], true)
	s.panel = cv.EndBufferAsset()

	cv.StartBuffer(16, 16)
	cv.Circle(7, 7, 7, canvas.Palette[9], true)
	cv.Circle(7, 7, 7, canvas.Palette[4], false)
	cv.Triangle(4, 10, 11, 10, 7, 3, canvas.Palette[10], true)
	s.badge = cv.CreateAssetFromBuffer()
	cv.EndBuffer()
}

func (s *scene) frame(cv *canvas.Canvas, dt float64) error {
	s.t += dt
	s.count++
	cv.Clear()
	if s.panel == "" {
		s.bake(cv)
	}
	w, h := cv.ScreenWidth(), cv.ScreenHeight()

	// backdrop gradient
	for y := 0; y < h; y += 4 {
		c := canvas.Palette[1].Lerp(canvas.Palette[2], float64(y)/float64(h))
		cv.Rect(0, y, w, 4, c, true)
	}

	// 3D
	orbit := s.t * 0.5
	cv.SetCameraLookAt(math3d.V3(6*math.Sin(orbit), 4, 6*math.Cos(orbit)), math3d.Vec3{})
	cv.SetFOV(50)
	world := canvas.IdentityWorld()
	world.Rotation = math3d.V3(0, s.t*40, 0)
	cv.Wireframe(s.cube, world, canvas.Palette[12], canvas.WireframeOptions{Filled: true, DrawDepth: true, BackfaceCulling: true})
	cv.Wireframe(s.cube, world, canvas.Palette[7], canvas.WireframeOptions{BackfaceCulling: true})
	cv.Line3D(math3d.Vec3{}, math3d.V3(0, 3, 0), canvas.Palette[8], canvas.Palette[11])
	cv.Model("models/ship.obj", world, canvas.Palette[6])
	if p, ok := cv.WorldToScreenPoint(math3d.V3(0, 1.5, 0)); ok {
		cv.Circle(int(p.X), int(p.Y), 2, canvas.Palette[8], true)
	}

	// primitives with each blend mode
	modes := []string{"normal", "add", "subtract", "dither", "noise"}
	for i, m := range modes {
		cv.SetBlendMode(m)
		x := 8 + i*26
		cv.Rect(x, 150, 22, 22, canvas.Palette[8+i].MulAlpha(0.6), true)
		cv.Circle(x+11, 161, 8, canvas.White.MulAlpha(0.5), true)
	}
	cv.SetBlendMode("normal")
	cv.LineGradient(8, 180, 136, 180, canvas.Palette[8], canvas.Palette[12])
	cv.Triangle(140, 150, 170, 176, 150, 180, canvas.Palette[11], false)

	// sprites
	badge := s.reg.PixelBuffer(s.badge)
	cv.DrawPixelBuffer(badge, 180, 150)
	cv.DrawPixelBufferRect(badge, 200, 150, canvas.Rect{W: -16, H: 16})
	spin := canvas.IdentityTransform()
	spin.Origin = canvas.Vec2{X: 8, Y: 8}
	spin.Rotation = s.t * 90
	spin.Scale = canvas.Vec2{X: 1.5, Y: 1.5}
	spin.Alpha = 0.5 + 0.5*math.Sin(s.t*2)
	cv.DrawPixelBufferTransformed(badge, 250, 160, canvas.Rect{W: 16, H: 16}, spin)
	cv.DrawPixelBuffer(s.reg.PixelBuffer("missing.png"), 280, 150)

	// UI panel with text
	cv.Offset(0, int(math.Round(2*math.Sin(s.t*3))))
	cv.NineSlice(s.reg.PixelBuffer(s.panel), canvas.Rect{X: 3, Y: 3, W: 3, H: 3}, canvas.Rect{X: 4, Y: 4, W: 200, H: 40})
	cv.TextStyled(10, 8, "$c8DISASTER$n $wengine$w $bcanvas$b")
	cv.TextStyled(10, 22, fmt.Sprintf("$sframe %d$s  $cbok$n", s.count))
	cv.Offset(0, 0)

	cv.ColorBuffer([]canvas.Color32{canvas.Palette[8], canvas.Palette[9], canvas.Palette[10], canvas.Palette[11]}, w-6, 4, 2)
	cv.EnqueueText(4, float64(h-20), canvas.Palette[7], "queued text")
	cv.EnqueueRect(float64(w-40), float64(h-20), 30, 12, canvas.Palette[14], false)
	cv.EnqueueLine(float64(w-40), float64(h-4), float64(w-10), float64(h-4), canvas.Palette[14])
	cv.EnqueueTexture(badge, float64(w-60), float64(h-24), canvas.Rect{W: 16, H: 16}, canvas.IdentityTransform())
	return nil
}
