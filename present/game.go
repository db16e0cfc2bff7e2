// Package present shows a canvas in an ebiten window: the screen buffer
// is uploaded each frame with nearest-neighbour scaling, then the frame's
// queued commands are drawn on top in push order.
package present

import (
	"errors"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/mesh"
)

// ErrQuit ends the run loop without an error.
var ErrQuit = errors.New("present: quit")

// monitorFill is the share of the monitor, in percent, a fitted window
// may cover.
const monitorFill = 90

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// FrameFunc draws one frame into cv. dt is the frame time in seconds.
// Returning ErrQuit closes the window.
type FrameFunc func(cv *canvas.Canvas, dt float64) error

// MeshSource resolves model paths for queued ModelCommands.
type MeshSource interface {
	Mesh(path string) (*mesh.Mesh, error)
}

// Game implements ebiten.Game around a canvas.
type Game struct {
	cv     *canvas.Canvas
	frame  FrameFunc
	meshes MeshSource
	scale  int
	logger *slog.Logger

	screen   *ebiten.Image
	white    *ebiten.Image
	scratch  *ebiten.Image
	textures map[*canvas.PixelBuffer]*ebiten.Image
	failed   map[string]bool
}

// NewGame creates a game that runs frame every tick and presents cv at
// scale window pixels per canvas pixel. A scale of 0 or less picks the
// largest whole scale that fits the monitor when the game runs. meshes
// may be nil.
func NewGame(cv *canvas.Canvas, frame FrameFunc, meshes MeshSource, scale int) *Game {
	white := ebiten.NewImage(1, 1)
	white.Fill(canvas.White.NRGBA())
	return &Game{
		cv:       cv,
		frame:    frame,
		meshes:   meshes,
		scale:    max(scale, 0),
		white:    white,
		textures: make(map[*canvas.PixelBuffer]*ebiten.Image),
		failed:   make(map[string]bool),
	}
}

func (g *Game) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return canvas.Logger()
}

// Run opens a window titled title and blocks until it closes.
func Run(g *Game, title string) error {
	if g.scale == 0 {
		mw, mh := ebiten.Monitor().Size()
		g.scale = FitScale(g.cv.ScreenWidth(), g.cv.ScreenHeight(), mw*monitorFill/100, mh*monitorFill/100)
		g.log().Debug("present: fitted window scale", "scale", g.scale, "monitor_w", mw, "monitor_h", mh)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cv.ScreenWidth()*g.scale, g.cv.ScreenHeight()*g.scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Update runs the frame function.
func (g *Game) Update() error {
	if g.frame == nil {
		return nil
	}
	dt := 1 / float64(ebiten.TPS())
	g.cv.Tick(dt)
	return g.frame(g.cv, dt)
}

// Layout keeps a fixed logical size of the scaled canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cv.ScreenWidth() * g.scale, g.cv.ScreenHeight() * g.scale
}

// Draw uploads the screen buffer and then drains the command queue.
func (g *Game) Draw(screen *ebiten.Image) {
	buf := g.cv.Screen()
	if g.screen == nil || g.screen.Bounds().Dx() != buf.Width() || g.screen.Bounds().Dy() != buf.Height() {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(buf.Width(), buf.Height())
	}
	g.screen.WritePixels(buf.Pix())

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.screen, &op)

	g.cv.Queue().Drain(func(c canvas.Command) { g.execute(screen, c) })
}

func (g *Game) execute(dst *ebiten.Image, c canvas.Command) {
	s := float32(g.scale)
	switch c := c.(type) {
	case canvas.ClearCommand:
		// The uploaded screen already holds the cleared frame.
	case canvas.RectCommand:
		x, y, w, h := float32(c.X)*s, float32(c.Y)*s, float32(c.W)*s, float32(c.H)*s
		if c.Filled {
			vector.FillRect(dst, x, y, w, h, NRGBA(c.Color), false)
		} else {
			vector.StrokeRect(dst, x, y, w, h, s, NRGBA(c.Color), false)
		}
	case canvas.LineCommand:
		vector.StrokeLine(dst, float32(c.X0)*s, float32(c.Y0)*s, float32(c.X1)*s, float32(c.Y1)*s, s, NRGBA(c.Color), false)
	case canvas.Line3DCommand:
		a, b, ok := LineEnds(c.Camera, c.From, c.To, g.cv.ScreenWidth(), g.cv.ScreenHeight())
		if !ok {
			return
		}
		mid := c.FromColor.Lerp(c.ToColor, 0.5)
		vector.StrokeLine(dst, float32(a.X)*s, float32(a.Y)*s, float32(b.X)*s, float32(b.Y)*s, s, NRGBA(mid), false)
	case canvas.TextCommand:
		g.drawText(dst, c)
	case canvas.TextureCommand:
		g.drawTexture(dst, c)
	case canvas.ModelCommand:
		g.drawModel(dst, c)
	default:
		g.log().Warn("present: unknown command", "type", c.Type())
	}
}

func (g *Game) drawText(dst *ebiten.Image, c canvas.TextCommand) {
	b := dst.Bounds()
	if g.scratch == nil || g.scratch.Bounds() != b {
		if g.scratch != nil {
			g.scratch.Deallocate()
		}
		g.scratch = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.scratch.Clear()
	ebitenutil.DebugPrintAt(g.scratch, c.Text, 0, 0)
	cols, rows := textExtent(c.Text)
	region := g.scratch.SubImage(image.Rect(0, 0, cols*debugGlyphW, rows*debugGlyphH)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(c.X*float64(g.scale), c.Y*float64(g.scale))
	op.ColorScale.ScaleWithColor(NRGBA(c.Color))
	dst.DrawImage(region, &op)
}

func textExtent(s string) (cols, rows int) {
	rows, cur := 1, 0
	for _, r := range s {
		if r == '\n' {
			rows++
			cur = 0
			continue
		}
		cur++
		cols = max(cols, cur)
	}
	return cols, rows
}

// texture uploads buf, reusing one ebiten image per buffer.
func (g *Game) texture(buf *canvas.PixelBuffer) *ebiten.Image {
	img, ok := g.textures[buf]
	if !ok {
		img = ebiten.NewImage(buf.Width(), buf.Height())
		g.textures[buf] = img
	}
	img.WritePixels(buf.Pix())
	return img
}

func (g *Game) drawTexture(dst *ebiten.Image, c canvas.TextureCommand) {
	if c.Buffer.Width() == 0 || c.Buffer.Height() == 0 {
		return
	}
	sp := SpriteParams(c.X, c.Y, c.Source, c.Transform)
	if sp.W == 0 || sp.H == 0 || sp.Alpha == 0 {
		return
	}
	r := c.Source.Canon()
	src := g.texture(c.Buffer).SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	if sp.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(sp.W, 0)
	}
	if sp.FlipY {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, sp.H)
	}
	op.GeoM.Translate(-sp.OriginX, -sp.OriginY)
	op.GeoM.Scale(sp.ScaleX, sp.ScaleY)
	op.GeoM.Rotate(sp.Radians)
	op.GeoM.Translate(sp.X, sp.Y)
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.ColorScale.ScaleAlpha(float32(sp.Alpha))
	dst.DrawImage(src, &op)
}

func (g *Game) drawModel(dst *ebiten.Image, c canvas.ModelCommand) {
	if g.meshes == nil {
		return
	}
	m, err := g.meshes.Mesh(c.Path)
	if err != nil {
		if !g.failed[c.Path] {
			g.failed[c.Path] = true
			g.log().Warn("present: model unavailable", "path", c.Path, "err", err)
		}
		return
	}
	w, h := g.cv.ScreenWidth(), g.cv.ScreenHeight()
	tris := ProjectMesh(m, c.World, c.Camera, w, h)
	if len(tris) == 0 {
		return
	}
	s := float32(g.scale)
	verts := make([]ebiten.Vertex, 0, len(tris)*3)
	idx := make([]uint16, 0, len(tris)*3)
	for _, t := range tris {
		if len(verts)+3 > 0xffff {
			break
		}
		shade := c.Color.Shade(t.Light)
		for _, p := range t.P {
			idx = append(idx, uint16(len(verts)))
			verts = append(verts, ebiten.Vertex{
				DstX:   float32(p.X) * s,
				DstY:   float32(p.Y) * s,
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: float32(shade.R) / 255,
				ColorG: float32(shade.G) / 255,
				ColorB: float32(shade.B) / 255,
				ColorA: float32(shade.A) / 255,
			})
		}
	}
	dst.DrawTriangles(verts, idx, g.white, nil)
}
