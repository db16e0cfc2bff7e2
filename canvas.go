package canvas

import (
	"log/slog"

	"github.com/disasterengine/canvas/internal/blend"
	"github.com/disasterengine/canvas/internal/raster"
)

// AssetRegistry receives off-screen buffers captured with
// CreateAssetFromBuffer and resolves fonts for LoadFont.
type AssetRegistry interface {
	// Register stores b under a fresh key and returns the key.
	Register(b *PixelBuffer) string
	// Font returns the font at path.
	Font(path string) (*Font, error)
}

// Canvas is a software render target with a stack of off-screen buffers.
//
// Drawing is synchronous and single-threaded: every call mutates the
// active buffer before returning, in issue order. A Canvas is not safe for
// concurrent use.
type Canvas struct {
	stack []*PixelBuffer // stack[0] is the screen, top is the active target

	offX, offY int
	mode       BlendMode
	seed       uint32
	clearColor Color32

	font  *Font
	wave  Wave
	phase float64

	camera     Camera
	depthRange float64

	assets AssetRegistry
	queue  Queue
	logger *slog.Logger
}

// NewCanvas creates a canvas whose screen buffer is width x height.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cv := &Canvas{
		stack:      []*PixelBuffer{NewPixelBuffer(width, height)},
		seed:       o.seed,
		clearColor: o.clear,
		font:       o.font,
		wave:       o.wave,
		camera:     DefaultCamera(),
		depthRange: o.depthRange,
		assets:     o.assets,
		logger:     o.logger,
	}
	if cv.font == nil {
		cv.font = DefaultFont()
	}
	cv.Screen().Fill(cv.clearColor)
	return cv
}

func (cv *Canvas) log() *slog.Logger {
	if cv.logger != nil {
		return cv.logger
	}
	return Logger()
}

// Screen returns the primary buffer.
func (cv *Canvas) Screen() *PixelBuffer {
	return cv.stack[0]
}

// Target returns the active buffer.
func (cv *Canvas) Target() *PixelBuffer {
	return cv.stack[len(cv.stack)-1]
}

// InBuffer reports whether an off-screen buffer is active.
func (cv *Canvas) InBuffer() bool {
	return len(cv.stack) > 1
}

// Depth returns the number of off-screen buffers on the stack.
func (cv *Canvas) Depth() int {
	return len(cv.stack) - 1
}

// ScreenWidth returns the width of the screen buffer.
func (cv *Canvas) ScreenWidth() int { return cv.Screen().Width() }

// ScreenHeight returns the height of the screen buffer.
func (cv *Canvas) ScreenHeight() int { return cv.Screen().Height() }

// Queue returns the frame's deferred command queue.
func (cv *Canvas) Queue() *Queue {
	return &cv.queue
}

// SetAssets replaces the asset registry.
func (cv *Canvas) SetAssets(r AssetRegistry) {
	cv.assets = r
}

// Offset sets the global pixel offset applied while drawing to the screen.
func (cv *Canvas) Offset(x, y int) {
	cv.offX, cv.offY = x, y
}

// CurrentOffset returns the global pixel offset.
func (cv *Canvas) CurrentOffset() (x, y int) {
	return cv.offX, cv.offY
}

// Clear starts a frame: blend mode Normal, zero offset, every off-screen
// buffer discarded and the screen filled with the clear colour. Commands
// left undrained from the previous frame are dropped; when the screen was
// the active target a ClearCommand is queued in their place.
func (cv *Canvas) Clear() {
	onScreen := !cv.InBuffer()
	if !onScreen {
		cv.log().Debug("canvas: clear discarded off-screen buffers", "depth", cv.Depth())
	}
	clear(cv.stack[1:])
	cv.stack = cv.stack[:1]
	cv.mode = BlendNormal
	cv.offX, cv.offY = 0, 0
	cv.Screen().Fill(cv.clearColor)
	cv.queue.Reset()
	if onScreen {
		cv.queue.Push(ClearCommand{Color: cv.clearColor})
	}
}

// StartBuffer pushes a zeroed width x height buffer as the active target.
// Until the matching EndBuffer, drawing uses local coordinates with no
// global offset.
func (cv *Canvas) StartBuffer(width, height int) {
	cv.stack = append(cv.stack, NewPixelBuffer(width, height))
	cv.log().Debug("canvas: start buffer", "width", width, "height", height, "depth", cv.Depth())
}

// EndBuffer pops the active off-screen buffer and returns it. With only
// the screen on the stack it logs a warning and returns nil.
func (cv *Canvas) EndBuffer() *PixelBuffer {
	if !cv.InBuffer() {
		cv.log().Warn("canvas: EndBuffer without matching StartBuffer")
		return nil
	}
	top := cv.Target()
	cv.stack[len(cv.stack)-1] = nil
	cv.stack = cv.stack[:len(cv.stack)-1]
	cv.log().Debug("canvas: end buffer", "depth", cv.Depth())
	return top
}

// CreateAssetFromBuffer registers the active off-screen buffer with the
// asset registry and returns its key, leaving the stack unchanged. It
// returns "" when the screen is active or no registry is configured.
func (cv *Canvas) CreateAssetFromBuffer() string {
	if !cv.InBuffer() {
		cv.log().Warn("canvas: CreateAssetFromBuffer with no off-screen buffer")
		return ""
	}
	if cv.assets == nil {
		cv.log().Warn("canvas: CreateAssetFromBuffer without an asset registry")
		return ""
	}
	key := cv.assets.Register(cv.Target())
	cv.log().Info("canvas: buffer registered", "key", key,
		"width", cv.Target().Width(), "height", cv.Target().Height())
	return key
}

// EndBufferAsset registers the active off-screen buffer, pops it and
// returns the asset key.
func (cv *Canvas) EndBufferAsset() string {
	key := cv.CreateAssetFromBuffer()
	cv.EndBuffer()
	return key
}

// toTarget converts drawing coordinates to target pixel coordinates.
func (cv *Canvas) toTarget(x, y int) (int, int) {
	if cv.InBuffer() {
		return x, y
	}
	return x + cv.offX, y + cv.offY
}

// clip returns the active target's pixels in drawing coordinates.
func (cv *Canvas) clip() raster.Bounds {
	t := cv.Target()
	ox, oy := cv.toTarget(0, 0)
	return raster.Bounds{X0: -ox, Y0: -oy, X1: t.width - ox, Y1: t.height - oy}
}

// plot composites col at (x, y) in drawing coordinates.
func (cv *Canvas) plot(x, y int, col Color32) {
	x, y = cv.toTarget(x, y)
	cv.plotTarget(cv.Target(), x, y, col.pixel())
}

// plotTarget composites px at target pixel (x, y); out-of-bounds
// positions are dropped.
func (cv *Canvas) plotTarget(t *PixelBuffer, x, y int, px blend.Pixel) {
	if !t.inBounds(x, y) {
		return
	}
	blend.Apply(t.pix[t.offset(x, y):], px, cv.mode, x, y, cv.seed)
}
