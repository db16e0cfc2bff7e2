package canvas

import "log/slog"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	reg := assets.New(os.DirFS("assets"))
//	c := canvas.NewCanvas(320, 240, canvas.WithAssets(reg), canvas.WithNoiseSeed(7))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	logger     *slog.Logger
	assets     AssetRegistry
	font       *Font
	clear      Color32
	seed       uint32
	wave       Wave
	depthRange float64
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		clear:      Color32{A: 255},
		seed:       0x9e3779b9,
		wave:       DefaultWave,
		depthRange: 50,
	}
}

// WithLogger sets a logger for this canvas only. Without it the canvas
// uses the package logger at the time of each call.
func WithLogger(l *slog.Logger) CanvasOption {
	return func(o *canvasOptions) {
		o.logger = l
	}
}

// WithAssets connects an asset registry, enabling CreateAssetFromBuffer.
func WithAssets(r AssetRegistry) CanvasOption {
	return func(o *canvasOptions) {
		o.assets = r
	}
}

// WithFont sets the initial font. The default is the built-in 7x13 face.
func WithFont(f *Font) CanvasOption {
	return func(o *canvasOptions) {
		o.font = f
	}
}

// WithClearColor sets the colour Clear fills the screen with.
// The default is opaque black.
func WithClearColor(c Color32) CanvasOption {
	return func(o *canvasOptions) {
		o.clear = c
	}
}

// WithNoiseSeed sets the seed of the Noise blend mode hash.
func WithNoiseSeed(seed uint32) CanvasOption {
	return func(o *canvasOptions) {
		o.seed = seed
	}
}

// WithWave sets the parameters of the $w text effect.
func WithWave(w Wave) CanvasOption {
	return func(o *canvasOptions) {
		o.wave = w
	}
}

// WithDepthRange sets the camera distance at which wireframe depth shading
// reaches black. Non-positive values are ignored.
func WithDepthRange(d float64) CanvasOption {
	return func(o *canvasOptions) {
		if d > 0 {
			o.depthRange = d
		}
	}
}
