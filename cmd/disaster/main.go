// Command disaster runs the canvas demo scene, in a window or headless.
//
// Headless mode renders -frames frames and writes the last one as a PNG
// scaled by -scale with nearest-neighbour sampling.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/assets"
	"github.com/disasterengine/canvas/present"
	"github.com/disasterengine/canvas/text"
)

func main() {
	var (
		width    = flag.Int("width", 320, "screen width in pixels")
		height   = flag.Int("height", 240, "screen height in pixels")
		scale    = flag.Int("scale", 2, "window pixels per screen pixel, 0 to fit the monitor")
		assetDir = flag.String("assets", "", "asset directory")
		font     = flag.String("font", "", "font asset path or builtin:proggy")
		charset  = flag.String("charset", "ascii", "image font atlas layout: ascii or cp437")
		clearHex = flag.String("clear", "", "clear colour as hex RRGGBB[AA], default palette entry 1")
		headless = flag.Bool("headless", false, "render without a window")
		output   = flag.String("output", "frame.png", "headless output file")
		frames   = flag.Int("frames", 1, "frames to render in headless mode")
		seed     = flag.Uint("seed", 0x9e3779b9, "noise blend seed")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var fsys fs.FS
	if *assetDir != "" {
		fsys = os.DirFS(*assetDir)
	}
	layout, err := fontLayout(*charset)
	if err != nil {
		log.Fatalf("disaster: %v", err)
	}
	reg := assets.New(fsys, assets.WithFontLayout(layout))
	cv := canvas.NewCanvas(*width, *height,
		canvas.WithAssets(reg),
		canvas.WithNoiseSeed(uint32(*seed)),
		canvas.WithClearColor(clearColor(*clearHex)),
	)
	if *font != "" {
		cv.LoadFont(*font)
	}
	sc := newScene(reg)

	if *headless {
		if err := renderHeadless(cv, sc, *frames, *scale, *output); err != nil {
			log.Fatalf("disaster: %v", err)
		}
		return
	}
	g := present.NewGame(cv, sc.frame, reg, *scale)
	if err := present.Run(g, "disaster"); err != nil {
		log.Fatalf("disaster: %v", err)
	}
}

// fontLayout returns the atlas grid for a named charset: 16 columns and
// as many rows as the charset has cells for.
func fontLayout(name string) (assets.FontLayout, error) {
	cs, ok := text.CharsetByName(name)
	if !ok {
		return assets.FontLayout{}, fmt.Errorf("unknown charset %q", name)
	}
	return assets.FontLayout{Columns: 16, Rows: (cs.Len() + 15) / 16, Charset: cs}, nil
}

func clearColor(hex string) canvas.Color32 {
	if hex == "" {
		return canvas.Palette[1]
	}
	return canvas.Hex(hex)
}

func renderHeadless(cv *canvas.Canvas, sc *scene, frames, scale int, path string) error {
	const dt = 1.0 / 60
	for range max(frames, 1) {
		cv.Tick(dt)
		if err := sc.frame(cv, dt); err != nil {
			return err
		}
		// No presenter: queued commands are dropped.
		cv.Queue().Reset()
	}
	src := cv.Screen().ToImage()
	scale = max(scale, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Frame saved to %s (%dx%d)\n", path, dst.Bounds().Dx(), dst.Bounds().Dy())
	return nil
}
