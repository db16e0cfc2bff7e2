package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Sentinel errors for pixel buffer construction.
var (
	// ErrInvalidDimensions is returned for a non-positive width or a pixel
	// slice that is not a whole number of rows.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrDataMismatch is returned when pixel data length does not match
	// the requested dimensions.
	ErrDataMismatch = errors.New("canvas: pixel data length mismatch")
)

// PixelBuffer is a flat RGBA8 pixel array. len(Pix()) is always
// Width()*Height()*4.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel, row-major
}

// NewPixelBuffer creates a zeroed (transparent black) buffer.
// Non-positive sizes give an empty 0x0 buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		return &PixelBuffer{}
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// NewPixelBufferFromPix wraps pix without copying. Height is derived from
// width and the slice length.
func NewPixelBufferFromPix(pix []uint8, width int) (*PixelBuffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidDimensions, width)
	}
	if len(pix)%(width*4) != 0 {
		return nil, fmt.Errorf("%w: %d bytes for width %d", ErrDataMismatch, len(pix), width)
	}
	return &PixelBuffer{width: width, height: len(pix) / (width * 4), pix: pix}, nil
}

// NewPixelBufferFromColors builds a buffer from row-major colours.
func NewPixelBufferFromColors(colors []Color32, width int) (*PixelBuffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidDimensions, width)
	}
	if len(colors)%width != 0 {
		return nil, fmt.Errorf("%w: %d colours for width %d", ErrDataMismatch, len(colors), width)
	}
	b := NewPixelBuffer(width, len(colors)/width)
	for i, c := range colors {
		copy(b.pix[i*4:i*4+4], []uint8{c.R, c.G, c.B, c.A})
	}
	return b, nil
}

// FromImage copies img into a new buffer with straight alpha.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	b := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if src, ok := img.(*image.NRGBA); ok {
		for y := range b.height {
			copy(b.RowPix(y), src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return b
	}
	for y := range b.height {
		for x := range b.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			b.SetPixel(x, y, Color32{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return b
}

// Placeholder returns the 2x2 magenta and black checker drawn for missing
// assets.
func Placeholder() *PixelBuffer {
	b := NewPixelBuffer(2, 2)
	b.SetPixel(0, 0, Magenta)
	b.SetPixel(1, 1, Magenta)
	b.SetPixel(1, 0, Color32{A: 255})
	b.SetPixel(0, 1, Color32{A: 255})
	return b
}

// Width returns the width of the buffer.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the raw RGBA bytes.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// offset returns the byte index of (x, y); the point must be in bounds.
func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.width + x) * 4
}

// SetPixel overwrites one pixel without blending.
// Out-of-bounds writes are ignored.
func (b *PixelBuffer) SetPixel(x, y int, c Color32) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// GetPixel returns one pixel, or transparent black outside the buffer.
func (b *PixelBuffer) GetPixel(x, y int) Color32 {
	if !b.inBounds(x, y) {
		return Color32{}
	}
	i := b.offset(x, y)
	return Color32{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Fill overwrites every pixel with c.
func (b *PixelBuffer) Fill(c Color32) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// RowPix returns the bytes of row y, or nil outside the buffer.
func (b *PixelBuffer) RowPix(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.width * 4
	return b.pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// CopyRect copies the src region r to (dx, dy) in b without blending,
// clipped to both buffers. It returns the number of pixels copied.
func (b *PixelBuffer) CopyRect(src *PixelBuffer, r Rect, dx, dy int) int {
	r = r.Canon()
	// clip against the source
	if r.X < 0 {
		dx -= r.X
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		dy -= r.Y
		r.H += r.Y
		r.Y = 0
	}
	r.W = min(r.W, src.width-r.X)
	r.H = min(r.H, src.height-r.Y)
	// clip against the destination
	if dx < 0 {
		r.X -= dx
		r.W += dx
		dx = 0
	}
	if dy < 0 {
		r.Y -= dy
		r.H += dy
		dy = 0
	}
	r.W = min(r.W, b.width-dx)
	r.H = min(r.H, b.height-dy)
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	n := r.W * 4
	for row := range r.H {
		s := src.RowPix(r.Y + row)[r.X*4:]
		d := b.RowPix(dy + row)[dx*4:]
		copy(d[:n], s[:n])
	}
	return r.W * r.H
}

// ToImage converts the buffer to an image.NRGBA sharing no memory.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// EncodePNG writes the buffer as PNG.
func (b *PixelBuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the buffer to a PNG file.
func (b *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	c := b.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
