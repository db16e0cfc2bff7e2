package canvas

import (
	"fmt"
	"sync"

	"github.com/disasterengine/canvas/text"
)

// Font is a fixed-cell bitmap font: an atlas of equally sized glyph cells
// laid out row-major in charset order. A pixel is ink iff its red channel
// is non-zero.
type Font struct {
	atlas    *PixelBuffer
	cellW    int
	cellH    int
	cols     int
	charset  text.Charset
	fallback int
}

// NewFont wraps an atlas. The number of columns is atlas width / cellW.
func NewFont(atlas *PixelBuffer, cellW, cellH int, cs text.Charset) (*Font, error) {
	if atlas == nil || cellW <= 0 || cellH <= 0 || atlas.width < cellW || atlas.height < cellH {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, cellW, cellH)
	}
	if cs == nil {
		cs = text.ASCII
	}
	return &Font{
		atlas:    atlas,
		cellW:    cellW,
		cellH:    cellH,
		cols:     atlas.width / cellW,
		charset:  cs,
		fallback: text.FallbackIndex(cs),
	}, nil
}

// FontFromAtlas converts a baked text atlas.
func FontFromAtlas(a *text.Atlas) *Font {
	return &Font{
		atlas:    FromImage(a.Image),
		cellW:    a.CellW,
		cellH:    a.CellH,
		cols:     a.Columns,
		charset:  a.Charset,
		fallback: text.FallbackIndex(a.Charset),
	}
}

var (
	defaultFont = sync.OnceValue(func() *Font { return FontFromAtlas(text.Basic()) })
	proggyFont  = sync.OnceValue(func() *Font { return FontFromAtlas(text.Proggy()) })
)

// DefaultFont returns the shared built-in 7x13 font.
func DefaultFont() *Font { return defaultFont() }

// ProggyFont returns the shared built-in ProggyTiny font.
func ProggyFont() *Font { return proggyFont() }

// CellWidth returns the glyph cell width in pixels.
func (f *Font) CellWidth() int { return f.cellW }

// CellHeight returns the glyph cell height in pixels.
func (f *Font) CellHeight() int { return f.cellH }

// Charset returns the rune to cell mapping.
func (f *Font) Charset() text.Charset { return f.charset }

// Atlas returns the glyph sheet.
func (f *Font) Atlas() *PixelBuffer { return f.atlas }

// cell returns the atlas position of r's glyph cell.
func (f *Font) cell(r rune) (x, y int) {
	i, ok := f.charset.Index(r)
	if !ok {
		i = f.fallback
	}
	return (i % f.cols) * f.cellW, (i / f.cols) * f.cellH
}

// ink reports whether atlas pixel (x, y) is set.
func (f *Font) ink(x, y int) bool {
	if !f.atlas.inBounds(x, y) {
		return false
	}
	return f.atlas.pix[f.atlas.offset(x, y)] > 0
}

// SetFont selects the font for Text and TextStyled; nil selects the
// default font.
func (cv *Canvas) SetFont(f *Font) {
	if f == nil {
		f = DefaultFont()
	}
	cv.font = f
}

// Font returns the current font.
func (cv *Canvas) Font() *Font {
	return cv.font
}

// LoadFont selects the font at path from the asset registry. On failure
// the current font is kept and a warning logged.
func (cv *Canvas) LoadFont(path string) {
	if cv.assets == nil {
		cv.log().Warn("canvas: LoadFont without an asset registry", "path", path)
		return
	}
	f, err := cv.assets.Font(path)
	if err != nil {
		cv.log().Warn("canvas: load font", "path", path, "err", err)
		return
	}
	cv.font = f
}

// FontWidth returns the cell width of the current font.
func (cv *Canvas) FontWidth() int { return cv.font.cellW }

// FontHeight returns the cell height of the current font.
func (cv *Canvas) FontHeight() int { return cv.font.cellH }
