package text

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// inkThreshold is the coverage at or above which an anti-aliased glyph
// pixel becomes ink.
const inkThreshold = 0x80

// Atlas is a baked fixed-cell glyph sheet.
type Atlas struct {
	Image   *image.RGBA
	CellW   int
	CellH   int
	Columns int
	Charset Charset
}

// Cell returns the atlas rectangle of cell i.
func (a *Atlas) Cell(i int) image.Rectangle {
	x := (i % a.Columns) * a.CellW
	y := (i / a.Columns) * a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH)
}

// Rows returns the number of cell rows needed for the charset.
func (a *Atlas) Rows() int {
	return rowsFor(a.Charset.Len(), a.Columns)
}

func rowsFor(n, cols int) int {
	return (n + cols - 1) / cols
}

func newAtlas(cs Charset, cols, cellW, cellH int) *Atlas {
	rows := rowsFor(cs.Len(), cols)
	return &Atlas{
		Image:   image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH)),
		CellW:   cellW,
		CellH:   cellH,
		Columns: cols,
		Charset: cs,
	}
}

// BakeFace renders every rune of cs that face supports into a new atlas.
// The cell is as wide as the widest advance and as tall as the face's
// line height.
func BakeFace(face font.Face, cs Charset, cols int) (*Atlas, error) {
	if cols <= 0 {
		return nil, ErrInvalidColumns
	}
	cellW, found := 0, false
	for i := range cs.Len() {
		adv, ok := face.GlyphAdvance(cs.Rune(i))
		if !ok {
			continue
		}
		found = true
		cellW = max(cellW, adv.Ceil())
	}
	if !found || cellW == 0 {
		return nil, ErrNoGlyphs
	}
	m := face.Metrics()
	cellH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	a := newAtlas(cs, cols, cellW, cellH)
	for i := range cs.Len() {
		r := cs.Rune(i)
		if _, ok := face.GlyphAdvance(r); !ok || r == ' ' {
			continue
		}
		cell := a.Cell(i)
		d := font.Drawer{
			Dst:  a.Image.SubImage(cell).(*image.RGBA),
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(cell.Min.X, cell.Min.Y+ascent),
		}
		d.DrawString(string(r))
	}
	binarize(a.Image)
	return a, nil
}

// Basic bakes the built-in 7x13 bitmap face over printable ASCII.
func Basic() *Atlas {
	a, err := BakeFace(basicfont.Face7x13, ASCII, 16)
	if err != nil {
		panic(fmt.Sprintf("text: baking basic font: %v", err))
	}
	return a
}

// LoadOpenType parses TrueType or OpenType data and bakes it at size
// pixels per em with full hinting, so outlines snap to the pixel grid,
// into a 1-bit atlas.
func LoadOpenType(data []byte, size float64, cs Charset, cols int) (*Atlas, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	defer face.Close()
	return BakeFace(face, cs, cols)
}

// binarize snaps every pixel to opaque white or transparent.
func binarize(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] >= inkThreshold {
			copy(img.Pix[i:i+4], []uint8{0xff, 0xff, 0xff, 0xff})
		} else {
			copy(img.Pix[i:i+4], []uint8{0, 0, 0, 0})
		}
	}
}

var ink = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
