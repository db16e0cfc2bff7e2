package text

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// cellDisplay is a drivers.Displayer that writes into an RGBA image,
// clipped to one atlas cell at a time.
type cellDisplay struct {
	img  *image.RGBA
	clip image.Rectangle

	// bounds of every pixel set since the last reset
	ink   image.Rectangle
	inked bool
}

var _ drivers.Displayer = (*cellDisplay)(nil)

func (d *cellDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *cellDisplay) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(d.clip) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
	px := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
	if d.inked {
		d.ink = d.ink.Union(px)
	} else {
		d.ink, d.inked = px, true
	}
}

func (d *cellDisplay) Display() error { return nil }

// BakeTinyfont renders a tinyfont bitmap font into an atlas. Cell height is
// the tight vertical extent of all glyphs in cs; cell width is the widest
// glyph advance.
func BakeTinyfont(f tinyfont.Fonter, cs Charset, cols int) (*Atlas, error) {
	if cols <= 0 {
		return nil, ErrInvalidColumns
	}
	// Measure on a scratch canvas with plenty of room above the baseline.
	const lead = 32
	scratch := &cellDisplay{img: image.NewRGBA(image.Rect(0, 0, lead*4, lead*3))}
	scratch.clip = scratch.img.Bounds()
	cellW := 0
	for i := range cs.Len() {
		r := cs.Rune(i)
		if r == 0 {
			continue
		}
		_, outbox := tinyfont.LineWidth(f, string(r))
		cellW = max(cellW, int(outbox))
		tinyfont.WriteLine(scratch, f, lead, lead, string(r), ink)
	}
	if !scratch.inked || cellW == 0 {
		return nil, ErrNoGlyphs
	}
	top := scratch.ink.Min.Y
	cellH := scratch.ink.Dy()
	baseline := lead - top

	a := newAtlas(cs, cols, cellW, cellH)
	d := &cellDisplay{img: a.Image}
	for i := range cs.Len() {
		r := cs.Rune(i)
		if r == 0 || r == ' ' {
			continue
		}
		d.clip = a.Cell(i)
		tinyfont.WriteLine(d, f, int16(d.clip.Min.X), int16(d.clip.Min.Y+baseline), string(r), ink)
	}
	return a, nil
}

// Proggy bakes the ProggyTiny 8pt bitmap font over printable ASCII.
func Proggy() *Atlas {
	a, err := BakeTinyfont(&proggy.TinySZ8pt7b, ASCII, 16)
	if err != nil {
		panic("text: baking proggy font: " + err.Error())
	}
	return a
}
