package text

import "golang.org/x/text/encoding/charmap"

// Charset maps runes to atlas cell indices.
type Charset interface {
	// Index returns the cell of r, or false if r has no cell.
	Index(r rune) (int, bool)
	// Rune returns the rune drawn in cell i.
	Rune(i int) rune
	// Len returns the number of cells.
	Len() int
}

// FallbackIndex returns the cell used for runes outside cs: '?' when
// available, otherwise cell 0.
func FallbackIndex(cs Charset) int {
	if i, ok := cs.Index('?'); ok {
		return i
	}
	return 0
}

type asciiCharset struct{}

// ASCII is printable ASCII, ' ' (cell 0) through '~' (cell 94).
var ASCII Charset = asciiCharset{}

func (asciiCharset) Index(r rune) (int, bool) {
	if r < ' ' || r > '~' {
		return 0, false
	}
	return int(r - ' '), true
}

func (asciiCharset) Rune(i int) rune { return rune(' ' + i) }
func (asciiCharset) Len() int        { return '~' - ' ' + 1 }

type cp437Charset struct{}

// CP437 is the 256-cell IBM PC code page layout used by most tile-sheet
// fonts; cell i holds the glyph of byte i.
var CP437 Charset = cp437Charset{}

func (cp437Charset) Index(r rune) (int, bool) {
	if r == 0 {
		return 0, true
	}
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return int(b), true
}

func (cp437Charset) Rune(i int) rune {
	if i <= 0 || i > 255 {
		return 0
	}
	return charmap.CodePage437.DecodeByte(byte(i))
}

func (cp437Charset) Len() int { return 256 }

// CharsetByName returns "ascii" or "cp437".
func CharsetByName(name string) (Charset, bool) {
	switch name {
	case "ascii", "":
		return ASCII, true
	case "cp437":
		return CP437, true
	}
	return nil, false
}
