package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyphs is returned when a font has no glyph for any rune of the
	// requested charset.
	ErrNoGlyphs = errors.New("text: font has no glyphs for charset")

	// ErrInvalidColumns is returned for a non-positive atlas column count.
	ErrInvalidColumns = errors.New("text: atlas columns must be positive")
)
