// Package text provides the pieces of the canvas text engine that do not
// touch pixel memory: the inline style-escape parser, glyph charsets and
// baking of fixed-cell glyph atlases from vector and bitmap fonts.
//
// A glyph atlas is a grid of equally sized cells. Cell i of a charset sits
// at column i%Columns, row i/Columns. A pixel is ink iff its red channel is
// non-zero; baking always produces 1-bit white-on-transparent cells.
//
// # Style escapes
//
// Styled strings embed two-character escapes:
//
//	$b   toggle bold
//	$w   toggle wave
//	$s   toggle drop shadow
//	$cN  set colour to palette entry N (hex digit 0-F)
//	$n   reset style and colour
//
// Anything else after '$' is kept as literal text.
package text
