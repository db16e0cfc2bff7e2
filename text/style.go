package text

import "strings"

// PaletteSize is the number of colours addressable with $cN.
const PaletteSize = 16

// DefaultColor marks a span drawn in the default text colour.
const DefaultColor = -1

// Style is the set of toggles in effect for a span.
type Style struct {
	Bold   bool
	Wave   bool
	Shadow bool
	Color  int // palette index, or DefaultColor
}

// Reset is the style at the start of a string and after $n.
var Reset = Style{Color: DefaultColor}

// Span is a run of literal text sharing one style.
type Span struct {
	Text  string
	Style Style
	// Start is the index of the span's first rune among all rendered
	// runes of the string.
	Start int
}

// Parse splits s into styled spans. Escape sequences are consumed and
// never appear in span text; malformed escapes stay literal.
// Empty spans are omitted.
func Parse(s string) []Span {
	var (
		spans []Span
		cur   strings.Builder
		style = Reset
		start int
		count int
	)
	flush := func() {
		if cur.Len() > 0 {
			spans = append(spans, Span{Text: cur.String(), Style: style, Start: start})
			cur.Reset()
		}
		start = count
	}
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '$' && i+1 < len(rs) {
			next := style
			n := 0
			switch rs[i+1] {
			case 'b':
				next.Bold, n = !next.Bold, 2
			case 'w':
				next.Wave, n = !next.Wave, 2
			case 's':
				next.Shadow, n = !next.Shadow, 2
			case 'n':
				next, n = Reset, 2
			case 'c':
				if i+2 < len(rs) {
					if v, ok := hexDigit(rs[i+2]); ok {
						next.Color, n = v, 3
					}
				}
			}
			if n > 0 {
				flush()
				style = next
				i += n - 1
				continue
			}
		}
		cur.WriteRune(r)
		count++
	}
	flush()
	return spans
}

// Strip returns s with every escape removed.
func Strip(s string) string {
	var b strings.Builder
	for _, sp := range Parse(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}
