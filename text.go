package canvas

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/disasterengine/canvas/text"
)

// Wave configures the $w text effect: glyph i is lifted by
// round(Amplitude * sin(i*Frequency + phase)), where phase advances by
// Speed radians per second of Tick.
type Wave struct {
	Amplitude float64
	Frequency float64
	Speed     float64
}

// DefaultWave is a gentle two-pixel bob.
var DefaultWave = Wave{Amplitude: 2, Frequency: 0.6, Speed: 6}

// Tick advances the wave phase by dt seconds.
func (cv *Canvas) Tick(dt float64) {
	cv.phase = math.Mod(cv.phase+cv.wave.Speed*dt, 2*math.Pi)
}

func (cv *Canvas) waveOffset(i int) int {
	return int(math.Round(cv.wave.Amplitude * math.Sin(float64(i)*cv.wave.Frequency+cv.phase)))
}

// glyph draws one cell with its top-left at (x, y). Bold widens every
// ink run by one pixel to the right, writing each pixel once.
func (cv *Canvas) glyph(x, y int, r rune, col Color32, bold bool) {
	f := cv.font
	cx, cy := f.cell(r)
	w := f.cellW
	if bold {
		w++
	}
	for dy := range f.cellH {
		for dx := range w {
			on := dx < f.cellW && f.ink(cx+dx, cy+dy)
			if !on && bold && dx > 0 {
				on = f.ink(cx+dx-1, cy+dy)
			}
			if on {
				cv.plot(x+dx, y+dy, col)
			}
		}
	}
}

// Text draws s in col, one glyph cell per rune from (x, y). A newline
// returns to x on the next cell row.
func (cv *Canvas) Text(x, y int, col Color32, s string) {
	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx, cy = x, cy+cv.font.cellH
			continue
		}
		cv.glyph(cx, cy, r, col, false)
		cx += cv.font.cellW
	}
}

// TextStyled draws s with inline style escapes ($b bold, $w wave,
// $s shadow, $cN palette colour, $n reset). Escapes are never drawn;
// malformed ones are drawn as typed. Shadows are drawn before any glyph.
func (cv *Canvas) TextStyled(x, y int, s string) {
	spans := text.Parse(s)
	for _, pass := range [2]bool{true, false} {
		cx, cy := x, y
		for _, sp := range spans {
			col := DefaultTextColor
			if sp.Style.Color != text.DefaultColor {
				col = Palette[sp.Style.Color&0xf]
			}
			i := sp.Start
			for _, r := range sp.Text {
				if r == '\n' {
					cx, cy = x, cy+cv.font.cellH
					i++
					continue
				}
				oy := 0
				if sp.Style.Wave {
					oy = cv.waveOffset(i)
				}
				switch {
				case pass && sp.Style.Shadow:
					cv.glyph(cx+1, cy+oy+1, r, ShadowColor, sp.Style.Bold)
				case !pass:
					cv.glyph(cx, cy+oy, r, col, sp.Style.Bold)
				}
				cx += cv.font.cellW
				i++
			}
		}
	}
}

// MeasureText returns the pixel size of s drawn with Text.
func (cv *Canvas) MeasureText(s string) (w, h int) {
	lines := strings.Split(s, "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	return cols * cv.font.cellW, len(lines) * cv.font.cellH
}

// MeasureStyled returns the pixel size of s drawn with TextStyled,
// ignoring bold, shadow and wave overhang.
func (cv *Canvas) MeasureStyled(s string) (w, h int) {
	return cv.MeasureText(text.Strip(s))
}
