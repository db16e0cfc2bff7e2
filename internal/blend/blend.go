// Package blend provides the per-pixel compositing functions of the
// software canvas.
//
// All functions are pure: they map a destination pixel, a source colour, a
// mode and the pixel position to the resulting pixel. The position is only
// consulted by the stippled modes (Dither, Noise), which turn source alpha
// into a binary keep/discard decision.
package blend

// Mode represents a blending mode.
type Mode uint8

const (
	// ModeNormal is source-over alpha blending.
	ModeNormal Mode = iota
	// ModeAdd adds the alpha-weighted source to the destination.
	ModeAdd
	// ModeSubtract subtracts the alpha-weighted source from the destination.
	ModeSubtract
	// ModeDither keeps or discards the source by an ordered 4x4 threshold matrix.
	ModeDither
	// ModeNoise keeps or discards the source by a positional hash.
	ModeNoise
)

var modeNames = [...]string{
	ModeNormal:   "normal",
	ModeAdd:      "add",
	ModeSubtract: "subtract",
	ModeDither:   "dither",
	ModeNoise:    "noise",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

// Parse returns the mode with the given lower-case name.
func Parse(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return ModeNormal, false
}

// Pixel is a straight (non-premultiplied) RGBA8 pixel.
type Pixel struct {
	R, G, B, A uint8
}

// Blend composites src over dst at position (x, y).
// seed only affects ModeNoise.
func Blend(dst, src Pixel, mode Mode, x, y int, seed uint32) Pixel {
	switch mode {
	case ModeAdd:
		return add(dst, src)
	case ModeSubtract:
		return subtract(dst, src)
	case ModeDither:
		if !ditherKeep(src.A, x, y) {
			return dst
		}
		return Pixel{R: src.R, G: src.G, B: src.B, A: 255}
	case ModeNoise:
		if !noiseKeep(src.A, x, y, seed) {
			return dst
		}
		return Pixel{R: src.R, G: src.G, B: src.B, A: 255}
	default:
		return normal(dst, src)
	}
}

// Apply blends src into the 4-byte pixel at the start of px in place.
// px must hold at least 4 bytes.
func Apply(px []byte, src Pixel, mode Mode, x, y int, seed uint32) {
	_ = px[3]
	out := Blend(Pixel{R: px[0], G: px[1], B: px[2], A: px[3]}, src, mode, x, y, seed)
	px[0] = out.R
	px[1] = out.G
	px[2] = out.B
	px[3] = out.A
}

// normal computes src*a + dst*(1-a) per channel.
func normal(dst, src Pixel) Pixel {
	a := src.A
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}
	ia := inv255(a)
	return Pixel{
		R: lerp255(src.R, dst.R, a, ia),
		G: lerp255(src.G, dst.G, a, ia),
		B: lerp255(src.B, dst.B, a, ia),
		A: overAlpha(a, dst.A),
	}
}

func add(dst, src Pixel) Pixel {
	a := src.A
	if a == 0 {
		return dst
	}
	return Pixel{
		R: addClamp(dst.R, mulDiv255(src.R, a)),
		G: addClamp(dst.G, mulDiv255(src.G, a)),
		B: addClamp(dst.B, mulDiv255(src.B, a)),
		A: overAlpha(a, dst.A),
	}
}

func subtract(dst, src Pixel) Pixel {
	a := src.A
	if a == 0 {
		return dst
	}
	return Pixel{
		R: subClamp(dst.R, mulDiv255(src.R, a)),
		G: subClamp(dst.G, mulDiv255(src.G, a)),
		B: subClamp(dst.B, mulDiv255(src.B, a)),
		A: overAlpha(a, dst.A),
	}
}
