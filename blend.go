package canvas

import (
	"strings"

	"github.com/disasterengine/canvas/internal/blend"
)

// BlendMode selects how drawn pixels combine with the target.
type BlendMode = blend.Mode

// Blend modes.
const (
	BlendNormal   = blend.ModeNormal
	BlendAdd      = blend.ModeAdd
	BlendSubtract = blend.ModeSubtract
	BlendDither   = blend.ModeDither
	BlendNoise    = blend.ModeNoise
)

// ParseBlendMode looks up a mode by case-insensitive name:
// "normal", "add", "subtract", "dither" or "noise".
func ParseBlendMode(name string) (BlendMode, bool) {
	return blend.Parse(strings.ToLower(strings.TrimSpace(name)))
}

// SetBlendMode selects a mode by name. Unknown names keep the current
// mode and log a warning.
func (cv *Canvas) SetBlendMode(name string) {
	m, ok := ParseBlendMode(name)
	if !ok {
		cv.log().Warn("canvas: unknown blend mode", "name", name, "current", cv.mode)
		return
	}
	cv.mode = m
}

// SetBlend selects a mode. Invalid values keep the current mode.
func (cv *Canvas) SetBlend(m BlendMode) {
	if !m.Valid() {
		cv.log().Warn("canvas: invalid blend mode", "mode", uint8(m))
		return
	}
	cv.mode = m
}

// BlendMode returns the current mode.
func (cv *Canvas) BlendMode() BlendMode {
	return cv.mode
}
