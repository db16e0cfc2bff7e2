package canvas

import (
	"errors"
	"fmt"
)

type pt struct{ x, y int }

// inked returns the set of non-transparent pixels of b.
func inked(b *PixelBuffer) map[pt]bool {
	s := make(map[pt]bool)
	for y := range b.Height() {
		for x := range b.Width() {
			if b.GetPixel(x, y).A != 0 {
				s[pt{x, y}] = true
			}
		}
	}
	return s
}

func isSubset(sub, super map[pt]bool) bool {
	for p := range sub {
		if !super[p] {
			return false
		}
	}
	return true
}

func newTestCanvas(w, h int, opts ...CanvasOption) *Canvas {
	return NewCanvas(w, h, append([]CanvasOption{WithClearColor(Transparent)}, opts...)...)
}

// checker returns a w x h buffer where every pixel has a distinct colour.
func checker(w, h int) *PixelBuffer {
	b := NewPixelBuffer(w, h)
	for y := range h {
		for x := range w {
			b.SetPixel(x, y, Color32{R: uint8(10 + x*20), G: uint8(10 + y*20), B: uint8(x ^ y), A: 255})
		}
	}
	return b
}

type memRegistry struct {
	bufs  map[string]*PixelBuffer
	fonts map[string]*Font
}

func newMemRegistry() *memRegistry {
	return &memRegistry{bufs: map[string]*PixelBuffer{}, fonts: map[string]*Font{}}
}

func (m *memRegistry) Register(b *PixelBuffer) string {
	k := fmt.Sprintf("buffer-%d", len(m.bufs))
	m.bufs[k] = b
	return k
}

func (m *memRegistry) Font(path string) (*Font, error) {
	f, ok := m.fonts[path]
	if !ok {
		return nil, errors.New("font not found")
	}
	return f, nil
}
