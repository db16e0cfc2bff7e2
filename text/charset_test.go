package text

import "testing"

func TestASCII(t *testing.T) {
	if ASCII.Len() != 95 {
		t.Fatalf("Len = %d, want 95", ASCII.Len())
	}
	for _, r := range []rune{' ', 'A', '~'} {
		i, ok := ASCII.Index(r)
		if !ok || ASCII.Rune(i) != r {
			t.Errorf("round trip of %q failed: %d %v", r, i, ok)
		}
	}
	if _, ok := ASCII.Index('é'); ok {
		t.Error("é should not be in ASCII")
	}
	if got := FallbackIndex(ASCII); got != '?'-' ' {
		t.Errorf("FallbackIndex = %d", got)
	}
}

func TestCP437(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'A', 0x41},
		{'░', 0xb0},
		{'█', 0xdb},
		{'☺', 0x01},
	}
	for _, tt := range tests {
		got, ok := CP437.Index(tt.r)
		if !ok || got != tt.want {
			t.Errorf("Index(%q) = %#x, %v; want %#x", tt.r, got, ok, tt.want)
		}
		if CP437.Rune(tt.want) != tt.r {
			t.Errorf("Rune(%#x) = %q, want %q", tt.want, CP437.Rune(tt.want), tt.r)
		}
	}
	if _, ok := CP437.Index('€'); ok {
		t.Error("€ should not be in CP437")
	}
}

func TestCharsetByName(t *testing.T) {
	if cs, ok := CharsetByName("cp437"); !ok || cs != CP437 {
		t.Error("cp437 lookup failed")
	}
	if _, ok := CharsetByName("ebcdic"); ok {
		t.Error("unknown charset accepted")
	}
}
