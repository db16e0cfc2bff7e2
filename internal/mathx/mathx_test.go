package mathx

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"at lo", 0, 0, 10, 0},
		{"at hi", 10, 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0},
		{0.6, 1},
		{127.5, 128},
		{254.6, 255},
		{300, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp255(tt.in); got != tt.want {
			t.Errorf("Clamp255(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(3) != 3 || Abs(-2.5) != 2.5 {
		t.Error("Abs returned wrong magnitude")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 255, 0.5); got != 127.5 {
		t.Errorf("Lerp(0, 255, 0.5) = %v, want 127.5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10, 20, 1) = %v, want 20", got)
	}
}
