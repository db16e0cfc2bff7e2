package blend

// bayer4 is the 4x4 ordered dither matrix, values 0..15.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DitherThreshold returns the alpha threshold at (x, y).
// A source pixel survives when its alpha is strictly greater.
// Thresholds span 8..248, so alpha 0 never draws and alpha 255 always does.
func DitherThreshold(x, y int) uint8 {
	return bayer4[y&3][x&3]*16 + 8
}

func ditherKeep(a uint8, x, y int) bool {
	return a > DitherThreshold(x, y)
}

// NoiseThreshold returns the pseudo-random alpha threshold at (x, y).
// The value depends only on position and seed.
func NoiseThreshold(x, y int, seed uint32) uint8 {
	return uint8(hash2(x, y, seed))
}

func noiseKeep(a uint8, x, y int, seed uint32) bool {
	if a == 255 {
		return true
	}
	return a > NoiseThreshold(x, y, seed)
}

// hash2 mixes a 2D integer position with a seed (lowbias32 finaliser).
func hash2(x, y int, seed uint32) uint32 {
	h := uint32(x)*0x8da6b343 ^ uint32(y)*0xd8163841 ^ seed*0xcb1ab31f
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}
