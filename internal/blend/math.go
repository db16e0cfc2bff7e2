package blend

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
//
// For x = c*255 the result is exactly c, so fully opaque and fully
// transparent sources round-trip without drift.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// lerp255 returns (s*a + d*ia) / 255 where ia = 255 - a.
func lerp255(s, d, a, ia byte) byte {
	return byte(div255(uint16(s)*uint16(a) + uint16(d)*uint16(ia)))
}

// overAlpha is the source-over alpha: a + d*(1-a).
func overAlpha(a, d byte) byte {
	return addClamp(a, mulDiv255(d, inv255(a)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

// subClamp subtracts b from a, saturating at 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}
