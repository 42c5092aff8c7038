package mandel

import "image/color"

// IterationLimit is the escape iteration cap of the default configuration.
const IterationLimit = 256

// Escape returns the escape iteration of c under z = z*z + c, counted from
// z = 0, or IterationLimit when the orbit stays within |z| < 2.
func Escape(c complex128) int {
	return EscapeLimit(c, IterationLimit)
}

// EscapeLimit is Escape with an explicit iteration cap.
func EscapeLimit(c complex128, limit int) int {
	var z complex128
	i := 0
	for ; i < limit && real(z)*real(z)+imag(z)*imag(z) < 4; i++ {
		z = z*z + c
	}
	return i
}

// ToColor maps an escape iteration to a red ramp; points in the set are black.
func ToColor(k int) color.RGBA {
	return ToColorLimit(k, IterationLimit)
}

// ToColorLimit is ToColor for a configuration with a different iteration cap.
// The ramp saturates at full red.
func ToColorLimit(k, limit int) color.RGBA {
	if k >= limit {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(min(10*k, 255)), A: 255}
}
