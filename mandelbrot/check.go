// Package mandelbrot holds the escape-time inner loop. Nothing else
// in this module needs to know how a single pixel is classified.
package mandelbrot

import "mandelcore/gocomplex"

// Check iterates z <- z^2 + c starting at z = c, returning the
// iteration at which |z|^2 first reaches escapeSq, or limit if it
// never does. The fused step derives both |z|^2 and z^2's real/imag
// parts from a single pair of squarings. Never panics: a value that
// overflows to +Inf passes the comparison and counts as escaped, while
// a NaN input fails every comparison and the loop runs to limit.
func Check(c gocomplex.Complex[float64], limit uint32, escapeSq float64) uint32 {
	re, im := c.Re, c.Im
	zre, zim := re, im

	for i := uint32(0); i < limit; i++ {
		zre2 := zre * zre
		zim2 := zim * zim
		if zre2+zim2 >= escapeSq {
			return i
		}
		zim = 2*zre*zim + im
		zre = zre2 - zim2 + re
	}
	return limit
}
