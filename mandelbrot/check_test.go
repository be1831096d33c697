package mandelbrot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"mandelcore/gocomplex"
)

func TestCheckOriginStaysInside(t *testing.T) {
	got := Check(gocomplex.New(0.0, 0.0), 100, 4.0)
	assert.Equal(t, uint32(100), got)
}

func TestCheckFarPointEscapesImmediately(t *testing.T) {
	got := Check(gocomplex.New(10.0, 10.0), 100, 4.0)
	assert.Equal(t, uint32(0), got)
}

func TestCheckKnownEscapeCount(t *testing.T) {
	// c = 1 escapes: z0=1, z1=2, |z1|^2=4 >= 4 at i=1.
	got := Check(gocomplex.New(1.0, 0.0), 100, 4.0)
	assert.Equal(t, uint32(1), got)
}

func TestCheckNeverPanicsOnOverflow(t *testing.T) {
	assert.NotPanics(t, func() {
		Check(gocomplex.New(1e300, 1e300), 50, 4.0)
	})
}

func TestCheckMonotonicUnderIncreasingLimit(t *testing.T) {
	c := gocomplex.New(-0.5, 0.3)
	low := Check(c, 20, 4.0)
	high := Check(c, 200, 4.0)
	assert.True(t, high == low || high >= 20, "escape count must not decrease with a larger cap")
}
