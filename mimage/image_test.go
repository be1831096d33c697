package mimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"mandelcore/gradient"
)

func testPalette(limit uint32) gradient.Palette {
	return gradient.Default().MakePalette(limit)
}

func TestNewAllocatesZeroedBuffers(t *testing.T) {
	img := New(4, 3, testPalette(50))
	assert.Len(t, img.Pixels, 4*3*4)
	assert.Len(t, img.EscapeCounts, 4*3)
	for _, v := range img.EscapeCounts {
		assert.Zero(t, v)
	}
}

func TestRenderIsPureAndSetsAlphaOpaque(t *testing.T) {
	img := New(2, 2, testPalette(50))
	img.EscapeCounts[0] = 5
	img.EscapeCounts[3] = 50

	img.Render(50)
	first := append([]byte(nil), img.Pixels...)
	img.Render(50)
	second := img.Pixels

	assert.Equal(t, first, second)
	for i := 0; i < len(img.Pixels); i += 4 {
		assert.Equal(t, byte(255), img.Pixels[i+3])
	}
}

func TestPanZeroesUncoveredStrips(t *testing.T) {
	img := New(5, 5, testPalette(50))
	for i := range img.EscapeCounts {
		img.EscapeCounts[i] = uint32(i + 1)
	}

	img.Pan(2, 0)

	// the left two columns of every row must now be zero (uncovered).
	for y := 0; y < 5; y++ {
		for x := 0; x < 2; x++ {
			assert.Zero(t, img.EscapeCounts[y*5+x])
		}
	}
}

func TestPanRecyclesSurvivingPixels(t *testing.T) {
	img := New(4, 4, testPalette(50))
	for i := range img.EscapeCounts {
		img.EscapeCounts[i] = uint32(i + 1)
	}
	original := append([]uint32(nil), img.EscapeCounts...)

	img.Pan(1, 0)

	// pixel content should have moved by the flat shift amount for
	// everything that isn't inside the zeroed strip.
	shift := 1
	n := len(original)
	for i, v := range original {
		newIdx := (i + shift) % n
		x := newIdx % img.Width
		if x < 1 {
			continue // uncovered strip, expected to be zeroed instead
		}
		assert.Equal(t, v, img.EscapeCounts[newIdx])
	}
}
