// Package mimage owns the escape-count and pixel buffers and the
// torus-like pan that recycles pixels across a view shift.
package mimage

import "mandelcore/gradient"

// Image pairs a row-major escape-count buffer with the RGBA pixel
// buffer rendered from it through a Palette.
type Image struct {
	Width, Height int
	Palette       gradient.Palette
	EscapeCounts  []uint32
	Pixels        []byte
}

// New allocates a zero-filled image of the given size.
func New(w, h int, palette gradient.Palette) *Image {
	return &Image{
		Width:        w,
		Height:       h,
		Palette:      palette,
		EscapeCounts: make([]uint32, w*h),
		Pixels:       make([]byte, w*h*4),
	}
}

// Render writes pixels[i..i+4] = palette.Get(escape_counts[i], limit)
// for every pixel. Pure function of EscapeCounts + Palette + limit:
// calling it twice in a row yields identical buffers.
func (img *Image) Render(limit uint32) {
	for i, ec := range img.EscapeCounts {
		c := img.Palette.Get(ec, limit)
		j := i * 4
		img.Pixels[j] = c.R
		img.Pixels[j+1] = c.G
		img.Pixels[j+2] = c.B
		img.Pixels[j+3] = c.A
	}
}

// Pan rotates EscapeCounts within the single w*h ring by dx + dy*w
// positions (modular), then zeroes the freshly uncovered vertical
// strip of width |dx| and horizontal strip of height |dy|. Any pixel
// that wraps from one edge to the opposite is garbage, but it falls
// inside one of the zeroed (and later re-enqueued) strips.
func (img *Image) Pan(dx, dy int32) {
	n := len(img.EscapeCounts)
	if n == 0 {
		return
	}

	shift := int(dx) + int(dy)*img.Width
	shift = ((shift % n) + n) % n
	if shift != 0 {
		rotated := make([]uint32, n)
		for i, v := range img.EscapeCounts {
			rotated[(i+shift)%n] = v
		}
		img.EscapeCounts = rotated
	}

	img.zeroUncoveredStrips(dx, dy)
}

func (img *Image) zeroUncoveredStrips(dx, dy int32) {
	w, h := img.Width, img.Height

	if dx != 0 {
		x0, x1 := 0, int(dx)
		if dx < 0 {
			x0, x1 = w+int(dx), w
		}
		if x0 < 0 {
			x0 = 0
		}
		if x1 > w {
			x1 = w
		}
		for y := 0; y < h; y++ {
			row := y * w
			for x := x0; x < x1; x++ {
				img.EscapeCounts[row+x] = 0
			}
		}
	}

	if dy != 0 {
		y0, y1 := 0, int(dy)
		if dy < 0 {
			y0, y1 = h+int(dy), h
		}
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		for y := y0; y < y1; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				img.EscapeCounts[row+x] = 0
			}
		}
	}
}
