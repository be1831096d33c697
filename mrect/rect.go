// Package mrect provides the axis-aligned RectRegion used by the
// engine's dirty-region scheduler: border/interior traversal and
// long-axis trisection, ported from the reference rect.rs geometry.
package mrect

// Point is a pixel coordinate in image space.
type Point struct {
	X, Y int32
}

// RectRegion is an axis-aligned rectangle in image pixel coordinates.
type RectRegion struct {
	X0, Y0, W, H int32
}

// New clamps negative widths/heights to zero, matching the Rust
// constructor's std::cmp::max(0, w) guard.
func New(x0, y0, w, h int32) RectRegion {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return RectRegion{X0: x0, Y0: y0, W: w, H: h}
}

// SquaredDistanceTo is 0 when (x, y) lies inside the rectangle,
// otherwise the squared Euclidean distance to the nearest edge or
// corner. Used as the dirty-region heap's priority key.
func (r RectRegion) SquaredDistanceTo(x, y int32) int64 {
	inside := x >= r.X0 && x-r.X0 < r.W && y >= r.Y0 && y-r.Y0 < r.H
	if inside {
		return 0
	}

	var dx int32
	switch {
	case x < r.X0:
		dx = r.X0 - x
	case x > r.X0+r.W:
		dx = x - r.X0 - r.W
	default:
		dx = 0
	}

	var dy int32
	switch {
	case y < r.Y0:
		dy = r.Y0 - y
	case y >= r.Y0+r.H:
		dy = y - r.Y0 - r.H
	default:
		dy = 0
	}

	return int64(dx)*int64(dx) + int64(dy)*int64(dy)
}

// Border returns every pixel on the 1-pixel-wide outer ring, in
// clockwise order starting top-left. Degenerate w=1 or h=1 regions
// yield their single line; w=0 or h=0 yields nothing.
func (r RectRegion) Border() []Point {
	if r.W == 0 || r.H == 0 {
		return nil
	}
	if r.W == 1 {
		pts := make([]Point, 0, r.H)
		for i := int32(0); i < r.H; i++ {
			pts = append(pts, Point{r.X0, r.Y0 + i})
		}
		return pts
	}
	if r.H == 1 {
		pts := make([]Point, 0, r.W)
		for i := int32(0); i < r.W; i++ {
			pts = append(pts, Point{r.X0 + i, r.Y0})
		}
		return pts
	}

	maxiW := r.W - 1
	maxiH := r.H - 1
	pts := make([]Point, 0, 2*(maxiW+maxiH))

	for i := int32(0); i < maxiW; i++ {
		pts = append(pts, Point{r.X0 + i, r.Y0})
	}
	for i := int32(0); i < maxiH; i++ {
		pts = append(pts, Point{r.X0 + maxiW, r.Y0 + i})
	}
	for i := int32(0); i < maxiW; i++ {
		pts = append(pts, Point{r.X0 + maxiW - i, r.Y0 + maxiH})
	}
	for i := int32(0); i < maxiH; i++ {
		pts = append(pts, Point{r.X0, r.Y0 + maxiH - i})
	}
	return pts
}

// InteriorLen reports how many pixels Interior() would yield without
// materializing them.
func (r RectRegion) InteriorLen() int {
	w := r.W - 2
	if w < 0 {
		w = 0
	}
	h := r.H - 2
	if h < 0 {
		h = 0
	}
	return int(w) * int(h)
}

// Interior returns a streaming iterator over the pixels strictly
// inside the border; empty when w<3 or h<3.
func (r RectRegion) Interior() RangeRect {
	w := r.W - 2
	if w < 0 {
		w = 0
	}
	h := r.H - 2
	if h < 0 {
		h = 0
	}
	return newRangeRect(r.X0+1, r.Y0+1, w, h)
}

// Trisect splits the interior along the longer axis into three
// sub-regions whose sizes differ by at most one. Returns ok=false
// when the interior is empty.
func (r RectRegion) Trisect() (a, b, c RectRegion, ok bool) {
	if r.InteriorLen() <= 0 {
		return RectRegion{}, RectRegion{}, RectRegion{}, false
	}

	if r.W >= r.H {
		w1 := (r.W - 2) / 3
		w2 := ((r.W - 2) - w1) / 2
		w3 := (r.W - 2) - w1 - w2
		a = New(r.X0+1, r.Y0+1, w1, r.H-2)
		b = New(r.X0+1+w1, r.Y0+1, w2, r.H-2)
		c = New(r.X0+1+w1+w2, r.Y0+1, w3, r.H-2)
	} else {
		h1 := (r.H - 2) / 3
		h2 := ((r.H - 2) - h1) / 2
		h3 := (r.H - 2) - h1 - h2
		a = New(r.X0+1, r.Y0+1, r.W-2, h1)
		b = New(r.X0+1, r.Y0+1+h1, r.W-2, h2)
		c = New(r.X0+1, r.Y0+1+h1+h2, r.W-2, h3)
	}
	return a, b, c, true
}

// RangeRect streams the (x, y) pairs of a w*h block in row-major
// order without allocating, the way Interior()'s common case (a large,
// fully-interior region destined for the fast fill path) needs.
type RangeRect struct {
	x0, y0, w int32
	len, i    int32
}

func newRangeRect(x0, y0, w, h int32) RangeRect {
	return RangeRect{x0: x0, y0: y0, w: w, len: w * h}
}

// Next advances the iterator, returning ok=false once exhausted.
func (r *RangeRect) Next() (x, y int32, ok bool) {
	if r.i >= r.len {
		return 0, 0, false
	}
	y = r.y0 + r.i/r.w
	x = r.x0 + r.i%r.w
	r.i++
	return x, y, true
}

// Len reports the total number of pixels this RangeRect will yield.
func (r RangeRect) Len() int {
	return int(r.len)
}
