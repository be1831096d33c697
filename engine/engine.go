// Package engine owns the dirty-region scheduler and pixel buffers
// that turn an EngineSettings snapshot into rendered RGBA bytes,
// recomputing only the regions a settings change actually invalidated.
package engine

import (
	"math"

	"github.com/rs/zerolog"

	"mandelcore/gocomplex"
	"mandelcore/internal/fplog"
	"mandelcore/mandelbrot"
	"mandelcore/mimage"
	"mandelcore/mrect"
	"mandelcore/settings"
)

// escapeSq is |z|^2 >= 4 <=> |z| >= 2, the standard Mandelbrot bailout
// radius: any point that ever leaves the disc of radius 2 diverges.
const escapeSq = 4.0

var logger = zerolog.Nop()

// SetLogger routes engine diagnostics (oversized pans that exceed the
// pixel coordinate range) to l.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func init() {
	logger = fplog.New("engine").Level(zerolog.Disabled)
}

// Engine holds the live viewport and the pixel/escape-count buffers
// derived from it. It is not safe for concurrent use.
type Engine struct {
	center         gocomplex.Complex[float64]
	scale          float64
	iterationLimit uint32
	image          *mimage.Image
	dirty          *regionHeap
	zoomFocus      mrect.Point
}

// NewEngine builds an Engine from the current contents of s, fully
// dirtying the image so the first Compute calls render from scratch.
func NewEngine(s *settings.EngineSettings) *Engine {
	size := s.Size()
	g := s.Gradient()
	limit := s.IterationLimit()

	e := &Engine{
		center:         s.Center(),
		scale:          s.Scale(),
		iterationLimit: limit,
		image:          mimage.New(size.W, size.H, g.MakePalette(limit)),
		dirty:          newRegionHeap(),
	}
	e.zoomFocus = imageCenterPoint(size.W, size.H)
	e.dirty.SetFocus(e.zoomFocus)
	e.dirtifyAll()

	// The engine just consumed the settings' starting state; mark it
	// all latched so the next ApplySettings only sees real changes.
	s.LatchSize()
	s.LatchCenter()
	s.LatchScale()
	s.LatchIterationLimit()
	s.LatchZoomFocus()
	s.TakeDirtyGradient()

	return e
}

// ApplySettings reconciles the engine's buffers with whatever changed
// in s since the last call (or since NewEngine). A size change forces
// a full reallocation; a scale change or a growing iteration limit
// forces a full recompute (every pixel's complex coordinate, or the
// set of pixels that might still escape, changed); a shrinking limit
// needs no recompute at all, since Palette.Get reclassifies anything
// past the new cap as inside on the fly. A center-only change is a
// cheap pixel-buffer pan that recycles still-valid pixels; a
// gradient-only change just reflows the palette, since it never
// touches EscapeCounts.
func (e *Engine) ApplySettings(s *settings.EngineSettings) {
	if _, changed := s.LatchSize(); changed {
		size := s.Size()
		g := s.Gradient()
		e.center = s.Center()
		e.scale = s.Scale()
		e.iterationLimit = s.IterationLimit()
		e.image = mimage.New(size.W, size.H, g.MakePalette(e.iterationLimit))
		e.zoomFocus = imageCenterPoint(size.W, size.H)
		e.dirty = newRegionHeap()
		e.dirty.SetFocus(e.zoomFocus)
		e.dirtifyAll()

		s.LatchCenter()
		s.LatchScale()
		s.LatchZoomFocus()
		s.LatchIterationLimit()
		s.TakeDirtyGradient()
		return
	}

	oldCenter, centerChanged := s.LatchCenter()
	_, scaleChanged := s.LatchScale()
	_, focusChanged := s.LatchZoomFocus()
	oldLimit, limitChanged := s.LatchIterationLimit()
	_, gradientChanged := s.TakeDirtyGradient()

	limitGrew := limitChanged && s.IterationLimit() > oldLimit
	if limitChanged {
		e.iterationLimit = s.IterationLimit()
	}

	// A larger cap can reveal escapes past the old window, so it needs
	// a full recompute. A smaller cap does not: Palette.Get already
	// treats any escape count at or past the new cap as "inside", so
	// every previously-computed pixel renders correctly under the
	// tighter limit without touching the dirty queue.
	needsFullRecompute := scaleChanged || limitGrew

	switch {
	case needsFullRecompute:
		e.center = s.Center()
		e.scale = s.Scale()
		focus := imageCenterPoint(e.image.Width, e.image.Height)
		if newFocus := s.ZoomFocus(); focusChanged && newFocus != nil {
			focus = *newFocus
		}
		e.zoomFocus = focus
		e.dirty.SetFocus(focus)
		e.dirtifyAll()
	case centerChanged:
		e.pan(oldCenter, s.Center(), e.scale)
	}

	if gradientChanged || needsFullRecompute {
		g := s.Gradient()
		e.image.Palette = g.MakePalette(e.iterationLimit)
	}
}

// pan recycles the pixel buffer for a pure translation (same scale):
// it shifts EscapeCounts by the integer pixel delta between the old
// and new center and only re-dirties the strips the shift exposed. A
// delta outside the int32 range is logged and the pan is skipped,
// leaving the engine's state unchanged.
func (e *Engine) pan(oldCenter, newCenter gocomplex.Complex[float64], scale float64) {
	dxF := math.Round((newCenter.Re - oldCenter.Re) / scale)
	dyF := math.Round((oldCenter.Im - newCenter.Im) / scale)

	if !fitsInt32(dxF) || !fitsInt32(dyF) {
		logger.Warn().Float64("dx", dxF).Float64("dy", dyF).
			Msg("pan shift exceeds pixel coordinate range, skipping pan")
		return
	}

	dx, dy := int32(dxF), int32(dyF)
	e.center = newCenter
	e.zoomFocus = imageCenterPoint(e.image.Width, e.image.Height)
	e.dirty.SetFocus(e.zoomFocus)
	if dx == 0 && dy == 0 {
		return
	}

	e.image.Pan(-dx, -dy)
	e.dirty.ShiftAndReprioritize(-dx, -dy, e.zoomFocus)
	e.enqueueExposedStrips(dx, dy)
}

func fitsInt32(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}

// enqueueExposedStrips marks dirty the L-shaped region a pan by
// (dx, dy) pixels newly exposed: a full-height vertical strip on the
// leading horizontal edge, and a horizontal strip on the leading
// vertical edge that excludes the columns the vertical strip already
// covers, so the two pushes never overlap.
func (e *Engine) enqueueExposedStrips(dx, dy int32) {
	w := int32(e.image.Width)
	h := int32(e.image.Height)

	vw := abs32(dx)
	if vw > w {
		vw = w
	}
	vx0 := int32(0)
	if dx > 0 {
		vx0 = w - vw
	}
	if vw > 0 {
		e.dirty.Push(mrect.New(vx0, 0, vw, h))
	}

	hh := abs32(dy)
	if hh > h {
		hh = h
	}
	hy0 := int32(0)
	if dy > 0 {
		hy0 = h - hh
	}
	hx0, hw := int32(0), w
	if vw > 0 {
		hw = w - vw
		if dx <= 0 {
			hx0 = vw
		}
	}
	if hh > 0 && hw > 0 {
		e.dirty.Push(mrect.New(hx0, hy0, hw, hh))
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func imageCenterPoint(w, h int) mrect.Point {
	return mrect.Point{X: int32(w / 2), Y: int32(h / 2)}
}

func (e *Engine) dirtifyAll() {
	e.dirty.Clear()
	e.dirty.Push(mrect.New(0, 0, int32(e.image.Width), int32(e.image.Height)))
}

// Compute pops regions off the dirty queue, nearest the current zoom
// focus first, until it has spent workLimit units of work or the
// queue runs dry. A region whose border never escapes is filled solid
// without visiting its interior; otherwise the border is classified
// and the interior trisected for further work. Work is costed in
// pixels, not regions: a border pixel costs 1, and a fast-filled
// region's interior pixels cost 1 each, so a single large region can
// legitimately consume the whole budget in one pop. Returns the
// number of pixels actually classified, which may be fewer than
// workLimit if the queue ran dry mid-region.
func (e *Engine) Compute(workLimit int) int {
	workDone := 0
	for workDone < workLimit {
		region, ok := e.dirty.Pop()
		if !ok {
			break
		}

		borderLen, borderStaysInside := e.computeBorder(region)
		workDone += borderLen
		if borderStaysInside {
			e.fillInterior(region, e.iterationLimit)
			workDone += region.InteriorLen()
			continue
		}
		if a, b, c, ok := region.Trisect(); ok {
			e.dirty.Push(a)
			e.dirty.Push(b)
			e.dirty.Push(c)
		}
	}
	return workDone
}

// computeBorder classifies every in-bounds pixel on region's border,
// returning how many pixels it classified and whether every one of
// them reached the iteration limit without escaping — the condition
// under which the whole interior is guaranteed to stay inside too.
func (e *Engine) computeBorder(region mrect.RectRegion) (classified int, staysInside bool) {
	staysInside = true
	for _, p := range region.Border() {
		if !e.inBounds(p.X, p.Y) {
			continue
		}
		ec := mandelbrot.Check(e.pixelComplex(p.X, p.Y), e.iterationLimit, escapeSq)
		e.setEscapeCount(p.X, p.Y, ec)
		classified++
		if ec != e.iterationLimit {
			staysInside = false
		}
	}
	return classified, staysInside
}

func (e *Engine) fillInterior(region mrect.RectRegion, ec uint32) {
	it := region.Interior()
	for {
		x, y, ok := it.Next()
		if !ok {
			break
		}
		if e.inBounds(x, y) {
			e.setEscapeCount(x, y, ec)
		}
	}
}

func (e *Engine) pixelComplex(x, y int32) gocomplex.Complex[float64] {
	w := float64(e.image.Width)
	h := float64(e.image.Height)
	re := e.center.Re + e.scale*(float64(x)-w/2)
	im := e.center.Im - e.scale*(float64(y)-h/2)
	return gocomplex.New(re, im)
}

func (e *Engine) inBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < int32(e.image.Width) && y < int32(e.image.Height)
}

func (e *Engine) setEscapeCount(x, y int32, ec uint32) {
	e.image.EscapeCounts[int(y)*e.image.Width+int(x)] = ec
}

// Render reflows the pixel buffer from the current escape counts and
// palette. Idempotent: calling it without an intervening Compute or
// ApplySettings reproduces the same bytes.
func (e *Engine) Render() {
	e.image.Render(e.iterationLimit)
}

// ImageData returns the current RGBA pixel buffer. The slice aliases
// the engine's internal storage; callers must copy it before the next
// Compute/ApplySettings/Render call if they need a stable snapshot.
func (e *Engine) ImageData() []byte {
	return e.image.Pixels
}

// ImageBounds reports the current canvas dimensions in pixels.
func (e *Engine) ImageBounds() (w, h int) {
	return e.image.Width, e.image.Height
}

// Pending reports how many regions remain on the dirty queue.
func (e *Engine) Pending() int {
	return e.dirty.Len()
}

// Reset discards every escape count and re-dirties the whole image,
// as if the engine had just been constructed at its current viewport.
func (e *Engine) Reset() {
	for i := range e.image.EscapeCounts {
		e.image.EscapeCounts[i] = 0
	}
	e.zoomFocus = imageCenterPoint(e.image.Width, e.image.Height)
	e.dirty.SetFocus(e.zoomFocus)
	e.dirtifyAll()
}
