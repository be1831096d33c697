// Package settings owns EngineSettings: the canonical, serializable
// viewport + gradient + iteration cap the UI mutates and the engine
// reconciles every frame. Every mutator is pure and value-returning —
// EngineSettings is a plain value, never shared, per the "treat it as
// a plain value" design note.
package settings

import (
	"fmt"

	"github.com/rs/zerolog"

	"mandelcore/gocomplex"
	"mandelcore/gradient"
	"mandelcore/internal/fplog"
	"mandelcore/mcolor"
	"mandelcore/mrect"
	"mandelcore/ratchet"
)

var logger = zerolog.Nop()

// SetLogger routes settings package diagnostics (malformed restore
// input) to l. The zero value disables logging entirely.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func init() {
	logger = fplog.New("settings").Level(zerolog.Disabled)
}

// Size is the canvas size in pixels. Not serialized.
type Size struct {
	W, H int
}

// EngineSettings is the value an external UI mutates and hands to the
// engine each frame. Geometric fields are Ratchets so the engine can
// tell exactly what changed; Gradient is Pristine because it is
// compared against a single prior snapshot, not a before/after pair.
type EngineSettings struct {
	size           ratchet.Ratchet[Size]
	center         ratchet.Ratchet[gocomplex.Complex[float64]]
	scale          ratchet.Ratchet[float64]
	iterationLimit ratchet.Ratchet[uint32]
	zoomFocus      ratchet.Ratchet[*mrect.Point]
	gradient       ratchet.Pristine[gradient.Gradient]
}

// DefaultSettings returns the sane starting view: a 1x1 canvas, scale
// 1/128, center at the origin, a 50-iteration cap, and the default
// gradient.
func DefaultSettings() EngineSettings {
	return EngineSettings{
		size:           ratchet.New(Size{W: 1, H: 1}),
		center:         ratchet.New(gocomplex.New(0.0, 0.0)),
		scale:          ratchet.New(1.0 / 128.0),
		iterationLimit: ratchet.New(uint32(50)),
		zoomFocus:      ratchet.New[*mrect.Point](nil),
		gradient:       ratchet.NewPristine(gradient.Default()),
	}
}

// --- read accessors ---

func (s EngineSettings) Size() Size                                 { return s.size.Current() }
func (s EngineSettings) Center() gocomplex.Complex[float64]         { return s.center.Current() }
func (s EngineSettings) Scale() float64                             { return s.scale.Current() }
func (s EngineSettings) IterationLimit() uint32                     { return s.iterationLimit.Current() }
func (s EngineSettings) ZoomFocus() *mrect.Point                    { return s.zoomFocus.Current() }
func (s EngineSettings) Gradient() gradient.Gradient                { return s.gradient.Get() }

// --- engine-facing latch surface ---
//
// These expose the underlying Ratchet/Pristine transitions to the
// engine package, which cannot reach the unexported fields directly.
// They are not meant for UI callers.

func (s *EngineSettings) LatchSize() (old Size, changed bool) { return s.size.Latch() }

func (s *EngineSettings) LatchCenter() (old gocomplex.Complex[float64], changed bool) {
	return s.center.Latch()
}

func (s *EngineSettings) LatchScale() (old float64, changed bool) { return s.scale.Latch() }

func (s *EngineSettings) LatchIterationLimit() (old uint32, changed bool) {
	return s.iterationLimit.Latch()
}

func (s *EngineSettings) LatchZoomFocus() (old *mrect.Point, changed bool) {
	return s.zoomFocus.Latch()
}

func (s *EngineSettings) TakeDirtyGradient() (gradient.Gradient, bool) {
	return s.gradient.TakeDirty()
}

// --- geometric builders (pure, value-returning) ---

// SetSize queues a new canvas size.
func (s EngineSettings) SetSize(w, h int) EngineSettings {
	s.size.Set(Size{W: w, H: h})
	return s
}

// Pan shifts center by (dx, -dy) scaled into complex-plane units; the
// pixel y-axis is inverted relative to the imaginary axis.
func (s EngineSettings) Pan(dx, dy float64) EngineSettings {
	delta := gocomplex.New(dx, -dy).Scale(s.scale.Current())
	s.center.Set(s.center.Current().Add(delta))
	return s
}

// ZoomIn divides scale by f (f>1) and clears ZoomFocus: a
// non-click zoom should bias the scheduler toward the image center.
func (s EngineSettings) ZoomIn(f float64) EngineSettings {
	s.scale.Set(s.scale.Current() / f)
	s.zoomFocus.Set(nil)
	return s
}

// ZoomOut multiplies scale by f (f>1) and clears ZoomFocus.
func (s EngineSettings) ZoomOut(f float64) EngineSettings {
	s.scale.Set(s.scale.Current() * f)
	s.zoomFocus.Set(nil)
	return s
}

// ZoomInAround zooms by f around pixel (x, y), keeping the
// complex-plane point under that pixel fixed, and records (x, y) as
// the new focus for a click-biased scheduler.
func (s EngineSettings) ZoomInAround(x, y int32, f float64) EngineSettings {
	return s.zoomAround(x, y, s.scale.Current()/f)
}

// ZoomOutAround is ZoomInAround's inverse.
func (s EngineSettings) ZoomOutAround(x, y int32, f float64) EngineSettings {
	return s.zoomAround(x, y, s.scale.Current()*f)
}

func (s EngineSettings) zoomAround(x, y int32, newScale float64) EngineSettings {
	oldScale := s.scale.Current()
	size := s.size.Current()
	deltaCenter := gocomplex.New(
		(newScale-oldScale)*(float64(size.W)/2-float64(x)),
		(newScale-oldScale)*(float64(y)-float64(size.H)/2),
	)
	s.center.Set(s.center.Current().Add(deltaCenter))
	s.scale.Set(newScale)
	focus := mrect.Point{X: x, Y: y}
	s.zoomFocus.Set(&focus)
	return s
}

// SetIterationLimit queues a new cap and snaps the last gradient
// pivot's Value to n so the gradient always covers [0, n].
func (s EngineSettings) SetIterationLimit(n uint32) EngineSettings {
	s.iterationLimit.Set(n)
	g := s.gradient.Get().Clone()
	if len(g.Pivots) > 0 {
		g.Pivots[len(g.Pivots)-1].Value = n
	}
	s.gradient.Set(g)
	return s
}

// --- gradient delegates: structure-preserving mutators ---

func (s EngineSettings) GradientSetPivotValue(i int, v uint32) EngineSettings {
	g := s.gradient.Get().Clone()
	g.SetPivotValue(i, v, s.iterationLimit.Current())
	s.gradient.Set(g)
	return s
}

func (s EngineSettings) GradientSetPivotColor(i int, c mcolor.Color) EngineSettings {
	g := s.gradient.Get().Clone()
	g.SetPivotColor(i, c)
	s.gradient.Set(g)
	return s
}

func (s EngineSettings) GradientInsertPivot(i int) EngineSettings {
	g := s.gradient.Get().Clone()
	g.InsertPivot(i)
	s.gradient.Set(g)
	return s
}

func (s EngineSettings) GradientDeletePivot(i int) EngineSettings {
	g := s.gradient.Get().Clone()
	g.DeletePivot(i)
	s.gradient.Set(g)
	return s
}

func (s EngineSettings) GradientSetRoot(c mcolor.Color) EngineSettings {
	g := s.gradient.Get().Clone()
	g.Root = c
	s.gradient.Set(g)
	return s
}

func (s EngineSettings) GradientSetInside(c mcolor.Color) EngineSettings {
	g := s.gradient.Get().Clone()
	g.Inside = c
	s.gradient.Set(g)
	return s
}

// DescribeRange renders the visible complex-plane window as
// "re ±<span> im ±<span>" in scientific notation.
func (s EngineSettings) DescribeRange() string {
	size := s.size.Current()
	scale := s.scale.Current()
	reSpan := scale * float64(size.W) / 2
	imSpan := scale * float64(size.H) / 2
	return fmt.Sprintf("re ±%.6e im ±%.6e", reSpan, imSpan)
}
