// Package gradient builds the dense escape-count-to-color lookup
// ("palette") from a small set of piecewise-linear color stops.
package gradient

import "mandelcore/mcolor"

// Pivot pins a color to a given escape count; Value must be
// monotonically non-decreasing across a Gradient's Pivots.
type Pivot struct {
	Value uint32
	Color mcolor.Color
}

// Gradient is a list of color stops plus the two colors used outside
// the stop range: Root for escape_count == 0, Inside for
// escape_count >= iteration_limit.
type Gradient struct {
	Root   mcolor.Color
	Inside mcolor.Color
	Pivots []Pivot
}

// Default mirrors the reference engine's bootstrap gradient: black
// fading to magenta over 50 iterations, black inside the set.
func Default() Gradient {
	return Gradient{
		Root:   mcolor.RGBA(0, 0, 0, 255),
		Inside: mcolor.RGBA(0, 0, 0, 255),
		Pivots: []Pivot{{Value: 50, Color: mcolor.RGBA(255, 0, 255, 255)}},
	}
}

// Clone returns a Gradient whose Pivots slice does not alias the
// receiver's, so mutating the clone never corrupts the original.
func (g Gradient) Clone() Gradient {
	pivots := make([]Pivot, len(g.Pivots))
	copy(pivots, g.Pivots)
	return Gradient{Root: g.Root, Inside: g.Inside, Pivots: pivots}
}

// Palette is the dense escape_count -> color lookup built by
// MakePalette. Lookup is O(1).
type Palette struct {
	EscapeValues []mcolor.Color
	Inside       mcolor.Color
}

// Get returns the color for escapeCount, given the iteration cap the
// palette was (or should behave as if it were) built for.
func (p Palette) Get(escapeCount, limit uint32) mcolor.Color {
	if escapeCount >= limit || int(escapeCount) >= len(p.EscapeValues) {
		return p.Inside
	}
	return p.EscapeValues[escapeCount]
}

// MakePalette interpolates between consecutive pivots starting from
// Root at index 0, extending with the last pivot's color until the
// array covers [0, limit]. Adjacent pivots sharing the same Value
// create a hard color stop: the later pivot's color overwrites that
// exact index instead of being interpolated into.
func (g Gradient) MakePalette(limit uint32) Palette {
	values := make([]mcolor.Color, 1, limit+2)
	values[0] = g.Root

	prevValue := uint32(0)
	prevColor := g.Root

	for _, pivot := range g.Pivots {
		if pivot.Value == prevValue {
			if int(pivot.Value) < len(values) {
				values[pivot.Value] = pivot.Color
			} else {
				values = append(values, pivot.Color)
			}
		} else {
			for v := prevValue + 1; v <= pivot.Value; v++ {
				values = append(values, mcolor.Lerp(prevColor, pivot.Color, int64(prevValue), int64(pivot.Value), int64(v)))
			}
		}
		prevValue = pivot.Value
		prevColor = pivot.Color
	}

	for uint32(len(values)) <= limit {
		values = append(values, prevColor)
	}

	return Palette{EscapeValues: values, Inside: g.Inside}
}

// SetPivotValue clamps v to [0, max], then clamps further to
// [pivots[i-1].Value, pivots[i+1].Value] so neighboring pivots never
// cross — the canonical, cascade-free policy (see DESIGN.md).
func (g *Gradient) SetPivotValue(i int, v, max uint32) bool {
	if i < 0 || i >= len(g.Pivots) {
		return false
	}
	if v > max {
		v = max
	}
	lo := uint32(0)
	if i > 0 {
		lo = g.Pivots[i-1].Value
	}
	hi := max
	if i < len(g.Pivots)-1 {
		hi = g.Pivots[i+1].Value
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	g.Pivots[i].Value = v
	return true
}

// SetPivotColor replaces the color of pivot i; a no-op for an
// out-of-range index.
func (g *Gradient) SetPivotColor(i int, c mcolor.Color) bool {
	if i < 0 || i >= len(g.Pivots) {
		return false
	}
	g.Pivots[i].Color = c
	return true
}

// InsertPivot inserts the arithmetic mean of pivots i and i+1 right
// after i, or a duplicate of the last pivot when i is terminal.
func (g *Gradient) InsertPivot(i int) bool {
	if i < 0 || i >= len(g.Pivots) {
		return false
	}
	var mean Pivot
	if i == len(g.Pivots)-1 {
		mean = g.Pivots[i]
	} else {
		a, b := g.Pivots[i], g.Pivots[i+1]
		mean = Pivot{Value: (a.Value + b.Value) / 2, Color: mcolor.Mean(a.Color, b.Color)}
	}
	out := make([]Pivot, 0, len(g.Pivots)+1)
	out = append(out, g.Pivots[:i+1]...)
	out = append(out, mean)
	out = append(out, g.Pivots[i+1:]...)
	g.Pivots = out
	return true
}

// DeletePivot removes pivot i. At least one pivot must always remain,
// so deleting the last one is a no-op rather than an error.
func (g *Gradient) DeletePivot(i int) bool {
	if i < 0 || i >= len(g.Pivots) {
		return false
	}
	if len(g.Pivots) == 1 {
		return false
	}
	g.Pivots = append(g.Pivots[:i], g.Pivots[i+1:]...)
	return true
}
