package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"mandelcore/mcolor"
)

func TestMakePaletteCoversRange(t *testing.T) {
	g := Default()
	limit := uint32(50)
	p := g.MakePalette(limit)

	assert.GreaterOrEqual(t, len(p.EscapeValues), int(limit)+1)
	assert.Equal(t, g.Root, p.EscapeValues[0])
	assert.Equal(t, g.Pivots[0].Color, p.EscapeValues[g.Pivots[0].Value])
	assert.Equal(t, g.Inside, p.Get(limit, limit))
	assert.Equal(t, g.Inside, p.Get(limit+100, limit))
}

func TestMakePaletteHardStop(t *testing.T) {
	g := Gradient{
		Root:   mcolor.RGBA(0, 0, 0, 255),
		Inside: mcolor.RGBA(0, 0, 0, 255),
		Pivots: []Pivot{
			{Value: 10, Color: mcolor.RGBA(255, 0, 0, 255)},
			{Value: 10, Color: mcolor.RGBA(0, 255, 0, 255)},
			{Value: 20, Color: mcolor.RGBA(0, 0, 255, 255)},
		},
	}
	p := g.MakePalette(20)
	assert.Equal(t, mcolor.RGBA(0, 255, 0, 255), p.EscapeValues[10], "hard stop overwrites exact index")
	assert.Equal(t, mcolor.RGBA(0, 0, 255, 255), p.EscapeValues[20])
}

func TestSetPivotValueClampsToNeighbors(t *testing.T) {
	g := Gradient{
		Pivots: []Pivot{{Value: 10}, {Value: 20}, {Value: 30}},
	}
	assert.True(t, g.SetPivotValue(1, 5, 100))
	assert.Equal(t, uint32(10), g.Pivots[1].Value, "clamped down to left neighbor")

	assert.True(t, g.SetPivotValue(1, 40, 100))
	assert.Equal(t, uint32(30), g.Pivots[1].Value, "clamped up to right neighbor")

	assert.False(t, g.SetPivotValue(9, 1, 100))
}

func TestInsertPivotMean(t *testing.T) {
	g := Gradient{
		Pivots: []Pivot{
			{Value: 0, Color: mcolor.RGBA(0, 0, 0, 0)},
			{Value: 10, Color: mcolor.RGBA(10, 10, 10, 10)},
		},
	}
	assert.True(t, g.InsertPivot(0))
	assert.Len(t, g.Pivots, 3)
	assert.Equal(t, uint32(5), g.Pivots[1].Value)
	assert.Equal(t, mcolor.RGBA(5, 5, 5, 5), g.Pivots[1].Color)
}

func TestInsertPivotTerminalDuplicates(t *testing.T) {
	g := Gradient{Pivots: []Pivot{{Value: 5, Color: mcolor.RGBA(1, 2, 3, 4)}}}
	assert.True(t, g.InsertPivot(0))
	assert.Len(t, g.Pivots, 2)
	assert.Equal(t, g.Pivots[0], g.Pivots[1])
}

func TestDeletePivotKeepsAtLeastOne(t *testing.T) {
	g := Gradient{Pivots: []Pivot{{Value: 1}}}
	assert.False(t, g.DeletePivot(0))
	assert.Len(t, g.Pivots, 1)

	g.Pivots = append(g.Pivots, Pivot{Value: 2})
	assert.True(t, g.DeletePivot(0))
	assert.Len(t, g.Pivots, 1)
	assert.Equal(t, uint32(2), g.Pivots[0].Value)
}

func TestCloneDoesNotAlias(t *testing.T) {
	g := Default()
	clone := g.Clone()
	clone.Pivots[0].Value = 999
	assert.NotEqual(t, g.Pivots[0].Value, clone.Pivots[0].Value)
}
