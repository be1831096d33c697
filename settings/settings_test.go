package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mandelcore/mcolor"
)

func TestDefaultLatchReportsNoChangeBeforeAnySet(t *testing.T) {
	s := DefaultSettings()
	_, changed := s.LatchSize()
	assert.False(t, changed, "a fresh DefaultSettings has nothing pending, so the first latch reports no change")
}

func TestPanMovesCenterInComplexUnits(t *testing.T) {
	s := DefaultSettings()
	before := s.Center()
	s = s.Pan(10, 0)
	after := s.Center()
	assert.Greater(t, after.Re, before.Re)
	assert.Equal(t, before.Im, after.Im)
}

func TestZoomInDividesScaleAndClearsFocus(t *testing.T) {
	s := DefaultSettings().ZoomInAround(5, 5, 2.0)
	assert.NotNil(t, s.ZoomFocus())
	s = s.ZoomIn(2.0)
	assert.Equal(t, 1.0/512.0, s.Scale())
	assert.Nil(t, s.ZoomFocus())
}

func TestZoomInAroundKeepsPixelFixed(t *testing.T) {
	s := DefaultSettings().SetSize(100, 100)
	before := s.Center()
	s = s.ZoomInAround(50, 50, 2.0)
	after := s.Center()
	assert.InDelta(t, before.Re, after.Re, 1e-9, "zooming around the exact center must not move it")
	assert.InDelta(t, before.Im, after.Im, 1e-9)
}

func TestSetIterationLimitSnapsLastPivot(t *testing.T) {
	s := DefaultSettings().SetIterationLimit(200)
	g := s.Gradient()
	assert.Equal(t, uint32(200), g.Pivots[len(g.Pivots)-1].Value)
	assert.Equal(t, uint32(200), s.IterationLimit())
}

func TestSetIterationLimitDoesNotAliasOriginalGradient(t *testing.T) {
	base := DefaultSettings()
	mutated := base.SetIterationLimit(999)
	assert.NotEqual(t, base.Gradient().Pivots[0].Value, mutated.Gradient().Pivots[0].Value)
}

func TestGradientInsertPivotIsVisibleThroughSettings(t *testing.T) {
	s := DefaultSettings()
	before := len(s.Gradient().Pivots)
	s = s.GradientInsertPivot(0)
	assert.Equal(t, before+1, len(s.Gradient().Pivots))
}

func TestLatchIterationLimitReportsEachChangeOnce(t *testing.T) {
	s := DefaultSettings()
	s.LatchIterationLimit()
	s = s.SetIterationLimit(77)
	old, changed := s.LatchIterationLimit()
	assert.True(t, changed)
	assert.Equal(t, uint32(50), old)
	_, changed = s.LatchIterationLimit()
	assert.False(t, changed)
}

func TestTakeDirtyGradientFiresOnlyAfterMutation(t *testing.T) {
	s := DefaultSettings()
	s.TakeDirtyGradient()
	s = s.GradientSetRoot(mcolor.Color{R: 1, G: 2, B: 3, A: 255})
	g, dirty := s.TakeDirtyGradient()
	assert.True(t, dirty)
	assert.Equal(t, uint8(1), g.Root.R)
	_, dirty = s.TakeDirtyGradient()
	assert.False(t, dirty)
}

func TestSerializeRoundTrip(t *testing.T) {
	s := DefaultSettings().SetIterationLimit(123).Pan(5, -5).ZoomIn(3)
	s = s.GradientInsertPivot(0)

	encoded, ok := s.Serialize()
	assert.True(t, ok)
	assert.Contains(t, encoded, "0:")

	restored, ok := RestoreSettings(encoded)
	assert.True(t, ok)
	assert.Equal(t, s.IterationLimit(), restored.IterationLimit())
	assert.InDelta(t, s.Scale(), restored.Scale(), 1e-12)
	assert.InDelta(t, s.Center().Re, restored.Center().Re, 1e-9)
	assert.InDelta(t, s.Center().Im, restored.Center().Im, 1e-9)
	assert.Equal(t, len(s.Gradient().Pivots), len(restored.Gradient().Pivots))
}

func TestRestoreSettingsRejectsGarbage(t *testing.T) {
	_, ok := RestoreSettings("not a valid payload")
	assert.False(t, ok)

	_, ok = RestoreSettings("9:whatever")
	assert.False(t, ok)

	_, ok = RestoreSettings("0:not-valid-base64!!!")
	assert.False(t, ok)
}

func TestDescribeRangeReflectsScaleAndSize(t *testing.T) {
	s := DefaultSettings().SetSize(200, 100)
	desc := s.DescribeRange()
	assert.Contains(t, desc, "re")
	assert.Contains(t, desc, "im")
}
