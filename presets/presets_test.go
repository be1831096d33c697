package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mandelcore/settings"
)

var canonicalNames = []string{
	"Classic",
	"Hyperspace",
	"My burning heart",
	"Poseidon's armory",
	"The Radiance",
	"Singularity",
	"The day they came",
	"Wildfire",
	"Xen lightning",
}

func TestPresetsAreCanonical(t *testing.T) {
	assert.Equal(t, len(canonicalNames), len(PRESETS))
	for i, name := range canonicalNames {
		assert.Equal(t, name, PRESETS[i].Name)
	}
}

func TestEveryPresetBuildsValidSettings(t *testing.T) {
	for _, p := range PRESETS {
		s := p.Build()
		assert.NotEmpty(t, s.Gradient().Pivots, "preset %q must leave at least one pivot", p.Name)
		assert.Greater(t, s.IterationLimit(), uint32(0), "preset %q", p.Name)
	}
}

func TestEveryPresetRoundTripsThroughSerialize(t *testing.T) {
	for _, p := range PRESETS {
		s := p.Build()
		encoded, ok := s.Serialize()
		assert.True(t, ok, "preset %q failed to serialize", p.Name)

		restored, ok := settings.RestoreSettings(encoded)
		assert.True(t, ok, "preset %q failed to restore", p.Name)
		assert.Equal(t, s.IterationLimit(), restored.IterationLimit(), "preset %q", p.Name)
		assert.Equal(t, len(s.Gradient().Pivots), len(restored.Gradient().Pivots), "preset %q", p.Name)
	}
}

func TestByNameFindsEveryCanonicalPreset(t *testing.T) {
	for _, name := range canonicalNames {
		_, ok := ByName(name)
		assert.True(t, ok, "missing preset %q", name)
	}
	_, ok := ByName("does not exist")
	assert.False(t, ok)
}
