// Package presets catalogs a fixed set of named starting viewports
// and gradients, the way a renderer ships a handful of interesting
// views instead of always opening on the plain default.
//
// The reference implementation this catalog is modeled on shipped its
// presets as opaque serialized blobs produced by its own wire format.
// This module's Serialize/RestoreSettings format is its own (see
// settings.Serialize), so those blobs are not byte-compatible here;
// each preset below is instead built from the same EngineSettings
// builders a caller would use interactively, tuned to evoke the named
// preset's original character.
package presets

import (
	"mandelcore/gocomplex"
	"mandelcore/gradient"
	"mandelcore/mcolor"
	"mandelcore/settings"
)

// Preset pairs a display name with a function that builds the
// viewport and gradient it describes.
type Preset struct {
	Name  string
	Build func() settings.EngineSettings
}

func hex(c string) mcolor.Color {
	color, ok := mcolor.ParseHex(c)
	if !ok {
		return mcolor.RGBA(0, 0, 0, 255)
	}
	return color
}

func withGradient(s settings.EngineSettings, root, inside mcolor.Color, stops []gradient.Pivot) settings.EngineSettings {
	s = s.GradientSetRoot(root)
	s = s.GradientSetInside(inside)
	for len(s.Gradient().Pivots) > 1 {
		s = s.GradientDeletePivot(0)
	}
	s = s.GradientSetPivotValue(0, stops[0].Value)
	s = s.GradientSetPivotColor(0, stops[0].Color)
	for i := 1; i < len(stops); i++ {
		s = s.GradientInsertPivot(i - 1)
		s = s.GradientSetPivotValue(i, stops[i].Value)
		s = s.GradientSetPivotColor(i, stops[i].Color)
	}
	return s
}

func centeredAt(re, im, scale float64, limit uint32) settings.EngineSettings {
	s := settings.DefaultSettings().SetIterationLimit(limit)
	delta := gocomplex.New(re, im).Sub(s.Center())
	return s.Pan(delta.Re/s.Scale(), -delta.Im/s.Scale()).ZoomIn(s.Scale() / scale)
}

// PRESETS mirrors the reference catalog's nine canonical names, in
// their original order.
var PRESETS = []Preset{
	{
		Name: "Classic",
		Build: func() settings.EngineSettings {
			return settings.DefaultSettings()
		},
	},
	{
		Name: "Hyperspace",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.743643887037151, 0.13182590420533, 4e-12, 500)
			return withGradient(s, hex("#000000"), hex("#000000"), []gradient.Pivot{
				{Value: 20, Color: hex("#1b0060")},
				{Value: 120, Color: hex("#6f00ff")},
				{Value: 500, Color: hex("#ffffff")},
			})
		},
	},
	{
		Name: "My burning heart",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.1015, 0.6328, 2.5e-4, 300)
			return withGradient(s, hex("#1a0000"), hex("#000000"), []gradient.Pivot{
				{Value: 30, Color: hex("#6b0000")},
				{Value: 150, Color: hex("#ff4500")},
				{Value: 300, Color: hex("#ffe08a")},
			})
		},
	},
	{
		Name: "Poseidon's armory",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.745, 0.1, 8e-5, 250)
			return withGradient(s, hex("#00131a"), hex("#000814"), []gradient.Pivot{
				{Value: 40, Color: hex("#003a4d")},
				{Value: 150, Color: hex("#0099cc")},
				{Value: 250, Color: hex("#dff7ff")},
			})
		},
	},
	{
		Name: "The Radiance",
		Build: func() settings.EngineSettings {
			s := centeredAt(0.3245, 0.0493, 1.2e-3, 200)
			return withGradient(s, hex("#1a1400"), hex("#000000"), []gradient.Pivot{
				{Value: 50, Color: hex("#7a5c00")},
				{Value: 140, Color: hex("#ffd700")},
				{Value: 200, Color: hex("#fffbe0")},
			})
		},
	},
	{
		Name: "Singularity",
		Build: func() settings.EngineSettings {
			s := centeredAt(-1.401155, 0.0, 6e-6, 600)
			return withGradient(s, hex("#000000"), hex("#ffffff"), []gradient.Pivot{
				{Value: 60, Color: hex("#202020")},
				{Value: 300, Color: hex("#808080")},
				{Value: 600, Color: hex("#f0f0f0")},
			})
		},
	},
	{
		Name: "The day they came",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.77568377, 0.13646737, 3e-7, 400)
			return withGradient(s, hex("#001a00"), hex("#000000"), []gradient.Pivot{
				{Value: 40, Color: hex("#004d00")},
				{Value: 200, Color: hex("#33cc33")},
				{Value: 400, Color: hex("#e0ffe0")},
			})
		},
	},
	{
		Name: "Wildfire",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.5, 0.0, 1.0 / 256, 180)
			return withGradient(s, hex("#1a0000"), hex("#000000"), []gradient.Pivot{
				{Value: 20, Color: hex("#660000")},
				{Value: 90, Color: hex("#ff6600")},
				{Value: 180, Color: hex("#ffff66")},
			})
		},
	},
	{
		Name: "Xen lightning",
		Build: func() settings.EngineSettings {
			s := centeredAt(-0.835, -0.2321, 5e-5, 350)
			return withGradient(s, hex("#000014"), hex("#000000"), []gradient.Pivot{
				{Value: 35, Color: hex("#1a0033")},
				{Value: 160, Color: hex("#8a2be2")},
				{Value: 350, Color: hex("#e6e6fa")},
			})
		},
	},
}

// ByName looks up a preset by its display name.
func ByName(name string) (Preset, bool) {
	for _, p := range PRESETS {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
