// Command mandelrender drives the engine headlessly: build a viewport
// from flags or a named preset, run an adaptive compute loop until the
// dirty queue drains, and write the result as a PNG.
package main

import (
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"mandelcore/engine"
	"mandelcore/internal/fplog"
	"mandelcore/presets"
	"mandelcore/settings"
)

type Cli struct {
	Width          int     `arg:"--width" default:"1920" help:"image width in pixels"`
	Height         int     `arg:"--height" default:"1080" help:"image height in pixels"`
	CenterReal     float64 `arg:"-r, --center-real" default:"-0.5" help:"real part of the viewport center"`
	CenterImag     float64 `arg:"-i, --center-imag" default:"0.0" help:"imaginary part of the viewport center"`
	Scale          float64 `arg:"-s,--scale" default:"0.0078125" help:"complex-plane units per pixel"`
	IterationLimit uint32  `arg:"--iter" default:"250" help:"iteration cap per pixel"`
	Preset         string  `arg:"--preset" help:"use a named preset instead of the geometry flags (see --list-presets)"`
	ListPresets    bool    `arg:"--list-presets" help:"print the available preset names and exit"`
	FrameBudget    int     `arg:"--frame-budget" default:"50" help:"starting number of pixels to compute per frame"`
	FrameBudgetMs  int     `arg:"--frame-budget-ms" default:"16" help:"target wall time per frame; the budget adapts to hit it"`
	Out            string  `arg:"positional" default:"mandel.png" help:"output PNG path"`
	Verbose        bool    `arg:"-v, --verbose" help:"enable debug logging"`
}

var args Cli

func main() {
	arg.MustParse(&args)

	logger := fplog.New("mandelrender")
	if !args.Verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}
	settings.SetLogger(logger)
	engine.SetLogger(logger)

	if args.ListPresets {
		for _, p := range presets.PRESETS {
			log.Println(p.Name)
		}
		return
	}

	s := buildSettings()
	e := engine.NewEngine(&s)

	start := time.Now()
	budget := args.FrameBudget
	if budget <= 0 {
		budget = 50
	}
	target := time.Duration(args.FrameBudgetMs) * time.Millisecond
	if target <= 0 {
		target = 16 * time.Millisecond
	}

	frames := 0
	for e.Pending() > 0 {
		frameStart := time.Now()
		processed := e.Compute(budget)
		elapsed := time.Since(frameStart)
		frames++

		budget = nextBudget(budget, processed, elapsed, target)

		logger.Debug().
			Int("frame", frames).
			Int("processed", processed).
			Dur("elapsed", elapsed).
			Int("next_budget", budget).
			Int("pending", e.Pending()).
			Msg("compute frame")
	}

	e.Render()
	logger.Info().
		Int("frames", frames).
		Dur("total", time.Since(start)).
		Str("range", s.DescribeRange()).
		Msg("computation complete")

	if err := writePNG(args.Out, e); err != nil {
		logger.Fatal().Err(err).Str("path", args.Out).Msg("failed to write image")
	}
	logger.Info().Str("path", args.Out).Msg("wrote image")
}

func buildSettings() settings.EngineSettings {
	if args.Preset != "" {
		p, ok := presets.ByName(args.Preset)
		if !ok {
			log.Fatalf("unknown preset %q (see --list-presets)", args.Preset)
		}
		return p.Build().SetSize(args.Width, args.Height)
	}

	s := settings.DefaultSettings().
		SetSize(args.Width, args.Height).
		SetIterationLimit(args.IterationLimit)
	delta := s.Center()
	s = s.Pan((args.CenterReal-delta.Re)/s.Scale(), -(args.CenterImag-delta.Im)/s.Scale())
	return s.ZoomIn(s.Scale() / args.Scale)
}

// nextBudget adapts the per-frame pixel budget toward target wall
// time, the way an interactive renderer would keep each frame
// responsive: it scales the budget by target/elapsed, growing at most
// 4x per frame and never dropping below 1.
func nextBudget(current, processed int, elapsed, target time.Duration) int {
	if processed == 0 || elapsed <= 0 {
		return current
	}
	ratio := float64(target) / float64(elapsed)
	next := int(float64(current) * ratio)
	if next < 1 {
		next = 1
	}
	if next > current*4 {
		next = current * 4
	}
	return next
}

func writePNG(path string, e *engine.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, h := e.ImageBounds()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, e.ImageData())

	return png.Encode(f, img)
}
