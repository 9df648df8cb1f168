//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"lifecal/internal/config"
	"lifecal/internal/glapp"
	"lifecal/internal/life"
	"lifecal/internal/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		from       = flag.String("from", "", "first date of the grid (YYYY-MM-DD)")
		to         = flag.String("to", "", "last date of the grid (YYYY-MM-DD)")
		tick       = flag.Int("tick", 0, "tick interval in milliseconds")
		fill       = flag.Int("fill", 0, "randomize fill percentage")
		seed       = flag.Int64("seed", 0, "RNG seed (0 picks from the clock)")
		scale      = flag.Int("scale", 12, "pixels per cell")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *from != "" {
		cfg.From = *from
	}
	if *to != "" {
		cfg.To = *to
	}
	if *tick > 0 {
		cfg.TickMillis = *tick
	}
	if *fill > 0 {
		cfg.FillPercent = *fill
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	first, last, err := cfg.Range()
	if err != nil {
		log.Fatalf("date range: %v", err)
	}

	cal := surface.NewCalendar(first, last)
	engine := life.NewEngine(cal)
	engine.SetWorkers(cfg.Workers)
	renderer := life.NewRenderer(cal, engine.Index(), cfg.SeedValue())
	loop := &life.LoopScheduler{}
	ctrl := life.NewController(engine, renderer, loop, cfg.Tick(), cfg.SeedValue()+1, logger)

	game, err := glapp.NewGame(ctrl, cal, loop, life.NewFixedStep(cfg.Tick()), *scale, cfg.FillPercent)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	ctrl.Randomize(cfg.FillPercent)
	ctrl.Start()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("lifecal")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
