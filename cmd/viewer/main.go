// Command viewer opens a window showing the scene with the camera rolling
// one degree per tick.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cuboid-renderer/internal/camera"
	"cuboid-renderer/internal/config"
	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/logging"
	"cuboid-renderer/internal/mathutil"
	"cuboid-renderer/internal/raster"
	"cuboid-renderer/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "Path to scene JSON file")
	verbose := flag.Bool("v", false, "Log diagnostics to stderr")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	} else {
		cfg.Camera = config.Camera{Width: 800, Height: 600, Position: [3]float64{0, 0, 3}}
		cfg.Objects = []config.Object{{
			Position: [3]float64{-0.5, -0.5, -0.5},
			Colors:   []string{"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4"},
		}}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	bg, err := config.ParseColor(cfg.Output.Background)
	if err != nil {
		return err
	}
	o := cfg.Camera.Orientation
	cam, err := camera.New(cfg.Camera.Frustum(), cfg.Camera.Position, [3]float64{mathutil.Deg2Rad(o[0]), mathutil.Deg2Rad(o[1]), mathutil.Deg2Rad(o[2])})
	if err != nil {
		return err
	}
	fb := raster.NewFrameBuffer(cfg.Camera.Width, cfg.Camera.Height)
	d, err := display.New(fb, cam, bg)
	if err != nil {
		return err
	}
	sc, err := scene.Build(cfg.Objects)
	if err != nil {
		return err
	}

	g := newGame(d, fb, sc)
	ebiten.SetWindowTitle("Cuboid viewer")
	ebiten.SetWindowSize(cfg.Camera.Width, cfg.Camera.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
