package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cuboid-renderer/internal/batch"
	"cuboid-renderer/internal/config"
	"cuboid-renderer/internal/logging"
)

func main() {
	configFile := flag.String("config", "", "Path to scene JSON file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: from config, else 1)")
	size := flag.Int("size", 0, "Output width and height in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, png or tga (default: webp)")
	canvas := flag.String("canvas", "", "Canvas backend: raster or gg (default: raster)")
	verbose := flag.Bool("v", false, "Log diagnostics to stderr")

	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = defaultScene()
	}

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
		Canvas:    *canvas,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	batchCfg, err := batch.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	batchCfg.Progress = func(done, total int, rate float64) {
		fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
	}

	n := cfg.Animation.Frames
	fmt.Printf("Cuboid renderer → %s (%s canvas)\n", cfg.Output.Format, cfg.Output.Canvas)
	fmt.Printf("Objects: %d, Frames: %d, Size: %dx%d, Workers: %d\n",
		len(cfg.Objects), n, cfg.Camera.Width, cfg.Camera.Height, cfg.Output.Workers)
	fmt.Printf("Output: %s\n", cfg.Output.Dir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg, n)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, warned := 0, 0
	var failed []batch.Result
	for _, r := range results {
		switch {
		case !r.Success:
			failed = append(failed, r)
		case r.Warning != "":
			warned++
			success++
		default:
			success++
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, n)
	if warned > 0 {
		fmt.Printf("Frames with skipped objects: %d (see manifest.json)\n", warned)
	}

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(cfg.Output.Dir, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s/manifest.json\n", cfg.Output.Dir)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

// defaultScene is the unit cube turning in front of the camera.
func defaultScene() config.Config {
	return config.Config{
		Camera: config.Camera{Position: [3]float64{0, 0, 3}},
		Animation: config.Animation{
			Frames:  36,
			SpinDeg: [3]float64{0, 0, 10},
		},
		Objects: []config.Object{{
			Kind:     "box",
			Position: [3]float64{-0.5, -0.5, -0.5},
			Extents:  [3]float64{1, 1, 1},
			Colors:   []string{"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4"},
		}},
	}
}
