// Package batch renders frame sequences of a scene with a worker pool.
package batch

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"cuboid-renderer/internal/camera"
	"cuboid-renderer/internal/config"
	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/ggcanvas"
	"cuboid-renderer/internal/logging"
	"cuboid-renderer/internal/mathutil"
	"cuboid-renderer/internal/postprocess"
	"cuboid-renderer/internal/raster"
	"cuboid-renderer/internal/scene"
)

// Config holds everything a batch run needs.
type Config struct {
	OutputDir   string
	Format      string
	Canvas      string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Background  color.Color

	Camera      camera.Config
	Position    [3]float64
	Orientation [3]float64 // radians
	Spin        [3]float64 // radians per frame

	Objects []config.Object

	// Progress, when set, receives periodic progress lines.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of rendering one frame. Error is set only when
// the frame was not written; objects that failed to draw in a written frame
// are reported in Warning.
type Result struct {
	Frame       int
	Path        string
	Orientation [3]float64
	Success     bool
	Error       string
	Warning     string
	Stats       display.Stats
}

// frameCanvas is a canvas whose pixels can be read back.
type frameCanvas interface {
	display.Canvas
	Image() *image.NRGBA
}

// FromConfig converts a resolved file config into a batch config.
func FromConfig(c config.Config) (Config, error) {
	bg, err := config.ParseColor(c.Output.Background)
	if err != nil {
		return Config{}, err
	}
	deg := func(v [3]float64) [3]float64 {
		return [3]float64{mathutil.Deg2Rad(v[0]), mathutil.Deg2Rad(v[1]), mathutil.Deg2Rad(v[2])}
	}
	return Config{
		OutputDir:   c.Output.Dir,
		Format:      c.Output.Format,
		Canvas:      c.Output.Canvas,
		Width:       c.Camera.Width,
		Height:      c.Camera.Height,
		Supersample: c.Output.Supersample,
		Workers:     c.Output.Workers,
		Background:  bg,
		Camera: camera.Config{
			Near: c.Camera.Near,
			Far:  c.Camera.Far,
			FOV:  c.Camera.FOV(),
		},
		Position:    c.Camera.Position,
		Orientation: deg(c.Camera.Orientation),
		Spin:        deg(c.Animation.SpinDeg),
		Objects:     c.Objects,
	}, nil
}

// FramePath returns the output path of frame i.
func FramePath(dir string, frame int, format string) string {
	return filepath.Join(dir, "frames", fmt.Sprintf("%04d.%s", frame, format))
}

// OrientationAt returns the camera orientation for frame i.
func (c Config) OrientationAt(frame int) [3]float64 {
	f := float64(frame)
	return [3]float64{
		c.Orientation[0] + f*c.Spin[0],
		c.Orientation[1] + f*c.Spin[1],
		c.Orientation[2] + f*c.Spin[2],
	}
}

// Run renders frames 0..frames-1 using a worker pool.
func Run(cfg Config, frames int) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	results := make([]Result, frames)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						cfg.Progress(int(p), frames, float64(p)/elapsed)
					}
				}
			}
		}()
	}

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r, err := newRenderer(cfg)
			if err != nil {
				for i := range frameChan {
					results[i] = Result{Frame: i, Orientation: cfg.OrientationAt(i), Error: err.Error()}
					processed.Add(1)
				}
				return
			}
			defer r.close()
			logging.Logger().Debug("batch: worker started", "worker", id, "canvas", cfg.Canvas)
			for i := range frameChan {
				results[i] = r.render(i)
				processed.Add(1)
			}
		}(w)
	}

	for i := 0; i < frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// renderer owns one display, camera, canvas and scene. Workers never share
// one.
type renderer struct {
	cfg     Config
	canvas  frameCanvas
	display *display.Display
	scene   *scene.Scene
}

func newRenderer(cfg Config) (*renderer, error) {
	w, h := postprocess.Supersampled(cfg.Width, cfg.Height, cfg.Supersample)

	camCfg := cfg.Camera
	camCfg.Width, camCfg.Height = float64(w), float64(h)
	cam, err := camera.New(camCfg, cfg.Position, cfg.Orientation)
	if err != nil {
		return nil, fmt.Errorf("batch: camera: %w", err)
	}

	var cv frameCanvas
	switch cfg.Canvas {
	case config.CanvasGG:
		gc := ggcanvas.New(w, h)
		gc.SetLineWidth(float64(max(cfg.Supersample, 1)))
		cv = gc
	case config.CanvasRaster, "":
		cv = raster.NewFrameBuffer(w, h)
	default:
		return nil, fmt.Errorf("batch: unknown canvas %q", cfg.Canvas)
	}

	d, err := display.New(cv, cam, cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("batch: display: %w", err)
	}

	sc, err := scene.Build(cfg.Objects)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return &renderer{cfg: cfg, canvas: cv, display: d, scene: sc}, nil
}

func (r *renderer) close() {
	if c, ok := r.canvas.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logging.Logger().Warn("batch: canvas close", "err", err)
		}
	}
}

func (r *renderer) render(frame int) Result {
	orientation := r.cfg.OrientationAt(frame)
	res := Result{Frame: frame, Orientation: orientation}

	r.display.SetOrientation(orientation)
	if err := r.display.Update(r.scene); err != nil {
		// A failed object does not stop the frame.
		logging.Logger().Warn("batch: frame drawn with errors", "frame", frame, "err", err)
		res.Warning = err.Error()
	}
	res.Stats = r.display.Stats()

	img := r.canvas.Image()
	if r.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, r.cfg.Width, r.cfg.Height)
	}

	outPath := FramePath(r.cfg.OutputDir, frame, r.cfg.Format)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := WriteImage(outPath, img, r.cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Path = outPath
	res.Success = true
	return res
}
