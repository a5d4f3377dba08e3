// Package config loads the scene description and render settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuboid-renderer/internal/camera"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned for colour strings that are not hex.
var ErrInvalidColor = errors.New("config: invalid hex colour")

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
	FormatTGA  = "tga"
)

// Canvas backends.
const (
	CanvasRaster = "raster"
	CanvasGG     = "gg"
)

// Config holds the scene and all render settings.
type Config struct {
	Camera    Camera    `json:"camera"`
	Animation Animation `json:"animation"`
	Objects   []Object  `json:"objects"`
	Output    Output    `json:"output"`
}

// Camera describes the viewpoint. Angles are in degrees.
type Camera struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Near        float64    `json:"near"`
	Far         float64    `json:"far"`
	FOVDeg      float64    `json:"fov_deg"`
	Position    [3]float64 `json:"position"`
	Orientation [3]float64 `json:"orientation_deg"`
}

// Animation controls the frame sequence. Frame i is viewed with the camera
// orientation advanced by i·SpinDeg.
type Animation struct {
	Frames  int        `json:"frames"`
	SpinDeg [3]float64 `json:"spin_deg"`
}

// Object is one solid in the scene.
type Object struct {
	Kind        string     `json:"kind"`
	Position    [3]float64 `json:"position"`
	RotationDeg [3]float64 `json:"rotation_deg"`
	Extents     [3]float64 `json:"extents"`
	Style       string     `json:"style"`
	Color       string     `json:"color"`
	Colors      []string   `json:"colors"`
}

// Output controls encoding and parallelism.
type Output struct {
	Dir         string `json:"dir"`
	Format      string `json:"format"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Canvas      string `json:"canvas"`
	Background  string `json:"background"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Frames    int
	Size      int
	Workers   int
	Canvas    string
}

// Resolve applies flag overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Animation.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Camera.Width, c.Camera.Height = flags.Size, flags.Size
	}
	if flags.Workers > 0 {
		c.Output.Workers = flags.Workers
	}
	if flags.Canvas != "" {
		c.Output.Canvas = flags.Canvas
	}

	if c.Camera.Width <= 0 {
		c.Camera.Width = 256
	}
	if c.Camera.Height <= 0 {
		c.Camera.Height = c.Camera.Width
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = 0.1
	}
	if c.Camera.Far <= 0 {
		c.Camera.Far = 100
	}
	if c.Camera.FOVDeg <= 0 {
		c.Camera.FOVDeg = 45
	}
	if c.Animation.Frames <= 0 {
		c.Animation.Frames = 1
	}
	for i := range c.Objects {
		if c.Objects[i].Kind == "" {
			c.Objects[i].Kind = "box"
		}
		if c.Objects[i].Extents == [3]float64{} {
			c.Objects[i].Extents = [3]float64{1, 1, 1}
		}
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "renders"
	} else {
		c.Output.Dir = filepath.Clean(c.Output.Dir)
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = FormatWebP
	}
	if c.Output.Supersample <= 0 {
		c.Output.Supersample = 2
	}
	if c.Output.Workers <= 0 {
		c.Output.Workers = runtime.NumCPU()
	}
	if c.Output.Canvas == "" {
		c.Output.Canvas = CanvasRaster
	}
	if c.Output.Background == "" {
		c.Output.Background = "#000000"
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	if err := c.Camera.Frustum().Validate(); err != nil {
		return fmt.Errorf("config: camera: %w", err)
	}
	switch c.Output.Format {
	case FormatWebP, FormatPNG, FormatTGA:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	switch c.Output.Canvas {
	case CanvasRaster, CanvasGG:
	default:
		return fmt.Errorf("config: unknown canvas %q", c.Output.Canvas)
	}
	if _, err := ParseColor(c.Output.Background); err != nil {
		return err
	}
	for i, o := range c.Objects {
		if o.Kind != "box" {
			return fmt.Errorf("config: object %d: unknown kind %q", i, o.Kind)
		}
		switch o.Style {
		case "", "solid", "wireframe", "palette":
		default:
			return fmt.Errorf("config: object %d: unknown style %q", i, o.Style)
		}
		if o.Color != "" {
			if _, err := ParseColor(o.Color); err != nil {
				return fmt.Errorf("config: object %d: %w", i, err)
			}
		}
		for _, s := range o.Colors {
			if _, err := ParseColor(s); err != nil {
				return fmt.Errorf("config: object %d: %w", i, err)
			}
		}
	}
	return nil
}

// FOV returns the field of view in radians.
func (c Camera) FOV() float64 { return c.FOVDeg * math.Pi / 180 }

// Frustum returns the camera settings in the form camera.New takes.
func (c Camera) Frustum() camera.Config {
	return camera.Config{
		Width:  float64(c.Width),
		Height: float64(c.Height),
		Near:   c.Near,
		Far:    c.Far,
		FOV:    c.FOV(),
	}
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(h).Color(), nil
}
