// Package display projects world-space primitives through a camera, clips
// them against the near plane and hands the 2D result to a Canvas.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"cuboid-renderer/internal/camera"
	"cuboid-renderer/internal/logging"
	"cuboid-renderer/internal/mathutil"
)

// ErrNilArgument is returned when a required argument is missing.
var ErrNilArgument = errors.New("display: nil argument")

// Canvas is the 2D rasterizer the display draws into.
type Canvas interface {
	Clear(c color.Color)
	DrawLine(p1, p2 image.Point, c color.Color)
	FillPolygon(points []image.Point, c color.Color)
}

// Resizer is implemented by canvases that own a pixel buffer which must
// follow window size changes.
type Resizer interface {
	Resize(width, height int) error
}

// Submitter accepts world-space primitives. *Display is the implementation
// used for rendering; tests substitute recorders.
type Submitter interface {
	SubmitLine(p1, p2 *mathutil.Matrix, c color.Color) error
	SubmitPolygon(points []*mathutil.Matrix, c color.Color) error
	CameraPosition() *mathutil.Matrix
}

// Drawable is a scene object that submits its primitives in draw order.
type Drawable interface {
	Draw(s Submitter) error
}

// Stats counts what happened to submitted primitives since the last Update.
type Stats struct {
	Lines    int // lines handed to the canvas
	Polygons int // polygons handed to the canvas
	Dropped  int // primitives entirely behind the near plane
	Clipped  int // primitives with at least one near-plane intersection
}

// Display owns a camera and a canvas. It is not safe for concurrent use;
// callers give each goroutine its own Display.
type Display struct {
	canvas     Canvas
	camera     *camera.Camera
	clearColor color.Color
	stats      Stats
}

// New returns a Display drawing into canvas through cam.
func New(canvas Canvas, cam *camera.Camera, clearColor color.Color) (*Display, error) {
	if canvas == nil || cam == nil {
		return nil, fmt.Errorf("%w: canvas and camera are required", ErrNilArgument)
	}
	if clearColor == nil {
		clearColor = color.Black
	}
	return &Display{canvas: canvas, camera: cam, clearColor: clearColor}, nil
}

// Camera returns the owned camera for read access.
func (d *Display) Camera() *camera.Camera { return d.camera }

// Canvas returns the target canvas.
func (d *Display) Canvas() Canvas { return d.canvas }

// Stats returns counters accumulated since the last Update.
func (d *Display) Stats() Stats { return d.stats }

// CameraPosition returns the camera position as a homogeneous point.
func (d *Display) CameraPosition() *mathutil.Matrix {
	p := d.camera.Position()
	return mathutil.Point(p[0], p[1], p[2])
}

// Resize forwards a window resize to the camera and, if supported, the canvas.
func (d *Display) Resize(width, height int) error {
	if err := d.camera.Resize(float64(width), float64(height)); err != nil {
		return err
	}
	if r, ok := d.canvas.(Resizer); ok {
		return r.Resize(width, height)
	}
	return nil
}

// SetOrientation replaces the camera orientation.
func (d *Display) SetOrientation(o [3]float64) { d.camera.SetOrientation(o) }

// Advance turns the camera by delta radians about each axis.
func (d *Display) Advance(delta [3]float64) { d.camera.Advance(delta) }

// Update clears the canvas and draws objects in order. A failing object
// is skipped; the remaining objects are still drawn and all errors are
// returned joined.
func (d *Display) Update(objects ...Drawable) error {
	d.stats = Stats{}
	d.canvas.Clear(d.clearColor)

	var errs []error
	for i, obj := range objects {
		if obj == nil {
			errs = append(errs, fmt.Errorf("display: object %d: %w", i, ErrNilArgument))
			continue
		}
		if err := obj.Draw(d); err != nil {
			logging.Logger().Warn("display: object skipped", "index", i, "err", err)
			errs = append(errs, fmt.Errorf("display: object %d: %w", i, err))
		}
	}
	logging.Logger().Debug("display: frame",
		"objects", len(objects),
		"lines", d.stats.Lines,
		"polygons", d.stats.Polygons,
		"dropped", d.stats.Dropped,
		"clipped", d.stats.Clipped)
	return errors.Join(errs...)
}
