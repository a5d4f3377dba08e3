// Package camera converts world-space points to screen-space points through
// a Tait-Bryan oriented perspective camera.
package camera

import (
	"errors"
	"fmt"
	"math"

	"cuboid-renderer/internal/mathutil"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidFrustum is returned when near/far/fov are out of range.
	ErrInvalidFrustum = errors.New("camera: invalid frustum")
	// ErrInvalidViewport is returned for non-positive window dimensions.
	ErrInvalidViewport = errors.New("camera: invalid viewport")
)

// Default frustum settings.
const (
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// DefaultFOV is 45° in radians.
var DefaultFOV = mathutil.Deg2Rad(45)

// eyeOffset is the display-surface offset applied after projection.
var eyeOffset = [3]float64{0.5, 0.5, 0.5}

// Config holds the fixed frustum and initial window size.
type Config struct {
	Width, Height float64
	Near, Far     float64
	FOV           float64 // radians, vertical
}

// Validate checks 0 < near < far, 0 < fov < π and positive dimensions.
func (c Config) Validate() error {
	if !(c.Near > 0 && c.Near < c.Far) {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidFrustum, c.Near, c.Far)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return fmt.Errorf("%w: fov=%g", ErrInvalidFrustum, c.FOV)
	}
	if !(c.Width > 0 && c.Height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, c.Width, c.Height)
	}
	return nil
}

// Projected is a screen-space point. Depth is the pre-divide clip w, i.e.
// the distance in front of the camera along its view axis; it is compared
// against Near for clipping and is not a z-buffer value.
type Projected struct {
	X, Y  float64
	Depth float64
}

// Camera holds position, orientation and viewport state.
// It is owned by a single display and is not safe for concurrent mutation.
type Camera struct {
	position    [3]float64
	orientation [3]float64 // radians about X, Y, Z
	width       float64
	height      float64
	near        float64
	far         float64
	fov         float64

	offset *mathutil.Matrix
}

// New returns a camera at position with the given orientation.
func New(cfg Config, position, orientation [3]float64) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ex, ey, ez := eyeOffset[0], eyeOffset[1], eyeOffset[2]
	offset, err := mathutil.FromSlice(4, 4, []float64{
		1, 0, ex / ez, 0,
		0, 1, ey / ez, 0,
		0, 0, 1 / ez, 0,
		0, 0, 0, 1,
	})
	if err != nil {
		return nil, err
	}
	return &Camera{
		position:    position,
		orientation: orientation,
		width:       cfg.Width,
		height:      cfg.Height,
		near:        cfg.Near,
		far:         cfg.Far,
		fov:         cfg.FOV,
		offset:      offset,
	}, nil
}

func (c *Camera) Position() [3]float64    { return c.position }
func (c *Camera) Orientation() [3]float64 { return c.orientation }
func (c *Camera) Near() float64           { return c.near }
func (c *Camera) Far() float64            { return c.far }
func (c *Camera) FOV() float64            { return c.fov }

// Dimensions returns the current window width and height.
func (c *Camera) Dimensions() (float64, float64) { return c.width, c.height }

// SetPosition moves the camera.
func (c *Camera) SetPosition(p [3]float64) { c.position = p }

// SetOrientation replaces the Euler angles.
func (c *Camera) SetOrientation(o [3]float64) { c.orientation = o }

// Advance adds delta to the current orientation.
func (c *Camera) Advance(delta [3]float64) {
	for i := range c.orientation {
		c.orientation[i] += delta[i]
	}
}

// Resize updates the window dimensions read by the next projection.
func (c *Camera) Resize(width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, width, height)
	}
	c.width, c.height = width, height
	return nil
}

// Projection returns the perspective matrix for the current aspect ratio.
func (c *Camera) Projection() *mathutil.Matrix {
	return mathutil.FromMat4(mgl64.Perspective(c.fov, c.width/c.height, c.near, c.far))
}

// View returns RotX·RotY·RotZ for the current orientation.
func (c *Camera) View() *mathutil.Matrix {
	return mathutil.TaitBryan(c.orientation)
}

// Clip returns Projection · View · (point − position) for a homogeneous
// 4×1 point.
func (c *Camera) Clip(point *mathutil.Matrix) (*mathutil.Matrix, error) {
	if point == nil {
		return nil, mathutil.ErrNilArgument
	}
	rel, err := point.Sub(mathutil.Vector(c.position[0], c.position[1], c.position[2]))
	if err != nil {
		return nil, fmt.Errorf("camera: project: %w", err)
	}
	viewProj := c.Projection().MustMul(c.View())
	return viewProj.MustMul(rel), nil
}

// Project converts a world-space homogeneous point to screen space.
// The result is undefined when the clip w is zero.
func (c *Camera) Project(point *mathutil.Matrix) (Projected, error) {
	clip, err := c.Clip(point)
	if err != nil {
		return Projected{}, err
	}
	f := c.offset.MustMul(clip)
	w := f.At(3, 0)
	return Projected{
		X:     f.At(0, 0) / w,
		Y:     f.At(1, 0) / w,
		Depth: clip.At(3, 0),
	}, nil
}
