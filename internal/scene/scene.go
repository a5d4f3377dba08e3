// Package scene holds the ordered list of objects drawn each frame.
package scene

import (
	"errors"
	"fmt"
	"image/color"

	"cuboid-renderer/internal/config"
	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/mathutil"
	"cuboid-renderer/internal/shape"
)

// Scene is an ordered list of drawables. Objects are drawn in insertion
// order, later objects over earlier ones.
type Scene struct {
	objects []display.Drawable
}

// New returns a scene holding objects.
func New(objects ...display.Drawable) *Scene {
	return &Scene{objects: objects}
}

// Add appends objects to the draw order.
func (s *Scene) Add(objects ...display.Drawable) {
	s.objects = append(s.objects, objects...)
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Objects returns the draw list.
func (s *Scene) Objects() []display.Drawable {
	return append([]display.Drawable(nil), s.objects...)
}

// Draw submits every object, continuing past failures.
func (s *Scene) Draw(sub display.Submitter) error {
	var errs []error
	for i, obj := range s.objects {
		if err := obj.Draw(sub); err != nil {
			errs = append(errs, fmt.Errorf("scene: object %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Build constructs the scene described by cfg.
func Build(objects []config.Object) (*Scene, error) {
	s := New()
	for i, o := range objects {
		solid, err := build(o)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", i, err)
		}
		s.Add(solid)
	}
	return s, nil
}

func build(o config.Object) (*shape.Solid, error) {
	if o.Kind != "" && o.Kind != shape.KindBox.String() {
		return nil, fmt.Errorf("unknown kind %q", o.Kind)
	}
	rot := [3]float64{
		mathutil.Deg2Rad(o.RotationDeg[0]),
		mathutil.Deg2Rad(o.RotationDeg[1]),
		mathutil.Deg2Rad(o.RotationDeg[2]),
	}
	solid := shape.NewCuboid(o.Position, rot, o.Extents)

	var base color.Color = shape.DefaultColor
	if o.Color != "" {
		c, err := config.ParseColor(o.Color)
		if err != nil {
			return nil, err
		}
		base = c
	}

	switch o.Style {
	case "wireframe":
		solid.SetWireframe(base)
	case "palette":
		if len(o.Colors) == 0 {
			return nil, fmt.Errorf("palette style needs colors: %w", shape.ErrArityMismatch)
		}
		fallthrough
	default:
		if len(o.Colors) == 0 {
			solid.SetColor(base)
			break
		}
		palette := make([]color.Color, len(o.Colors))
		for i, h := range o.Colors {
			c, err := config.ParseColor(h)
			if err != nil {
				return nil, err
			}
			palette[i] = c
		}
		if err := solid.SetPalette(palette); err != nil {
			return nil, err
		}
	}
	return solid, nil
}
