package scene

import (
	"errors"
	"image/color"
	"testing"

	"cuboid-renderer/internal/config"
	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/mathutil"
	"cuboid-renderer/internal/shape"
)

type counter struct {
	lines, polygons int
	colors          []color.Color
}

func (c *counter) SubmitLine(_, _ *mathutil.Matrix, _ color.Color) error {
	c.lines++
	return nil
}

func (c *counter) SubmitPolygon(_ []*mathutil.Matrix, col color.Color) error {
	c.polygons++
	c.colors = append(c.colors, col)
	return nil
}

func (c *counter) CameraPosition() *mathutil.Matrix { return mathutil.Point(0, 0, 0) }

type drawFunc func(display.Submitter) error

func (f drawFunc) Draw(s display.Submitter) error { return f(s) }

func TestBuild(t *testing.T) {
	objs := []config.Object{
		{Kind: "box", Extents: [3]float64{1, 1, 1}, Position: [3]float64{0, 0, -5}},
		{Kind: "box", Extents: [3]float64{1, 2, 3}, Style: "wireframe", Color: "#00ff00"},
		{Kind: "box", Extents: [3]float64{1, 1, 1}, RotationDeg: [3]float64{0, 90, 0},
			Colors: []string{"#100", "#200", "#300", "#400", "#500", "#600"}},
	}
	s, err := Build(objs)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d", s.Len())
	}

	styles := []shape.Style{shape.StyleUniform, shape.StyleWireframe, shape.StylePalette}
	for i, obj := range s.Objects() {
		solid, ok := obj.(*shape.Solid)
		if !ok {
			t.Fatalf("object %d is %T", i, obj)
		}
		if solid.Style() != styles[i] {
			t.Errorf("object %d style = %v, want %v", i, solid.Style(), styles[i])
		}
	}
	third := s.Objects()[2].(*shape.Solid)
	if r := third.Rotation(); r[1] != mathutil.Deg2Rad(90) {
		t.Errorf("rotation = %v, want radians", r)
	}

	c := &counter{}
	if err := s.Draw(c); err != nil {
		t.Fatal(err)
	}
	if c.polygons != 12 || c.lines != 12 {
		t.Errorf("submitted %d polygons and %d lines", c.polygons, c.lines)
	}
	if c.colors[0] != shape.DefaultColor {
		t.Errorf("first object colour = %v, want default", c.colors[0])
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  config.Object
		want error
	}{
		{"kind", config.Object{Kind: "cone"}, nil},
		{"colour", config.Object{Color: "nope"}, config.ErrInvalidColor},
		{"palette colour", config.Object{Colors: []string{"#fff", "x"}}, config.ErrInvalidColor},
		{"palette arity", config.Object{Colors: []string{"#fff"}}, shape.ErrArityMismatch},
		{"empty palette", config.Object{Style: "palette"}, shape.ErrArityMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build([]config.Object{tt.obj})
			if err == nil {
				t.Fatal("Build succeeded")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDrawOrderAndErrors(t *testing.T) {
	var order []int
	boom := errors.New("boom")
	mk := func(i int, err error) display.Drawable {
		return drawFunc(func(display.Submitter) error {
			order = append(order, i)
			return err
		})
	}
	s := New(mk(0, nil), mk(1, boom))
	s.Add(mk(2, nil))

	err := s.Draw(&counter{})
	if !errors.Is(err, boom) {
		t.Errorf("Draw err = %v", err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v", order)
	}
}
