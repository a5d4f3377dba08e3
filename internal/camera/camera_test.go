package camera

import (
	"errors"
	"math"
	"testing"

	"cuboid-renderer/internal/mathutil"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := New(Config{Width: 800, Height: 600, Near: DefaultNear, Far: DefaultFar, FOV: DefaultFOV}, [3]float64{}, [3]float64{})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"ok", Config{Width: 1, Height: 1, Near: 0.1, Far: 10, FOV: 1}, nil},
		{"zero near", Config{Width: 1, Height: 1, Near: 0, Far: 10, FOV: 1}, ErrInvalidFrustum},
		{"near past far", Config{Width: 1, Height: 1, Near: 10, Far: 1, FOV: 1}, ErrInvalidFrustum},
		{"fov pi", Config{Width: 1, Height: 1, Near: 0.1, Far: 10, FOV: math.Pi}, ErrInvalidFrustum},
		{"zero height", Config{Width: 1, Height: 0, Near: 0.1, Far: 10, FOV: 1}, ErrInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProjectionFormula(t *testing.T) {
	c := newTestCamera(t)
	aspect := 800.0 / 600.0
	f := 1 / math.Tan(c.FOV()/2)
	p := c.Projection()
	checks := []struct {
		r, col int
		want   float64
	}{
		{0, 0, f / aspect},
		{1, 1, f},
		{2, 2, -(c.Far() + c.Near()) / (c.Far() - c.Near())},
		{2, 3, -2 * c.Far() * c.Near() / (c.Far() - c.Near())},
		{3, 2, -1},
		{3, 3, 0},
	}
	for _, ch := range checks {
		if got := p.At(ch.r, ch.col); math.Abs(got-ch.want) > 1e-12 {
			t.Errorf("P[%d,%d] = %v, want %v", ch.r, ch.col, got, ch.want)
		}
	}
}

func TestProjectNearPlaneDepth(t *testing.T) {
	c := newTestCamera(t)
	got, err := c.Project(mathutil.Point(0, 0, -c.Near()))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Depth-c.Near()) > 1e-12 {
		t.Errorf("Depth = %v, want %v", got.Depth, c.Near())
	}

	behind, err := c.Project(mathutil.Point(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if behind.Depth >= c.Near() {
		t.Errorf("point behind camera has depth %v", behind.Depth)
	}
}

func TestProjectAppliesEyeOffset(t *testing.T) {
	c := newTestCamera(t)
	pt := mathutil.Point(1, -0.5, -5)
	clip, err := c.Clip(pt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Project(pt)
	if err != nil {
		t.Fatal(err)
	}
	x, y, z, w := clip.At(0, 0), clip.At(1, 0), clip.At(2, 0), clip.At(3, 0)
	if math.Abs(got.X-(x+z)/w) > 1e-12 || math.Abs(got.Y-(y+z)/w) > 1e-12 {
		t.Errorf("Project = (%v, %v), want (%v, %v)", got.X, got.Y, (x+z)/w, (y+z)/w)
	}
	if got.Depth != w {
		t.Errorf("Depth = %v, want clip w %v", got.Depth, w)
	}
}

func TestProjectIsPure(t *testing.T) {
	c := newTestCamera(t)
	pt := mathutil.Point(0.3, 0.2, -4)
	a, _ := c.Project(pt)
	b, _ := c.Project(pt)
	if a != b {
		t.Errorf("Project not deterministic: %v vs %v", a, b)
	}
	if !pt.Equal(mathutil.Point(0.3, 0.2, -4), 0) {
		t.Error("Project mutated its input")
	}
}

func TestOrientationTurnsView(t *testing.T) {
	c := newTestCamera(t)
	// Turning the camera a half turn about Y brings +z in front of it.
	c.SetOrientation([3]float64{0, math.Pi, 0})
	got, err := c.Project(mathutil.Point(0, 0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Depth-5) > 1e-9 {
		t.Errorf("Depth = %v, want 5", got.Depth)
	}

	c.SetOrientation([3]float64{})
	c.Advance([3]float64{0, 0, math.Pi / 180})
	c.Advance([3]float64{0, 0, math.Pi / 180})
	if o := c.Orientation(); math.Abs(o[2]-math.Pi/90) > 1e-15 {
		t.Errorf("orientation z = %v after two advances", o[2])
	}
}

func TestPositionTranslates(t *testing.T) {
	c := newTestCamera(t)
	c.SetPosition([3]float64{0, 0, 10})
	got, err := c.Project(mathutil.Point(0, 0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Depth-5) > 1e-9 {
		t.Errorf("Depth = %v, want 5", got.Depth)
	}
}

func TestResize(t *testing.T) {
	c := newTestCamera(t)
	pt := mathutil.Point(1, 0, -5)
	before, _ := c.Project(pt)
	if err := c.Resize(400, 600); err != nil {
		t.Fatal(err)
	}
	after, _ := c.Project(pt)
	if before.X == after.X {
		t.Error("resize did not change the aspect used by Project")
	}
	if err := c.Resize(0, 10); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("Resize(0, 10) = %v", err)
	}
	if w, h := c.Dimensions(); w != 400 || h != 600 {
		t.Errorf("Dimensions = %v×%v after failed resize", w, h)
	}
}

func TestProjectNil(t *testing.T) {
	c := newTestCamera(t)
	if _, err := c.Project(nil); !errors.Is(err, mathutil.ErrNilArgument) {
		t.Errorf("Project(nil) = %v", err)
	}
	if _, err := c.Project(mathutil.Column(1, 2, 3)); !errors.Is(err, mathutil.ErrShapeMismatch) {
		t.Errorf("Project(3×1) = %v", err)
	}
}
