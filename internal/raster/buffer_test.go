package raster

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestClearAndImage(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Clear(blue)
	img := fb.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.NRGBAAt(x, y); got != blue {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, blue)
			}
		}
	}
}

func TestResize(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	if err := fb.Resize(5, 7); err != nil {
		t.Fatal(err)
	}
	if len(fb.Color) != 5*7*4 {
		t.Errorf("len = %d", len(fb.Color))
	}
	if err := fb.Resize(0, 1); err == nil {
		t.Error("Resize(0, 1) succeeded")
	}
}

func TestPremultiplied(t *testing.T) {
	fb := NewFrameBuffer(256, 1)
	for a := 0; a < 256; a++ {
		fb.Set(a, 0, 200, 100, 50, uint8(a))
	}
	got := fb.Premultiplied(nil)
	if len(got) != len(fb.Color) {
		t.Fatalf("len = %d, want %d", len(got), len(fb.Color))
	}
	for x := 0; x < 256; x++ {
		want := color.RGBAModel.Convert(fb.At(x, 0)).(color.RGBA)
		px := color.RGBA{got[x*4], got[x*4+1], got[x*4+2], got[x*4+3]}
		if px != want {
			t.Fatalf("alpha %d: got %v, want %v", x, px, want)
		}
	}
	if fb.At(128, 0).R != 200 {
		t.Error("Premultiplied modified the buffer")
	}

	reuse := make([]byte, 0, len(fb.Color))
	if out := fb.Premultiplied(reuse); &out[0] != &reuse[:1][0] {
		t.Error("Premultiplied did not reuse dst")
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 image.Point
		want   []image.Point
	}{
		{"horizontal", image.Pt(1, 2), image.Pt(5, 2), []image.Point{{1, 2}, {3, 2}, {5, 2}}},
		{"vertical", image.Pt(3, 0), image.Pt(3, 6), []image.Point{{3, 0}, {3, 3}, {3, 6}}},
		{"diagonal", image.Pt(0, 0), image.Pt(4, 4), []image.Point{{0, 0}, {2, 2}, {4, 4}}},
		{"single pixel", image.Pt(2, 2), image.Pt(2, 2), []image.Point{{2, 2}}},
		{"off-screen start", image.Pt(-100, 3), image.Pt(4, 3), []image.Point{{0, 3}, {4, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(8, 8)
			fb.DrawLine(tt.p1, tt.p2, red)
			for _, p := range tt.want {
				if got := fb.At(p.X, p.Y); got != red {
					t.Errorf("%v = %v, want red", p, got)
				}
			}
		})
	}
}

func TestDrawLineFullyOutside(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.DrawLine(image.Pt(-50, -50), image.Pt(-10, 100), red)
	for i := 3; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 0 {
			t.Fatal("line outside the buffer touched pixels")
		}
	}
}

func TestFillPolygon(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillPolygon([]image.Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}, red)

	inside := []image.Point{{2, 2}, {5, 5}, {7, 7}}
	outside := []image.Point{{1, 1}, {8, 8}, {9, 5}, {5, 9}}
	for _, p := range inside {
		if fb.At(p.X, p.Y) != red {
			t.Errorf("%v not filled", p)
		}
	}
	for _, p := range outside {
		if fb.At(p.X, p.Y) == red {
			t.Errorf("%v filled", p)
		}
	}
}

func TestFillPolygonTriangleAndClipping(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillPolygon([]image.Point{{-20, -20}, {30, -20}, {-20, 30}}, blue)
	if fb.At(0, 0) != blue || fb.At(4, 4) != blue {
		t.Error("large triangle not filled inside the buffer")
	}
	if fb.At(9, 9) == blue {
		t.Error("pixel beyond the hypotenuse filled")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.FillPolygon([]image.Point{{0, 0}, {3, 3}}, red)
	fb.FillPolygon(nil, red)
	for i := 3; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 0 {
			t.Fatal("degenerate polygon drew pixels")
		}
	}
}
