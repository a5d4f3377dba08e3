package raster

import (
	"fmt"
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat RGBA slice for cache
// locality. It implements display.Canvas; drawing is clipped to the buffer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, non-premultiplied, len = W*H*4
}

// NewFrameBuffer allocates a zeroed (transparent) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Resize reallocates the buffer when the dimensions change.
func (fb *FrameBuffer) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	if w == fb.Width && h == fb.Height {
		return nil
	}
	fb.Width, fb.Height = w, h
	fb.Color = make([]uint8, w*h*4)
	return nil
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c color.Color) {
	r, g, b, a := nrgba(c)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
}

// Set writes one pixel; out-of-range coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = r
	fb.Color[i+1] = g
	fb.Color[i+2] = b
	fb.Color[i+3] = a
}

// At returns the colour at (x, y).
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.NRGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// Premultiplied writes the buffer with alpha-premultiplied colour into dst,
// growing it if needed, and returns it. The arithmetic matches
// color.RGBAModel so uploads agree with the standard image conversions.
func (fb *FrameBuffer) Premultiplied(dst []byte) []byte {
	if cap(dst) < len(fb.Color) {
		dst = make([]byte, len(fb.Color))
	}
	dst = dst[:len(fb.Color)]
	for i := 0; i < len(fb.Color); i += 4 {
		a := uint32(fb.Color[i+3])
		if a == 0xff {
			copy(dst[i:i+4], fb.Color[i:i+4])
			continue
		}
		a |= a << 8
		for k := 0; k < 3; k++ {
			c := uint32(fb.Color[i+k])
			c |= c << 8
			dst[i+k] = uint8(c * a / 0xffff >> 8)
		}
		dst[i+3] = fb.Color[i+3]
	}
	return dst
}

func nrgba(c color.Color) (r, g, b, a uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, n.A
}
