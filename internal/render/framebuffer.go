package render

import (
	"image"
	"image/color"

	"durotar/internal/game"
)

// Framebuffer is a software Target that rasterizes draws into an RGBA
// canvas, shrinking logical pixels by an integer scale.
type Framebuffer struct {
	scale int
	bg    color.RGBA
	img   *image.RGBA
}

// NewFramebuffer creates a canvas for a width x height logical screen. Each
// canvas pixel covers scale x scale logical pixels.
func NewFramebuffer(width, height, scale int, bg color.RGBA) *Framebuffer {
	if scale < 1 {
		scale = 1
	}
	w := (width + scale - 1) / scale
	h := (height + scale - 1) / scale
	fb := &Framebuffer{scale: scale, bg: bg, img: image.NewRGBA(image.Rect(0, 0, w, h))}
	fb.Clear()
	return fb
}

// Image returns the canvas. It is reused between frames.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Clear fills the canvas with the background color.
func (f *Framebuffer) Clear() {
	b := f.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			f.img.SetRGBA(x, y, f.bg)
		}
	}
}

// Draw implements Target with nearest-neighbor sampling. A canvas pixel is
// covered when its center falls inside the destination rectangle. Source
// pixels under half alpha are transparent.
func (f *Framebuffer) Draw(src image.Image, x, y, w, h int) {
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	s := f.scale
	fb := f.img.Bounds()

	fy0 := max(game.FloorDiv(y, s), fb.Min.Y)
	fy1 := min(game.FloorDiv(y+h-1, s), fb.Max.Y-1)
	fx0 := max(game.FloorDiv(x, s), fb.Min.X)
	fx1 := min(game.FloorDiv(x+w-1, s), fb.Max.X-1)

	for fy := fy0; fy <= fy1; fy++ {
		ly := fy*s + s/2
		if ly < y || ly >= y+h {
			continue
		}
		v := sb.Min.Y + (ly-y)*sb.Dy()/h
		for fx := fx0; fx <= fx1; fx++ {
			lx := fx*s + s/2
			if lx < x || lx >= x+w {
				continue
			}
			u := sb.Min.X + (lx-x)*sb.Dx()/w
			r, g, b, a := src.At(u, v).RGBA()
			if a < 0x8000 {
				continue
			}
			f.img.SetRGBA(fx, fy, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
		}
	}
}

// AverageColor returns the mean of the opaque pixels of img.
func AverageColor(img image.Image) color.RGBA {
	var rs, gs, bs, n uint64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			rs += uint64(r >> 8)
			gs += uint64(g >> 8)
			bs += uint64(bl >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{uint8(rs / n), uint8(gs / n), uint8(bs / n), 255}
}
