package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/mmuldo/colorcard/palette"
	"github.com/mmuldo/colorcard/viewport"
)

// Render draws src into a square image the size of the viewport, placed
// by t. t is brought within bounds first.
func Render(src image.Image, t *viewport.Transform) *image.NRGBA {
	size := int(math.Round(t.Size))
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if t.State() == viewport.Empty {
		return dst
	}

	t.AdjustBoundary()
	origin := src.Bounds().Min
	s2d := f64.Aff3{
		t.Scale, 0, t.OffsetX - t.Scale*float64(origin.X),
		0, t.Scale, t.OffsetY - t.Scale*float64(origin.Y),
	}
	draw.ApproxBiLinear.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)
	return dst
}

// Sample reads the pixel at (x, y) of a rendered viewport.
func Sample(view image.Image, x, y int) palette.RGB {
	b := view.Bounds()
	return palette.FromColor(view.At(b.Min.X+x, b.Min.Y+y))
}

// Crop re-samples the source rectangle r of src into a size x size image.
func Crop(src image.Image, r viewport.Rect, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if r.W <= 0 || r.H <= 0 {
		return dst
	}

	origin := src.Bounds().Min
	kx := float64(size) / r.W
	ky := float64(size) / r.H
	s2d := f64.Aff3{
		kx, 0, -kx * (r.X + float64(origin.X)),
		0, ky, -ky * (r.Y + float64(origin.Y)),
	}
	draw.CatmullRom.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)
	return dst
}
