// Package card composes the printable color card: the cropped photo, a
// title and comment, the sampled RGB value and a block of the matched
// palette color.
package card

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mmuldo/colorcard/palette"
)

var (
	paper       = color.RGBA{0xff, 0xff, 0xf0, 0xff}
	ink         = color.RGBA{0x33, 0x33, 0x33, 0xff}
	unmatched   = color.RGBA{220, 220, 220, 0xff}
	placeholder = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// Layout holds the card geometry in millimetres.
type Layout struct {
	WidthMM, HeightMM float64
	TopMM, SideMM     float64
	BlockMM           float64
	// pixels per millimetre
	DPI float64
	// opacity of the matched color over the paper
	Tint float64
}

// A4 is the default card: A4 portrait at 3 px/mm.
var A4 = Layout{
	WidthMM:  210,
	HeightMM: 297,
	TopMM:    35.01,
	SideMM:   30,
	BlockMM:  20,
	DPI:      3,
	Tint:     0.3,
}

func (l Layout) px(mm float64) float64 { return mm * l.DPI }

// Size returns the card size in pixels.
func (l Layout) Size() (w, h int) {
	return int(math.Round(l.px(l.WidthMM))), int(math.Round(l.px(l.HeightMM)))
}

// ImageSize is the edge of the square photo area in pixels, which is also
// the resolution the crop should be sampled at.
func (l Layout) ImageSize() int {
	return int(math.Round(l.px(l.WidthMM - 2*l.SideMM)))
}

// Text is the user supplied copy of a card.
type Text struct {
	Title, Comment string
}

// Compose draws a card. crop is scaled into the photo area; m may be nil
// while no color has been picked.
func Compose(l Layout, f *Faces, crop image.Image, m *palette.MatchResult, txt Text) *image.RGBA {
	w, h := l.Size()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	k := l.DPI / 3
	cx := float64(w) / 2

	draw.Draw(dst, dst.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	if m != nil {
		a := uint8(math.Round(l.Tint * 255))
		tint := color.NRGBA{m.Color.R, m.Color.G, m.Color.B, a}
		draw.Draw(dst, dst.Bounds(), image.NewUniform(tint), image.Point{}, draw.Over)
	} else {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(unmatched), image.Point{}, draw.Src)
	}

	side := l.px(l.SideMM)
	top := l.px(l.TopMM)
	size := float64(l.ImageSize())
	if crop != nil {
		r := image.Rect(round(side), round(top), round(side+size), round(top+size))
		draw.CatmullRom.Scale(dst, r, crop, crop.Bounds(), draw.Src, nil)
	}

	title := txt.Title
	if title == "" {
		title = "TITLE"
	}
	titleY := top + size + 15*l.DPI
	width := drawCentered(dst, f.Title, ink, title, cx, titleY)
	underline := image.Rect(round(cx-width/2), round(titleY+5*k), round(cx+width/2), round(titleY+5*k)+1)
	draw.Draw(dst, underline, image.NewUniform(ink), image.Point{}, draw.Src)

	comment := txt.Comment
	if comment == "" {
		comment = "Comment"
	}
	commentY := titleY + 28*k + 20*k
	drawCentered(dst, f.Comment, ink, comment, cx, commentY)

	rgbY := commentY + 20*k + 55*k
	value := "R:--- G:--- B:---"
	if m != nil {
		value = m.Sample.String()
	}
	drawCentered(dst, f.Value, ink, value, cx, rgbY)

	blockH := l.px(l.BlockMM)
	bottom := float64(h) - l.px(l.SideMM)
	block := image.Rect(round(side), round(bottom-blockH), round(side+size), round(bottom))
	fill, name := color.Color(placeholder), "Pick a color"
	if m != nil {
		fill, name = m.Color.RGB, m.Color.Name
	}
	draw.Draw(dst, block, image.NewUniform(fill), image.Point{}, draw.Src)
	drawCentered(dst, f.Name, color.White, name, cx, bottom-blockH/2+5*k)

	return dst
}

// drawCentered draws s with its baseline at y, centered on x, and returns
// the text width.
func drawCentered(dst draw.Image, face font.Face, c color.Color, s string, x, y float64) float64 {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := float64(d.MeasureString(s)) / 64
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round((x - width/2) * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	d.DrawString(s)
	return width
}

func round(v float64) int { return int(math.Round(v)) }
