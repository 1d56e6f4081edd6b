package image

import (
	"image"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/colorcard/palette"
)

type ColorCount struct {
	Color palette.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors returns a map of an image's opaque colors
// and the number of times each color occurs
func GetColors(img image.Image) map[palette.RGB]int {
	return countColors(img, true)
}

// RankColors orders colors by prevalence, most common first.
func RankColors(m map[palette.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant reduces img to at most n colors and returns them ranked by the
// number of pixels they cover.
func Dominant(img image.Image, n int) ColorCountList {
	if n <= 0 {
		return nil
	}
	o := image.NewNRGBA(img.Bounds())
	colorquant.NoDither.Quantize(img, o, n, false, true)

	cc := RankColors(countColors(o, false))
	if len(cc) > n {
		cc = cc[:n]
	}
	return cc
}

func countColors(img image.Image, opaqueOnly bool) map[palette.RGB]int {
	m := make(map[palette.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); opaqueOnly && a == 0 {
				continue
			}
			m[palette.FromColor(c)]++
		}
	}

	return m
}
