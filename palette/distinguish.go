package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jkl1337/go-chromath"
)

var (
	// for XYZ-to-Lab conversion against the D65 white (95.047, 100, 108.883)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// RGB is an 8 bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// Hex returns the color in #rrggbb notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("R:%d G:%d B:%d", c.R, c.G, c.B)
}

// FromColor converts any color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// RGBToXyz converts an sRGB color to CIE XYZ (D65, Y in [0,100]). The
// matrix is the four digit sRGB matrix, kept literal so palette rankings
// do not depend on the primaries chromath derives its own matrix from.
func RGBToXyz(c RGB) chromath.XYZ {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)

	return chromath.XYZ{
		(r*0.4124 + g*0.3576 + b*0.1805) * 100,
		(r*0.2126 + g*0.7152 + b*0.0722) * 100,
		(r*0.0193 + g*0.1192 + b*0.9505) * 100,
	}
}

// XyzToLab converts CIE XYZ to L*a*b* relative to the D65 white point.
// xyz is on the Y in [0,100] scale of RGBToXyz.
func XyzToLab(xyz chromath.XYZ) chromath.Lab {
	return lab2Xyz.Invert(chromath.XYZ{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100})
}

// RGBToLab converts an sRGB color to its L*a*b* equivalent.
func RGBToLab(c RGB) chromath.Lab {
	return XyzToLab(RGBToXyz(c))
}

// inverse sRGB companding
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}
