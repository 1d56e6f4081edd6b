package palette

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var klch = &deltae.KLChDefault

const pow25to7 = 6103515625.0 // 25^7

// Metric scores the perceptual difference between two Lab colors.
// Lower values mean more similar colors.
type Metric func(std, sample chromath.Lab) float64

// Distance is a reduced form of CIEDE2000: the a* axis is warped by the
// chroma dependent G factor and the hue difference is taken along the
// shorter arc, but the lightness, chroma and hue terms are combined
// without the S_L/S_C/S_H weights and the R_T rotation term.
func Distance(std, sample chromath.Lab) float64 {
	l1, a1, b1 := std[0], std[1], std[2]
	l2, a2, b2 := sample[0], sample[1], sample[2]

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	avgC7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(avgC7/(avgC7+pow25to7)))

	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	dL := l2 - l1
	dC := c2p - c1p

	var dh float64
	if c1p*c2p != 0 {
		dh = hueAngle(b2, a2p) - hueAngle(b1, a1p)
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(dh*math.Pi/360)

	return math.Sqrt(dL*dL + dC*dC + dH*dH)
}

// CIEDE2000 is the complete CIE 2000 color difference with the default
// weighting factors.
func CIEDE2000(std, sample chromath.Lab) float64 {
	return deltae.CIE2000(std, sample, klch)
}

// MetricByName returns the metric registered under name. The empty name
// selects Distance.
func MetricByName(name string) (Metric, error) {
	switch name {
	case "", "simplified":
		return Distance, nil
	case "ciede2000":
		return CIEDE2000, nil
	default:
		return nil, fmt.Errorf("unknown color metric %q", name)
	}
}

// hue angle in degrees, normalized to [0, 360)
func hueAngle(b, a float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}
