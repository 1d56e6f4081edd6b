package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorcard/card"
	"github.com/mmuldo/colorcard/palette"
	"github.com/mmuldo/colorcard/session"
)

// newSession builds a session from the configuration and loads the
// palette. A palette that fails to load is logged, not fatal: the session
// can still crop.
func newSession() (*session.Session, error) {
	m, e := palette.MetricByName(viper.GetString("metric"))
	if e != nil {
		return nil, e
	}

	captions, e := card.NewCaptions(viper.GetString("card.filename"), viper.GetString("card.status"))
	if e != nil {
		return nil, e
	}

	s := session.New(viper.GetFloat64("viewport.size"), m)
	s.SetCaptions(captions)
	s.Viewport().ZoomIn = viper.GetFloat64("zoom.in")
	s.Viewport().ZoomOut = viper.GetFloat64("zoom.out")

	path := viper.GetString("palette")
	f, e := os.Open(path)
	if e != nil {
		logger.Printf("palette %s: %v", path, e)
		return s, nil
	}
	defer f.Close()

	records, e := s.LoadPalette(f)
	for _, r := range records {
		if r.Status != palette.RecordValid {
			logger.Printf("palette %s: entry %d dropped: %s", path, r.Index, r.Reason)
		}
	}
	if e != nil {
		logger.Printf("palette %s: %v", path, e)
	}
	return s, nil
}

// cropFlags are the viewport operations shared by commands that crop.
type cropFlags struct {
	pan    string
	zoom   int
	pivot  string
	sample string
}

func (c *cropFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.pan, "pan", "", "pan the image by dx,dy viewport pixels")
	cmd.Flags().IntVar(&c.zoom, "zoom", 0, "zoom steps, positive zooms in, negative out")
	cmd.Flags().StringVar(&c.pivot, "pivot", "", "zoom pivot x,y (default viewport center)")
	cmd.Flags().StringVar(&c.sample, "sample", "", "viewport point x,y to sample (default center)")
}

// apply replays the flags on s and locks the crop.
func (c *cropFlags) apply(s *session.Session) error {
	center := s.Viewport().Size / 2

	px, py, e := parsePoint(c.pivot, center, center)
	if e != nil {
		return fmt.Errorf("--pivot: %w", e)
	}
	// one wheel notch per step, settled after each like a redraw
	for i := 0; i < c.zoom; i++ {
		s.ZoomStep(true, px, py)
		s.Viewport().AdjustBoundary()
	}
	for i := 0; i > c.zoom; i-- {
		s.ZoomStep(false, px, py)
		s.Viewport().AdjustBoundary()
	}

	dx, dy, e := parsePoint(c.pan, 0, 0)
	if e != nil {
		return fmt.Errorf("--pan: %w", e)
	}
	s.Pan(dx, dy)

	s.Confirm()
	return nil
}

func (c *cropFlags) samplePoint(s *session.Session) (int, int, error) {
	center := s.Viewport().Size / 2
	x, y, e := parsePoint(c.sample, center, center)
	if e != nil {
		return 0, 0, fmt.Errorf("--sample: %w", e)
	}
	return int(x), int(y), nil
}

// parsePoint parses "x,y", returning the defaults for an empty string.
func parsePoint(s string, dx, dy float64) (float64, float64, error) {
	if s == "" {
		return dx, dy, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", s)
	}
	x, e := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if e != nil {
		return 0, 0, e
	}
	y, e := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if e != nil {
		return 0, 0, e
	}
	return x, y, nil
}

// swatch prints a colored block followed by text, like a terminal theme
// preview.
func swatch(c palette.RGB, text string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm██\033[0m %s", c.R, c.G, c.B, text)
}
