// Package session ties one viewport, one palette and the current color
// match together. Each Session is independent; callers drive it with plain
// method calls from whatever event source they have.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/mmuldo/colorcard/card"
	"github.com/mmuldo/colorcard/palette"
	"github.com/mmuldo/colorcard/viewport"
)

// ErrNotConfirmed is returned by Sample before the crop is locked.
var ErrNotConfirmed = errors.New("crop not confirmed")

// Session is the state of one color card being made.
type Session struct {
	view    *viewport.Transform
	index   *palette.Index
	loadErr error

	captions *card.Captions

	sample *palette.RGB
	match  *palette.MatchResult
}

// New returns a session with a size x size viewport matching with m.
func New(size float64, m palette.Metric) *Session {
	return &Session{
		view:     viewport.New(size),
		index:    palette.NewIndex(m),
		loadErr:  palette.ErrNoMatch,
		captions: defaultCaptions,
	}
}

var defaultCaptions = card.MustCaptions("", "")

// Captions returns the templates used for the status line and the export
// file name.
func (s *Session) Captions() *card.Captions { return s.captions }

// SetCaptions replaces the caption templates. nil restores the defaults.
func (s *Session) SetCaptions(c *card.Captions) {
	if c == nil {
		c = defaultCaptions
	}
	s.captions = c
}

// Viewport exposes the transform for rendering.
func (s *Session) Viewport() *viewport.Transform { return s.view }

// Palette exposes the loaded palette.
func (s *Session) Palette() *palette.Index { return s.index }

// LoadPalette (re)loads the palette. A failure disables matching but
// leaves the viewport usable.
func (s *Session) LoadPalette(r io.Reader) ([]palette.Record, error) {
	records, e := s.index.Load(r)
	s.loadErr = e
	s.clearMatch()
	return records, e
}

// OpenImage starts over with a new w x h source.
func (s *Session) OpenImage(w, h int) {
	s.view.Initialize(w, h)
	s.clearMatch()
}

func (s *Session) Pan(dx, dy float64) { s.view.Pan(dx, dy) }

func (s *Session) Zoom(factor, px, py float64) { s.view.Zoom(factor, px, py) }

func (s *Session) ZoomStep(in bool, px, py float64) { s.view.ZoomStep(in, px, py) }

// Confirm locks the crop.
func (s *Session) Confirm() bool { return s.view.Confirm() }

// Sample records the color read at viewport point (vx, vy) and matches it
// against the palette. The sample is kept even when matching fails.
func (s *Session) Sample(vx, vy float64, c palette.RGB) (palette.MatchResult, error) {
	if s.view.State() != viewport.Confirmed {
		return palette.MatchResult{}, ErrNotConfirmed
	}
	if _, _, ok := s.view.SourcePoint(vx, vy); !ok {
		return palette.MatchResult{}, fmt.Errorf("sample point (%g, %g) outside the viewport", vx, vy)
	}

	s.sample = &c
	s.match = nil

	m, e := s.index.FindClosest(c)
	if e != nil {
		return palette.MatchResult{}, e
	}
	s.match = &m
	return m, nil
}

// LastSample returns the most recent sample.
func (s *Session) LastSample() (palette.RGB, bool) {
	if s.sample == nil {
		return palette.RGB{}, false
	}
	return *s.sample, true
}

// Match returns the current match.
func (s *Session) Match() (palette.MatchResult, bool) {
	if s.match == nil {
		return palette.MatchResult{}, false
	}
	return *s.match, true
}

// ExportReady reports whether a card can be exported.
func (s *Session) ExportReady() bool {
	return s.match != nil && s.view.State() == viewport.Confirmed
}

// Status describes the session for the user.
func (s *Session) Status() string {
	var le *palette.LoadError
	switch {
	case errors.As(s.loadErr, &le):
		return "could not load color data: " + le.Err.Error()
	case errors.Is(s.loadErr, palette.ErrEmptyPalette):
		return "color data is empty"
	case !s.index.Loaded():
		return "color data not loaded"
	case s.view.State() == viewport.Empty:
		return "open an image"
	case s.view.State() == viewport.Initialized:
		return "pan and zoom, then confirm the crop"
	case s.match == nil:
		return "click the image to pick a color"
	}
	st, e := s.captions.Status(*s.match)
	if e != nil {
		return "status template: " + e.Error()
	}
	return st
}

func (s *Session) clearMatch() {
	s.sample = nil
	s.match = nil
}
