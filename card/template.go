package card

import (
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorcard/palette"
)

// Default caption templates.
const (
	DefaultFilename = "ColorCard_{{ name|safe }}.png"
	DefaultStatus   = "closest: {{ name|safe }} (ΔE: {{ distance|floatformat:2 }})"
)

// Captions renders the texts that accompany a match: the status line shown
// to the user and the file name of the exported card.
type Captions struct {
	filename *pongo2.Template
	status   *pongo2.Template
}

// NewCaptions compiles the two templates. Empty strings select the
// defaults.
func NewCaptions(filename, status string) (*Captions, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	if status == "" {
		status = DefaultStatus
	}

	var c Captions
	var e error
	if c.filename, e = pongo2.FromString(filename); e != nil {
		return nil, e
	}
	if c.status, e = pongo2.FromString(status); e != nil {
		return nil, e
	}
	return &c, nil
}

// MustCaptions is like NewCaptions but panics if a template does not
// compile.
func MustCaptions(filename, status string) *Captions {
	c, e := NewCaptions(filename, status)
	if e != nil {
		panic(e)
	}
	return c
}

// Filename returns the export file name for m. Path separators in the
// rendered name are replaced.
func (c *Captions) Filename(m palette.MatchResult) (string, error) {
	s, e := c.filename.Execute(context(m))
	if e != nil {
		return "", e
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, s), nil
}

// Status returns the user facing description of m.
func (c *Captions) Status(m palette.MatchResult) (string, error) {
	return c.status.Execute(context(m))
}

func context(m palette.MatchResult) pongo2.Context {
	return pongo2.Context{
		"name":     m.Color.Name,
		"hex":      m.Color.Hex(),
		"r":        m.Color.R,
		"g":        m.Color.G,
		"b":        m.Color.B,
		"distance": m.Distance,
		"sample":   m.Sample.String(),
	}
}
