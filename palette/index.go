package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"sort"

	"github.com/jkl1337/go-chromath"
)

var (
	// ErrEmptyPalette is returned by a load that produced no valid entries.
	ErrEmptyPalette = errors.New("palette has no valid colors")

	// ErrNoMatch is returned when matching against an unloaded palette.
	ErrNoMatch = errors.New("palette not loaded")
)

// LoadError reports a palette source that could not be read or is not a
// JSON array.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return "palette load failed: " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// MatchResult is the outcome of a palette lookup.
type MatchResult struct {
	Color    ReferenceColor
	Distance float64
	Sample   RGB
}

// Index holds a loaded palette and finds the entries closest to a color.
// An Index is not safe for concurrent use.
type Index struct {
	metric Metric
	colors []ReferenceColor
	labs   []chromath.Lab
	loaded bool
}

// NewIndex returns an empty index scoring with m. A nil m selects Distance.
func NewIndex(m Metric) *Index {
	if m == nil {
		m = Distance
	}
	return &Index{metric: m}
}

// Load replaces the palette with the valid entries of the JSON array read
// from r and returns the classification of every entry. On error the index
// is left unloaded.
func (ix *Index) Load(r io.Reader) ([]Record, error) {
	ix.reset()

	data, e := ioutil.ReadAll(r)
	if e != nil {
		return nil, &LoadError{e}
	}

	var raws []json.RawMessage
	if e := json.Unmarshal(data, &raws); e != nil {
		return nil, &LoadError{fmt.Errorf("expected a JSON array: %w", e)}
	}
	if raws == nil {
		return nil, &LoadError{errors.New("expected a JSON array, got null")}
	}

	records := make([]Record, len(raws))
	colors := make([]ReferenceColor, 0, len(raws))
	for i, raw := range raws {
		records[i] = ClassifyRecord(i, raw)
		if records[i].Status == RecordValid {
			colors = append(colors, records[i].Color)
		}
	}

	return records, ix.LoadColors(colors)
}

// LoadColors replaces the palette with cs. Entries with an empty name are
// dropped.
func (ix *Index) LoadColors(cs []ReferenceColor) error {
	ix.reset()

	for _, c := range cs {
		if c.Name == "" {
			continue
		}
		ix.colors = append(ix.colors, c)
		ix.labs = append(ix.labs, RGBToLab(c.RGB))
	}
	if len(ix.colors) == 0 {
		return ErrEmptyPalette
	}

	ix.loaded = true
	return nil
}

// Loaded reports whether the index holds at least one color.
func (ix *Index) Loaded() bool { return ix.loaded }

// Len returns the number of loaded colors.
func (ix *Index) Len() int { return len(ix.colors) }

// Colors returns the loaded colors in load order.
func (ix *Index) Colors() []ReferenceColor {
	return append([]ReferenceColor(nil), ix.colors...)
}

// FindClosest returns the palette entry nearest to c. On equal distances
// the entry loaded first wins.
func (ix *Index) FindClosest(c RGB) (MatchResult, error) {
	if !ix.loaded {
		return MatchResult{}, ErrNoMatch
	}

	lab := RGBToLab(c)
	best, bestD := -1, 0.0
	for i := range ix.colors {
		d := ix.metric(ix.labs[i], lab)
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}

	return MatchResult{Color: ix.colors[best], Distance: bestD, Sample: c}, nil
}

// Rank returns up to n palette entries ordered by distance to c, ties in
// load order.
func (ix *Index) Rank(c RGB, n int) ([]MatchResult, error) {
	if !ix.loaded {
		return nil, ErrNoMatch
	}

	lab := RGBToLab(c)
	res := make([]MatchResult, len(ix.colors))
	for i := range ix.colors {
		res[i] = MatchResult{Color: ix.colors[i], Distance: ix.metric(ix.labs[i], lab), Sample: c}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Distance < res[j].Distance })

	if n >= 0 && n < len(res) {
		res = res[:n]
	}
	return res, nil
}

func (ix *Index) reset() {
	ix.colors = nil
	ix.labs = nil
	ix.loaded = false
}
