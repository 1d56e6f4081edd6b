package card

import (
	"fmt"
	"io/ioutil"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces are the font faces used on a card.
type Faces struct {
	Title, Comment, Value, Name font.Face
}

// Text sizes in pixels at 3 px/mm.
const (
	titleSize   = 28
	commentSize = 20
	valueSize   = 30
	nameSize    = 25
)

// LoadFaces reads the OpenType font at path, or uses Go Regular when path
// is empty, and sizes it for l.
func LoadFaces(path string, l Layout) (*Faces, error) {
	data := goregular.TTF
	if path != "" {
		b, e := ioutil.ReadFile(path)
		if e != nil {
			return nil, e
		}
		data = b
	}

	f, e := opentype.Parse(data)
	if e != nil {
		return nil, fmt.Errorf("parsing font %q: %w", path, e)
	}

	k := l.DPI / 3
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size * k,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fs Faces
	for _, s := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fs.Title, titleSize},
		{&fs.Comment, commentSize},
		{&fs.Value, valueSize},
		{&fs.Name, nameSize},
	} {
		if *s.dst, e = face(s.size); e != nil {
			return nil, e
		}
	}
	return &fs, nil
}
