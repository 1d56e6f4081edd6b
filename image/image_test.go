package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmuldo/colorcard/palette"
	"github.com/mmuldo/colorcard/viewport"
)

// halves returns a w x h image, red on the left half and blue on the right.
func halves(r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(r)
	mid := r.Min.X + r.Dx()/2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if x < mid {
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	f, e := os.Create(path)
	if e != nil {
		t.Fatal(e)
	}
	if e := png.Encode(f, halves(image.Rect(0, 0, 8, 4))); e != nil {
		t.Fatal(e)
	}
	f.Close()

	img, e := Load(path)
	if e != nil {
		t.Fatalf("Load: %v", e)
	}
	if d := cmp.Diff(image.Rect(0, 0, 8, 4), img.Bounds()); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}

	if _, e := Load(filepath.Join(dir, "missing.png")); e == nil {
		t.Error("Load of missing file succeeded")
	}
	if e := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("junk"), 0644); e != nil {
		t.Fatal(e)
	}
	if _, e := Load(filepath.Join(dir, "junk.png")); e == nil {
		t.Error("Load of junk succeeded")
	}
}

func TestRenderAndSample(t *testing.T) {
	for _, r := range []image.Rectangle{image.Rect(0, 0, 200, 100), image.Rect(50, 30, 250, 130)} {
		src := halves(r)
		vp := viewport.New(100)
		vp.Initialize(r.Dx(), r.Dy())

		view := Render(src, vp)
		if d := cmp.Diff(image.Rect(0, 0, 100, 100), view.Bounds()); d != "" {
			t.Fatalf("view bounds (-want +got):\n%s", d)
		}

		// the centered crop shows red on the left, blue on the right
		if got := Sample(view, 10, 50); got != (palette.RGB{R: 255}) {
			t.Errorf("%v: left sample %v", r, got)
		}
		if got := Sample(view, 90, 50); got != (palette.RGB{B: 255}) {
			t.Errorf("%v: right sample %v", r, got)
		}

		// panning fully right shows only the red half
		vp.Pan(1000, 0)
		view = Render(src, vp)
		if got := Sample(view, 90, 50); got != (palette.RGB{R: 255}) {
			t.Errorf("%v: panned sample %v", r, got)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	view := Render(halves(image.Rect(0, 0, 4, 4)), viewport.New(16))
	if got := Sample(view, 3, 3); got != (palette.RGB{}) {
		t.Errorf("empty viewport rendered %v", got)
	}
}

func TestCrop(t *testing.T) {
	src := halves(image.Rect(0, 0, 200, 100))
	vp := viewport.New(100)
	vp.Initialize(200, 100)
	vp.Pan(-1000, 0)

	out := Crop(src, vp.SourceRect(), 300)
	if d := cmp.Diff(image.Rect(0, 0, 300, 300), out.Bounds()); d != "" {
		t.Fatalf("crop bounds (-want +got):\n%s", d)
	}
	for _, p := range []image.Point{{5, 5}, {150, 150}, {294, 294}} {
		if got := Sample(out, p.X, p.Y); got != (palette.RGB{B: 255}) {
			t.Errorf("crop pixel %v = %v", p, got)
		}
	}

	if empty := Crop(src, viewport.Rect{}, 10); empty.Bounds().Dx() != 10 {
		t.Errorf("empty rect crop bounds %v", empty.Bounds())
	}
}

func TestRankColors(t *testing.T) {
	m := map[palette.RGB]int{
		{R: 1}: 3,
		{G: 1}: 10,
		{B: 1}: 3,
	}
	got := RankColors(m)
	want := ColorCountList{
		{palette.RGB{G: 1}, 10},
		{palette.RGB{B: 1}, 3},
		{palette.RGB{R: 1}, 3},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("RankColors (-want +got):\n%s", d)
	}
}

func TestGetColorsSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{10, 20, 30, 255})
	img.Set(1, 0, color.NRGBA{10, 20, 30, 255})
	got := GetColors(img)
	if d := cmp.Diff(map[palette.RGB]int{{R: 10, G: 20, B: 30}: 2}, got); d != "" {
		t.Errorf("GetColors (-want +got):\n%s", d)
	}
}

func TestDominant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.NRGBA{220, 20, 20, 255}
			if x >= 30 {
				c = color.NRGBA{20, 20, 220, 255}
			}
			img.Set(x, y, c)
		}
	}

	cc := Dominant(img, 2)
	if len(cc) == 0 || len(cc) > 2 {
		t.Fatalf("Dominant returned %d colors", len(cc))
	}
	if top := cc[0].Color; top.R <= top.B {
		t.Errorf("most common color %v is not the red area", top)
	}
	if len(cc) == 2 && cc[0].Count < cc[1].Count {
		t.Errorf("not ranked: %+v", cc)
	}

	if Dominant(img, 0) != nil {
		t.Error("Dominant(0) returned colors")
	}
}
