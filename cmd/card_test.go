package cmd

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{200, 10, 20, 255})

	path := filepath.Join(dir, "card.png")
	if e := writePNG(path, src); e != nil {
		t.Fatal(e)
	}
	f, e := os.Open(path)
	if e != nil {
		t.Fatal(e)
	}
	defer f.Close()
	got, e := png.Decode(f)
	if e != nil {
		t.Fatalf("decode: %v", e)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v", got.Bounds())
	}
	if r, g, b, _ := got.At(1, 1).RGBA(); r>>8 != 200 || g>>8 != 10 || b>>8 != 20 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGErrors(t *testing.T) {
	dir := t.TempDir()
	if e := writePNG(filepath.Join(dir, "missing", "card.png"), image.NewRGBA(image.Rect(0, 0, 1, 1))); e == nil {
		t.Error("write into a missing directory succeeded")
	}
	// png rejects empty images
	if e := writePNG(filepath.Join(dir, "empty.png"), image.NewRGBA(image.Rect(0, 0, 0, 0))); e == nil {
		t.Error("empty image encoded")
	}
}
