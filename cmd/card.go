package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorcard/card"
	photo "github.com/mmuldo/colorcard/image"
)

var (
	cardCrop cropFlags
	cardText card.Text
	cardOut  string
)

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card IMAGE",
	Short: "Crop a photo, pick a color and draw a color card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e := photo.Load(args[0])
		if e != nil {
			return e
		}

		s, e := newSession()
		if e != nil {
			return e
		}
		b := src.Bounds()
		s.OpenImage(b.Dx(), b.Dy())
		if e := cardCrop.apply(s); e != nil {
			return e
		}

		x, y, e := cardCrop.samplePoint(s)
		if e != nil {
			return e
		}
		view := photo.Render(src, s.Viewport())
		if _, e := s.Sample(float64(x), float64(y), photo.Sample(view, x, y)); e != nil {
			logger.Println(e)
		}
		if !s.ExportReady() {
			return errors.New(s.Status())
		}
		m, _ := s.Match()

		fmt.Println(swatch(m.Color.RGB, s.Status()))

		layout := card.A4
		layout.DPI = viper.GetFloat64("card.dpi")
		faces, e := card.LoadFaces(viper.GetString("card.font"), layout)
		if e != nil {
			return e
		}
		crop := photo.Crop(src, s.Viewport().SourceRect(), layout.ImageSize())
		out := card.Compose(layout, faces, crop, &m, cardText)

		path := cardOut
		if path == "" {
			if path, e = s.Captions().Filename(m); e != nil {
				return e
			}
		}
		if e := writePNG(path, out); e != nil {
			return e
		}
		fmt.Println("wrote", path)
		return nil
	},
}

// writePNG encodes img to path. A failed close is reported since the
// data may not have reached the disk.
func writePNG(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	if e := png.Encode(f, img); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(cardCmd)

	cardCrop.register(cardCmd)
	cardCmd.Flags().StringVarP(&cardText.Title, "title", "t", "", "card title")
	cardCmd.Flags().StringVarP(&cardText.Comment, "comment", "c", "", "card comment")
	cardCmd.Flags().StringVarP(&cardOut, "out", "o", "", "output PNG (default from the card.filename template)")
	cardCmd.Flags().String("font", "", "OpenType font file for the card text")
	viper.BindPFlag("card.font", cardCmd.Flags().Lookup("font"))
}
