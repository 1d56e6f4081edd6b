package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	photo "github.com/mmuldo/colorcard/image"
)

var (
	dominantCrop cropFlags
	dominantNum  int
)

// dominantCmd represents the dominant command
var dominantCmd = &cobra.Command{
	Use:   "dominant IMAGE",
	Short: "List the dominant colors of a crop with their closest palette names",
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
		if e := dominantCrop.apply(s); e != nil {
			return e
		}

		view := photo.Render(src, s.Viewport())
		total := view.Bounds().Dx() * view.Bounds().Dy()
		for _, cc := range photo.Dominant(view, dominantNum) {
			line := fmt.Sprintf("%s %5.1f%%", cc.Color.Hex(), 100*float64(cc.Count)/float64(total))
			if m, e := s.Palette().FindClosest(cc.Color); e == nil {
				line += fmt.Sprintf("  %s (ΔE %.2f)", m.Color.Name, m.Distance)
			}
			fmt.Println(swatch(cc.Color, line))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dominantCmd)

	dominantCrop.register(dominantCmd)
	dominantCmd.Flags().IntVarP(&dominantNum, "num", "n", 5, "number of colors")
}
