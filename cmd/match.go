package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorcard/palette"
)

var top int

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match R G B",
	Short: "Find the palette colors closest to an RGB value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ch [3]uint8
		for i, a := range args {
			v, e := strconv.ParseUint(a, 10, 8)
			if e != nil {
				return fmt.Errorf("channel %q: expected 0-255", a)
			}
			ch[i] = uint8(v)
		}
		c := palette.RGB{R: ch[0], G: ch[1], B: ch[2]}

		s, e := newSession()
		if e != nil {
			return e
		}
		ms, e := s.Palette().Rank(c, top)
		if e != nil {
			return fmt.Errorf("%s: %w", s.Status(), e)
		}

		fmt.Println(swatch(c, c.String()+" "+c.Hex()))
		for _, m := range ms {
			fmt.Println(swatch(m.Color.RGB, fmt.Sprintf("%s %s ΔE %.2f", m.Color.Name, m.Color.Hex(), m.Distance)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVarP(&top, "top", "n", 1, "number of matches to list")
}
