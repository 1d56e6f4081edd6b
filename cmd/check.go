package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorcard/palette"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the palette file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("palette")
		f, e := os.Open(path)
		if e != nil {
			return e
		}
		defer f.Close()

		records, e := palette.NewIndex(nil).Load(f)
		valid := 0
		for _, r := range records {
			if r.Status == palette.RecordValid {
				valid++
				continue
			}
			fmt.Printf("entry %d: %s: %s\n", r.Index, r.Status, r.Reason)
		}
		fmt.Printf("%s: %d of %d entries usable\n", path, valid, len(records))
		return e
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
