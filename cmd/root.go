/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  = log.New(os.Stderr, "colorcard: ", 0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorcard",
	Short: "Match photo colors against a palette of named colors",
	Long: `colorcard crops a photo into a square viewport, samples a pixel of the
crop, finds the closest named color of a palette and draws a printable
color card from the result.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetDefault("palette", "color.json")
	viper.SetDefault("metric", "simplified")
	viper.SetDefault("viewport.size", 400)
	viper.SetDefault("zoom.in", 1.05)
	viper.SetDefault("zoom.out", 0.95)
	viper.SetDefault("card.dpi", 3)
	viper.SetDefault("card.font", "")
	viper.SetDefault("card.filename", "")
	viper.SetDefault("card.status", "")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorcard.yaml)")
	rootCmd.PersistentFlags().StringP("palette", "p", "", "palette JSON file")
	rootCmd.PersistentFlags().String("metric", "", "color metric: simplified or ciede2000")
	viper.BindPFlag("palette", rootCmd.PersistentFlags().Lookup("palette"))
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			logger.Fatal(e)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorcard")
	}

	viper.SetEnvPrefix("colorcard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e == nil {
		logger.Println("using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Fatal(fmt.Errorf("reading %s: %w", cfgFile, e))
	}
}
