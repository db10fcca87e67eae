package cmd

import (
	"fmt"
	"os"

	"fonegen/pkg/ddd"
	"fonegen/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debugMode bool
	cfg       *utils.Config
	version   = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "fonegen",
	Short: "Brazilian mobile number generator",
	Long:  `FoneGen - generates syntactically valid but fictitious Brazilian mobile numbers in E.164 and national formats.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debugMode)
		cfg = loadConfig()
		if cfg.Display.CompactBanner {
			utils.PrintCompactBanner(version)
		} else {
			utils.PrintBanner(version, ddd.Count())
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/default.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug output")
}

func loadConfig() *utils.Config {
	path := cfgFile
	if path == "" {
		path = "configs/default.yaml"
	}

	c, err := utils.LoadConfig(path)
	if err != nil {
		if cfgFile != "" {
			utils.Warning.Printf("Config %s not readable, using defaults\n", path)
		}
		return utils.DefaultConfig()
	}
	utils.Debug.Printf("Loaded config from %s\n", path)
	return c
}
