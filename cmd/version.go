package cmd

import (
	"fmt"
	"runtime"

	"fonegen/pkg/ddd"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		tableData := pterm.TableData{
			{"Property", "Value"},
			{"Version", version},
			{"Go Version", runtime.Version()},
			{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			{"Valid DDDs", fmt.Sprintf("%d", ddd.Count())},
		}

		pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
