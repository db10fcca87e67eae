package utils

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintBanner prints the FoneGen banner
func PrintBanner(version string, dddCount int) {
	banner := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("FONE", pterm.NewStyle(pterm.FgLightGreen)),
		pterm.NewLettersFromStringWithStyle("GEN", pterm.NewStyle(pterm.FgLightYellow)),
	)
	banner.Render()

	pterm.DefaultCenter.Printf("v%s - Brazilian Mobile Number Generator\n", version)
	pterm.DefaultCenter.Println(pterm.LightYellow(fmt.Sprintf("Ninth digit always 9 | Valid DDDs: %d | Fictitious numbers only", dddCount)))
	pterm.Println()
}

// PrintCompactBanner prints a compact banner for CI/CD
func PrintCompactBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)).
		Printf(" FoneGen v%s ", version)
	pterm.Println()
}

// PrintSection prints a section header
func PrintSection(title string) {
	pterm.DefaultSection.Println(title)
}
