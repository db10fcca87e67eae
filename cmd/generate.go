package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"fonegen/pkg/ddd"
	"fonegen/pkg/generator"
	"fonegen/pkg/reporter"
	"fonegen/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fictitious mobile numbers",
	Long: `Generate a batch of syntactically valid Brazilian mobile numbers.

Numbers always carry the ninth digit (9) and never match trivial
patterns such as 999999999 or full ascending runs. Every flag left
unset is asked for interactively:

  fonegen generate                     # fully interactive
  fonegen generate -n 100 -d 11        # 100 numbers for DDD 11
  fonegen generate -n 500 --all -o lote

Results are written as <base>.csv (e164,nacional,ddd,numero) and
<base>.txt (one E.164 per line), only after the whole batch is ready.`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("count", "n", 0, "How many numbers to generate (prompts when omitted)")
	generateCmd.Flags().StringP("ddd", "d", "", "Restrict generation to a single area code (e.g. 11)")
	generateCmd.Flags().Bool("all", false, "Spread generation across all valid DDDs")
	generateCmd.Flags().StringP("output", "o", "", "Output base name (prompts when omitted)")
	generateCmd.Flags().Bool("no-dedup", false, "Allow duplicate numbers in the batch")
}

func runGenerate(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	dddFlag, _ := cmd.Flags().GetString("ddd")
	allDDDs, _ := cmd.Flags().GetBool("all")
	output, _ := cmd.Flags().GetString("output")
	noDedup, _ := cmd.Flags().GetBool("no-dedup")

	quantity := count
	if quantity <= 0 {
		quantity = askQuantity(cfg.Generator.MaxQuantity)
	} else if cfg.Generator.MaxQuantity > 0 && quantity > cfg.Generator.MaxQuantity {
		utils.Error.Printf("Quantity %d exceeds the configured maximum of %d\n", quantity, cfg.Generator.MaxQuantity)
		os.Exit(1)
	}

	var scope []string
	switch {
	case dddFlag != "":
		code := strings.TrimSpace(dddFlag)
		if !ddd.IsValid(code) {
			utils.Error.Printf("%q is not a valid Brazilian DDD\n", code)
			os.Exit(1)
		}
		scope = []string{code}
	case allDDDs:
		scope = ddd.All()
	default:
		scope = askScope()
	}

	base := strings.TrimSpace(output)
	if base == "" {
		base = askBaseName(cfg.Output.BaseName)
	}
	base = utils.SanitizeFilename(base)

	dedup := cfg.Generator.Dedup
	if noDedup {
		dedup = false
	}

	utils.Info.Printf("Generating %d numbers | DDD scope: %s | Dedup: %v\n", quantity, scopeLabel(scope), dedup)

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		cancel()
	}()

	progressBar, _ := pterm.DefaultProgressbar.
		WithTotal(quantity).
		WithTitle("Generating").
		WithShowCount(true).
		Start()

	bg := generator.NewBatchGenerator()
	bg.Progress = func() { progressBar.Increment() }

	batch, err := bg.Generate(ctx, scope, quantity, dedup)
	progressBar.Stop()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			utils.Warning.Println("Cancelled by user. No files written.")
			return
		}
		utils.Error.Printf("Generation failed: %v\n", err)
		os.Exit(1)
	}

	utils.Debug.Printf("Batch %s: %d attempts for %d records\n", batch.ID, batch.Attempts, len(batch.Records))

	if short := batch.Shortfall(); short > 0 {
		utils.Warning.Printf("Produced only %d of %d requested numbers after %d attempts\n",
			len(batch.Records), batch.Requested, batch.Attempts)
	}

	outBase := utils.TimestampedBase(base, scopeSuffix(scope))
	if dir := cfg.Output.Dir; dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			utils.Error.Printf("Cannot create output directory: %v\n", err)
			os.Exit(1)
		}
		outBase = filepath.Join(dir, outBase)
	}

	rep := reporter.NewReporter(outBase)
	paths, err := rep.WriteAll(batch, scope, cfg.Output.WriteSummary)
	if err != nil {
		utils.Error.Printf("Failed to save output files: %v\n", err)
		os.Exit(1)
	}

	utils.Success.Println("Files saved:")
	for _, p := range paths {
		pterm.Printf("  - %s\n", p)
	}

	printSample(batch, cfg.Display.SampleRows)

	utils.Success.Printf("Done: %d numbers generated in %d attempts (batch %s)\n",
		len(batch.Records), batch.Attempts, batch.ID)
}

func askQuantity(max int) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.Show("How many numbers to generate?")
		val, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || val < 1 {
			utils.Warning.Println("Enter a positive whole number.")
			continue
		}
		if max > 0 && val > max {
			utils.Warning.Printf("The maximum is %d.\n", max)
			continue
		}
		return val
	}
}

func askScope() []string {
	const (
		optSingle = "Single DDD"
		optAll    = "All valid DDDs"
	)

	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{optSingle, optAll}).
		Show("Generation mode")

	if choice == optAll {
		return ddd.All()
	}
	return []string{askDDD()}
}

func askDDD() string {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.Show("Area code (e.g. 11)")
		code := strings.TrimSpace(raw)
		if ddd.IsValid(code) {
			return code
		}
		utils.Warning.Printf("%q is not a valid Brazilian DDD. Try again.\n", code)
	}
}

func askBaseName(def string) string {
	raw, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(def).
		Show("Output base name")

	name := strings.TrimSpace(raw)
	if name == "" {
		return def
	}
	return name
}

func scopeLabel(scope []string) string {
	if len(scope) == 1 {
		return scope[0]
	}
	return "all"
}

func scopeSuffix(scope []string) string {
	if len(scope) == 1 {
		return "ddd_" + scope[0]
	}
	return "todos"
}

func printSample(batch *generator.Batch, rows int) {
	if rows <= 0 || len(batch.Records) == 0 {
		return
	}
	if rows > len(batch.Records) {
		rows = len(batch.Records)
	}

	utils.PrintSection("Sample")
	tableData := pterm.TableData{{"E.164", "National"}}
	for _, rec := range batch.Records[:rows] {
		tableData = append(tableData, []string{rec.E164, rec.Nacional})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
