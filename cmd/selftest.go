package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"fonegen/pkg/ddd"
	"fonegen/pkg/generator"
	"fonegen/pkg/reporter"
	"fonegen/pkg/utils"

	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in sanity checks",
	Long: `Run a non-interactive check of the generator invariants:
local-number shape, dedup correctness, quantity correctness and file
round-trip. Nothing is written to the working directory.`,
	Run: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) {
	failed := 0
	check := func(name string, pass bool) {
		if pass {
			utils.Success.Printf("%s\n", name)
		} else {
			failed++
			utils.Error.Printf("%s\n", name)
		}
	}

	ctx := context.Background()

	// Local number shape: 9 digits, leading 9, never trivial.
	lg := generator.NewLocalNumberGenerator()
	n, err := lg.Generate()
	check("local number shape", err == nil && isWellFormedLocal(n))

	// Single-DDD batch: exact quantity, correct prefix.
	bg := generator.NewBatchGenerator()
	batch, err := bg.Generate(ctx, []string{"11"}, 10, true)
	pass := err == nil && len(batch.Records) == 10
	if pass {
		for _, rec := range batch.Records {
			if !strings.HasPrefix(rec.E164, "+5511") {
				pass = false
				break
			}
		}
	}
	check("single DDD batch", pass)

	// All-DDD batch: exact quantity, no duplicates.
	batch2, err := bg.Generate(ctx, ddd.All(), 50, true)
	pass = err == nil && len(batch2.Records) == 50
	if pass {
		seen := make(map[string]struct{}, 50)
		for _, rec := range batch2.Records {
			seen[rec.E164] = struct{}{}
		}
		pass = len(seen) == 50
	}
	check("all DDDs batch dedup", pass)

	// File round-trip in a temp dir.
	check("file round-trip", selftestFiles(batch))

	if failed > 0 {
		utils.Error.Printf("Self-test failed: %d check(s) did not pass\n", failed)
		os.Exit(1)
	}
	utils.Success.Println("Self-test passed")
}

func selftestFiles(batch *generator.Batch) bool {
	if batch == nil || len(batch.Records) < 5 {
		return false
	}

	tmpDir, err := os.MkdirTemp("", "fonegen_selftest")
	if err != nil {
		return false
	}
	defer os.RemoveAll(tmpDir)

	small := &generator.Batch{
		ID:        batch.ID,
		StartedAt: batch.StartedAt,
		Requested: 5,
		Attempts:  batch.Attempts,
		Records:   batch.Records[:5],
	}

	rep := reporter.NewReporter(filepath.Join(tmpDir, "teste_out"))
	if _, err := rep.WriteAll(small, []string{"11"}, false); err != nil {
		return false
	}

	csvPath := filepath.Join(tmpDir, "teste_out.csv")
	txtPath := filepath.Join(tmpDir, "teste_out.txt")
	if !utils.FileExists(csvPath) || !utils.FileExists(txtPath) {
		return false
	}

	csvData, err := os.ReadFile(csvPath)
	if err != nil || len(splitLines(string(csvData))) != 6 {
		return false
	}

	txtData, err := os.ReadFile(txtPath)
	if err != nil {
		return false
	}
	lines := splitLines(string(txtData))
	if len(lines) != 5 {
		return false
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "+55") {
			return false
		}
	}
	return true
}

func isWellFormedLocal(n string) bool {
	if len(n) != 9 || n[0] != '9' {
		return false
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return false
		}
	}
	return !generator.IsTrivial(n)
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
