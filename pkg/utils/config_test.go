package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yaml := `
generator:
  dedup: false
  max_quantity: 42
output:
  base_name: "lote"
`
	if err := os.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Generator.Dedup {
		t.Error("dedup should be false")
	}
	if cfg.Generator.MaxQuantity != 42 {
		t.Errorf("max_quantity = %d, want 42", cfg.Generator.MaxQuantity)
	}
	if cfg.Output.BaseName != "lote" {
		t.Errorf("base_name = %q, want lote", cfg.Output.BaseName)
	}
	// Unset keys keep their defaults.
	if cfg.Display.SampleRows != 5 {
		t.Errorf("sample_rows = %d, want default 5", cfg.Display.SampleRows)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Clean", "numeros_br", "numeros_br"},
		{"Path separator", "a/b", "a_b"},
		{"Windows junk", `a:b*c?`, "a_b_c_"},
		{"Newline", "a\nb", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
