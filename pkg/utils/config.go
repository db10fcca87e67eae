package utils

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Output    OutputConfig    `yaml:"output"`
	Display   DisplayConfig   `yaml:"display"`
}

type GeneratorConfig struct {
	Dedup       bool `yaml:"dedup"`
	MaxQuantity int  `yaml:"max_quantity"`
}

type OutputConfig struct {
	Dir          string `yaml:"dir"`
	BaseName     string `yaml:"base_name"`
	WriteSummary bool   `yaml:"write_summary"`
}

type DisplayConfig struct {
	CompactBanner bool `yaml:"compact_banner"`
	SampleRows    int  `yaml:"sample_rows"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Dedup:       true,
			MaxQuantity: 100000,
		},
		Output: OutputConfig{
			Dir:          ".",
			BaseName:     "numeros_br",
			WriteSummary: true,
		},
		Display: DisplayConfig{
			CompactBanner: false,
			SampleRows:    5,
		},
	}
}
