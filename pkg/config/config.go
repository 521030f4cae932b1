package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents classifier CLI configuration. It only covers the I/O
// shell: which CSV columns carry the data and how results are printed. The
// scoring scheme itself has no knobs.
type Config struct {
	// Input file settings
	Input InputConfig `yaml:"input"`

	// Console output settings
	Output OutputConfig `yaml:"output"`
}

// InputConfig names the required columns of training and test files.
type InputConfig struct {
	TagColumn     string `yaml:"tag_column"`
	ContentColumn string `yaml:"content_column"`
}

// OutputConfig contains report formatting settings.
type OutputConfig struct {
	// ScorePrecision is the number of significant digits used when
	// printing log-probability scores.
	ScorePrecision int `yaml:"score_precision"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			TagColumn:     "tag",
			ContentColumn: "content",
		},
		Output: OutputConfig{
			ScorePrecision: 3,
		},
	}
}

// LoadConfig loads configuration from a YAML file. An empty path returns
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig writes the configuration to a YAML file.
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.TagColumn == "" {
		return fmt.Errorf("tag_column must not be empty")
	}
	if c.Input.ContentColumn == "" {
		return fmt.Errorf("content_column must not be empty")
	}
	if c.Input.TagColumn == c.Input.ContentColumn {
		return fmt.Errorf("tag_column and content_column must name different columns")
	}
	if c.Output.ScorePrecision < 1 || c.Output.ScorePrecision > 17 {
		return fmt.Errorf("score_precision must be between 1 and 17")
	}
	return nil
}
