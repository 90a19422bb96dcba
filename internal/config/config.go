// =============================================================================
// CSV to JSON Transformer - Configuration
// =============================================================================
//
// Optional YAML application configuration. Every field has a default, so the
// tool runs without a config file at all; a file only overrides the keys it
// names.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// LogLevel controls logging verbosity when --verbose is not set.
	// Valid values: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// ContinueOnError determines whether an I/O failure while converting one
	// file pair stops the whole batch (false) or is recorded and skipped
	// (true). Validation skips such as an existing output file never stop the
	// batch regardless of this setting.
	ContinueOnError bool `yaml:"continue_on_error"`

	// CleanupTempFiles removes the intermediate comma-delimited file written
	// by the delimiter normalization pass. Disable to keep it for debugging.
	CleanupTempFiles bool `yaml:"cleanup_temp_files"`

	// SummaryLog writes a run summary file after each batch.
	SummaryLog bool `yaml:"summary_log"`

	// SummaryDir is the directory for summary files. Empty means the current
	// working directory.
	SummaryDir string `yaml:"summary_dir"`

	// JSONIndent is the number of spaces per indentation level in generated
	// JSON documents.
	JSONIndent int `yaml:"json_indent"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		LogLevel:         "warn",
		ContinueOnError:  true,
		CleanupTempFiles: true,
		SummaryLog:       false,
		SummaryDir:       "",
		JSONIndent:       4,
	}
}

// Load reads a YAML configuration file on top of the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that the YAML schema itself cannot express.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.JSONIndent < 0 {
		return fmt.Errorf("json_indent must not be negative, got %d", c.JSONIndent)
	}
	return nil
}
