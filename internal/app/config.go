package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SheetPath string

	// Format selects the report output: "latex" or "text".
	Format string
	// Style selects the LaTeX report style ("standard", "compact",
	// "detailed"). Ignored for text output.
	Style string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SheetPath == "" {
		return nil, errors.New("SheetPath is a required configuration field and cannot be empty")
	}
	if cfg.Format != "latex" && cfg.Format != "text" {
		return nil, errors.New("Format must be 'latex' or 'text'")
	}
	return &cfg, nil
}
