package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.RegressionSlack < 0 {
		return errors.New("analysis.regression_slack must not be negative")
	}
	if c.Analysis.SecondaryRatio < 0 {
		return errors.New("analysis.secondary_ratio must not be negative")
	}
	if c.Analysis.SecondaryOffset < 0 {
		return errors.New("analysis.secondary_offset must not be negative")
	}
	if c.Analysis.RequireModelMatch && c.Analysis.ExpectedModel == "" {
		return errors.New("analysis.expected_model must be set when analysis.require_model_match is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
