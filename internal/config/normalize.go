package config

import "strings"

func (c *Config) normalize() {
	c.normalizeScan()
	c.normalizeExtraction()
	c.normalizeAnalysis()
	c.normalizeLogging()
}

func (c *Config) normalizeScan() {
	cleaned := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cleaned = append(cleaned, ext)
	}
	if len(cleaned) == 0 {
		cleaned = defaultExtensions()
	}
	c.Scan.Extensions = cleaned
}

func (c *Config) normalizeExtraction() {
	c.Extraction.ExiftoolBinary = strings.TrimSpace(c.Extraction.ExiftoolBinary)
	if c.Extraction.ExiftoolBinary == "" {
		c.Extraction.ExiftoolBinary = defaultExiftoolBinary
	}
	if c.Extraction.TimeoutSeconds <= 0 {
		c.Extraction.TimeoutSeconds = defaultExtractionTimeout
	}
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.ExpectedModel = strings.TrimSpace(c.Analysis.ExpectedModel)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
