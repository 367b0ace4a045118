// Package config loads, normalizes, and validates shuttercheck's TOML
// configuration.
//
// Configuration sections by subsystem:
//   - Scan: file extensions and folder traversal
//   - Extraction: exiftool binary selection and the native fallback
//   - Analysis: model filtering and anomaly thresholds
//   - Logging: log format and level
//
// Load resolves the file path (explicit flag, then the user config dir,
// then a project-local file), overlays the file onto defaults, and
// normalizes and validates the result. A missing file is fine: defaults
// alone are a usable configuration.
package config
