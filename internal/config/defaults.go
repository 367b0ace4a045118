package config

const (
	defaultExiftoolBinary    = "exiftool"
	defaultExtractionTimeout = 120
	defaultRegressionSlack   = 1000
	defaultSecondaryRatio    = 1.5
	defaultSecondaryOffset   = 1000
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

func defaultExtensions() []string {
	return []string{
		".jpg", ".jpeg", ".nef", ".arw", ".cr2", ".cr3", ".raf", ".rw2", ".orf", ".dng", ".heic", ".tif", ".tiff",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions: defaultExtensions(),
			Recursive:  false,
		},
		Extraction: Extraction{
			ExiftoolBinary: defaultExiftoolBinary,
			UseExiftool:    true,
			TimeoutSeconds: defaultExtractionTimeout,
		},
		Analysis: Analysis{
			ExpectedModel:     "",
			RequireModelMatch: false,
			RegressionSlack:   defaultRegressionSlack,
			SecondaryRatio:    defaultSecondaryRatio,
			SecondaryOffset:   defaultSecondaryOffset,
			SimpleDecrease:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
