// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"testing"
	"time"

	"shuttercheck/internal/metadata"
)

// NikonRaw builds raw metadata resembling exiftool output for a Nikon
// body. taken may be empty to produce an undated record.
func NikonRaw(model, taken string, shutter int64) metadata.RawMetadata {
	raw := metadata.RawMetadata{
		"Make":         "NIKON CORPORATION",
		"Model":        model,
		"SerialNumber": "6042788",
		"ShutterCount": float64(shutter),
	}
	if taken != "" {
		raw["DateTimeOriginal"] = taken
	}
	return raw
}

// SonyRaw builds raw metadata resembling exiftool output for a Sony body
// with the serial hidden in a MakerNote field.
func SonyRaw(model, taken string, imageNumber int64) metadata.RawMetadata {
	raw := metadata.RawMetadata{
		"Make":        "SONY",
		"Model":       model,
		"Sony_0xB001": "0x1A2B",
		"ImageNumber": float64(imageNumber),
	}
	if taken != "" {
		raw["DateTimeOriginal"] = taken
	}
	return raw
}

// MustTime parses an EXIF-style timestamp or fails the test.
func MustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, ok := metadata.ParseTimestampValue(value)
	if !ok {
		t.Fatalf("unparseable test timestamp %q", value)
	}
	return ts
}
