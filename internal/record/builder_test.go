package record

import (
	"testing"
	"time"

	"shuttercheck/internal/metadata"
)

func TestBuildFullRecord(t *testing.T) {
	raw := metadata.RawMetadata{
		"Make":             "NIKON CORPORATION",
		"Model":            "NIKON Z 6",
		"DateTimeOriginal": "2021:08:02 14:05:59",
		"SerialNumber":     "6042788",
		"ShutterCount":     float64(18230),
		"ImageNumber":      "882",
		"LensModel":        "NIKKOR Z 24-70mm f/4 S",
		"ISO":              float64(400),
		"FNumber":          float64(5.6),
		"ExposureTime":     "1/250",
		"ImageWidth":       float64(6048),
		"ImageHeight":      float64(4024),
	}

	photo := Build("DSC_0001.NEF", raw, 3)

	if photo.Filename != "DSC_0001.NEF" || photo.ScanOrder != 3 {
		t.Fatalf("identity fields wrong: %+v", photo)
	}
	if photo.Model != "NIKON Z 6" {
		t.Fatalf("unexpected model %q", photo.Model)
	}
	if !photo.Dated() {
		t.Fatal("expected a dated record")
	}
	want := time.Date(2021, time.August, 2, 14, 5, 59, 0, time.UTC)
	if !photo.CaptureTime.Equal(want) {
		t.Fatalf("unexpected capture time %v", photo.CaptureTime)
	}
	if photo.TimeKey != "DateTimeOriginal" {
		t.Fatalf("unexpected time key %q", photo.TimeKey)
	}
	if photo.Serial != "6042788" {
		t.Fatalf("unexpected serial %q", photo.Serial)
	}
	if !photo.Primary.Present || photo.Primary.Value != 18230 || photo.Primary.Key != "ShutterCount" {
		t.Fatalf("unexpected primary counter %+v", photo.Primary)
	}
	if !photo.Secondary.Present || photo.Secondary.Value != 882 || photo.Secondary.Key != "ImageNumber" {
		t.Fatalf("unexpected secondary counter %+v", photo.Secondary)
	}
	if photo.Extras.Resolution != "6048x4024" {
		t.Fatalf("unexpected resolution %q", photo.Extras.Resolution)
	}
	if photo.Extras.Exposure != "1/250" {
		t.Fatalf("unexpected exposure %q", photo.Extras.Exposure)
	}
}

func TestBuildSparseRecordDegradesToAbsent(t *testing.T) {
	photo := Build("IMG_0001.JPG", metadata.RawMetadata{}, 0)

	if photo.Make != UnknownText || photo.Model != UnknownText {
		t.Fatalf("expected unknown make/model, got %q %q", photo.Make, photo.Model)
	}
	if photo.Dated() {
		t.Fatal("expected undated record")
	}
	if photo.Serial != "" {
		t.Fatalf("expected absent serial, got %q", photo.Serial)
	}
	if photo.Primary.Present || photo.Secondary.Present {
		t.Fatalf("expected absent counters, got %+v %+v", photo.Primary, photo.Secondary)
	}
}

func TestBuildMalformedFieldsDoNotAbort(t *testing.T) {
	raw := metadata.RawMetadata{
		"Model":            "ILCE-7M3",
		"DateTimeOriginal": "not a date",
		"ShutterCount":     "unknown",
	}
	photo := Build("A7300001.ARW", raw, 1)
	if photo.Dated() {
		t.Fatal("malformed date must degrade to absent")
	}
	if photo.Primary.Present {
		t.Fatal("malformed counter must degrade to absent")
	}
	if photo.Model != "ILCE-7M3" {
		t.Fatalf("unexpected model %q", photo.Model)
	}
}
