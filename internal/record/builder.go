package record

import (
	"shuttercheck/internal/brand"
	"shuttercheck/internal/metadata"
)

// Build constructs the canonical Photo for one file. It has no failure
// mode: fields the metadata cannot supply stay absent.
func Build(filename string, raw metadata.RawMetadata, scanOrder int) Photo {
	photo := Photo{
		Filename:  filename,
		Make:      textOrUnknown(raw.String("Make")),
		Model:     textOrUnknown(raw.String("Model")),
		ScanOrder: scanOrder,
	}

	if ts, key, ok := metadata.ParseTimestamp(raw, nil); ok {
		photo.CaptureTime = ts
		photo.TimeKey = key
	}

	if serial, ok := brand.ResolveSerial(raw, photo.Make); ok {
		photo.Serial = serial
	}

	counters := brand.ResolveCounters(raw)
	if counters.Primary != nil {
		photo.Primary = Counter{Value: counters.Primary.Value, Key: counters.Primary.Key, Present: true}
	}
	if counters.Secondary != nil {
		photo.Secondary = Counter{Value: counters.Secondary.Value, Key: counters.Secondary.Key, Present: true}
	}

	photo.Extras = buildExtras(raw)
	return photo
}

func buildExtras(raw metadata.RawMetadata) Extras {
	extras := Extras{
		Lens:     firstText(raw, "LensModel", "Lens"),
		ISO:      raw.String("ISO"),
		Aperture: firstText(raw, "Aperture", "FNumber"),
		Exposure: firstText(raw, "ShutterSpeed", "ExposureTime"),
	}
	width := raw.String("ImageWidth")
	height := raw.String("ImageHeight")
	if width != "" && height != "" {
		extras.Resolution = width + "x" + height
	}
	return extras
}

func firstText(raw metadata.RawMetadata, keys ...string) string {
	for _, key := range keys {
		if value := raw.String(key); value != "" {
			return value
		}
	}
	return ""
}

func textOrUnknown(s string) string {
	if s == "" {
		return UnknownText
	}
	return s
}
