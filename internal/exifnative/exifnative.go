// Package exifnative extracts raw metadata in-process by decoding EXIF
// headers directly, for hosts without exiftool installed. It reads the
// standard EXIF tag set only; MakerNote counters that exiftool would decode
// are mostly invisible to it, so counter coverage is reduced on brands that
// hide counts there.
package exifnative

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"shuttercheck/internal/metadata"
)

// Extract decodes the EXIF block of the file at path into a raw tag map.
func Extract(path string) (metadata.RawMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exif extract: %w", err)
	}
	defer f.Close()

	decoded, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("exif extract %s: %w", path, err)
	}

	collector := &tagCollector{raw: make(metadata.RawMetadata)}
	if err := decoded.Walk(collector); err != nil {
		return nil, fmt.Errorf("exif walk %s: %w", path, err)
	}
	if len(collector.raw) == 0 {
		return nil, fmt.Errorf("exif extract %s: no tags", path)
	}
	return collector.raw, nil
}

type tagCollector struct {
	raw metadata.RawMetadata
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	key := string(name)
	if key == "" || tag == nil {
		return nil
	}
	if value, err := tag.StringVal(); err == nil {
		c.raw[key] = value
		return nil
	}
	if n, err := tag.Int64(0); err == nil {
		c.raw[key] = n
		return nil
	}
	if num, den, err := tag.Rat2(0); err == nil {
		c.raw[key] = fmt.Sprintf("%d/%d", num, den)
		return nil
	}
	c.raw[key] = tag.String()
	return nil
}
