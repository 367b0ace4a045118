// Package record assembles the canonical per-file photo record from raw
// metadata. Building is pure: sparse input produces a record with absent
// fields, never an error.
package record

import (
	"time"
)

// UnknownText marks a free-text field the metadata did not supply.
const UnknownText = "unknown"

// Counter is a resolved counter value plus the raw tag that supplied it.
type Counter struct {
	Value   int64  `json:"value"`
	Key     string `json:"key"`
	Present bool   `json:"present"`
}

// Extras carries display-only capture details surfaced in reports. They play
// no part in anomaly analysis.
type Extras struct {
	Lens       string `json:"lens,omitempty"`
	ISO        string `json:"iso,omitempty"`
	Aperture   string `json:"aperture,omitempty"`
	Exposure   string `json:"exposure,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// Photo is the canonical record for one analyzed file. It is immutable once
// built; one raw metadata map maps to exactly one Photo.
type Photo struct {
	Filename    string    `json:"filename"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	CaptureTime time.Time `json:"capture_time,omitzero"`
	TimeKey     string    `json:"time_key,omitempty"`
	Serial      string    `json:"serial,omitempty"`
	Primary     Counter   `json:"counter_primary"`
	Secondary   Counter   `json:"counter_secondary"`
	Extras      Extras    `json:"extras"`

	// ScanOrder is the record's position in the original enumeration,
	// used as the stable tie-breaker during chronological ordering.
	ScanOrder int `json:"scan_order"`
}

// Dated reports whether the record carries a parsed capture time.
func (p Photo) Dated() bool {
	return !p.CaptureTime.IsZero()
}
