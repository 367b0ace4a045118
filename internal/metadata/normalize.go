package metadata

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultTimestampKeys is the priority order for capture-time resolution:
// the original capture field first, then the digitized field, then the
// generic modification field.
var DefaultTimestampKeys = []string{"DateTimeOriginal", "CreateDate", "ModifyDate"}

// timestampLayouts covers the textual encodings cameras emit for
// YYYY:MM:DD HH:MM:SS with an optional zone suffix.
var timestampLayouts = []string{
	"2006:01:02 15:04:05-0700",
	"2006:01:02 15:04:05-07:00",
	"2006:01:02 15:04:05",
}

// ParseCounter normalizes a raw tag value into a non-negative integer
// counter. It accepts plain integers, floats, rational text of the form
// "N/D" (floor(N/D), with D defaulting to 1 when absent, empty, or zero),
// and decimal strings decorated with thousands separators or trailing unit
// text. Anything that yields no numeric token reports absent.
func ParseCounter(value any) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return nonNegative(int64(v))
	case int64:
		return nonNegative(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return nonNegative(int64(math.Floor(v)))
	case string:
		return parseCounterString(v)
	default:
		return parseCounterString(Stringify(v))
	}
}

func parseCounterString(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, okN := parseDecimal(num)
		if !okN {
			return 0, false
		}
		d, okD := parseDecimal(den)
		if !okD || d == 0 {
			d = 1
		}
		return nonNegative(int64(math.Floor(n / d)))
	}

	n, ok := parseDecimal(s)
	if !ok {
		return 0, false
	}
	return nonNegative(int64(math.Floor(n)))
}

// parseDecimal extracts a decimal number from text that may carry thousands
// separators or unit suffixes ("12,345", "6042 shots").
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")

	var b strings.Builder
	for _, r := range s {
		if r == ',' || r == '_' {
			continue
		}
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || strings.Trim(cleaned, ".") == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func nonNegative(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	return n, true
}

// ParseTimestamp resolves a capture time from raw metadata by trying the
// candidate keys in priority order and returning the first value that
// parses, along with the tag name that supplied it. Timezone-naive values
// are interpreted as UTC; an explicit offset is preserved as encoded.
func ParseTimestamp(raw RawMetadata, keys []string) (time.Time, string, bool) {
	if len(keys) == 0 {
		keys = DefaultTimestampKeys
	}
	for _, key := range keys {
		value, ok := raw.Lookup(key)
		if !ok {
			continue
		}
		if ts, parsed := ParseTimestampValue(value); parsed {
			return ts, key, true
		}
	}
	return time.Time{}, "", false
}

// ParseTimestampValue parses a single raw value as a capture timestamp.
func ParseTimestampValue(value any) (time.Time, bool) {
	s := Stringify(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if strings.Contains(layout, "-07") {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
			continue
		}
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a timestamp back into the canonical textual form.
// The output round-trips through ParseTimestampValue to the same instant.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006:01:02 15:04:05-0700")
}
