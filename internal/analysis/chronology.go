package analysis

import (
	"sort"
	"strings"

	"shuttercheck/internal/record"
)

// FilterByModel drops records whose model does not match expected. When
// require is false or expected is empty the input is returned untouched.
// Matching is case-insensitive on the full model string.
func FilterByModel(photos []record.Photo, expected string, require bool) (kept []record.Photo, removed int) {
	expected = strings.TrimSpace(expected)
	if !require || expected == "" {
		return photos, 0
	}
	kept = make([]record.Photo, 0, len(photos))
	for _, p := range photos {
		if strings.EqualFold(strings.TrimSpace(p.Model), expected) {
			kept = append(kept, p)
			continue
		}
		removed++
	}
	return kept, removed
}

// OrderChronologically returns the records sorted by capture time. Undated
// records sort after all dated ones; ties and undated runs preserve the
// original scan order.
func OrderChronologically(photos []record.Photo) []record.Photo {
	ordered := make([]record.Photo, len(photos))
	copy(ordered, photos)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.Dated() != b.Dated():
			return a.Dated()
		case !a.Dated():
			return a.ScanOrder < b.ScanOrder
		case !a.CaptureTime.Equal(b.CaptureTime):
			return a.CaptureTime.Before(b.CaptureTime)
		default:
			return a.ScanOrder < b.ScanOrder
		}
	})
	return ordered
}

// CountDated reports how many records are usable for chronology.
func CountDated(photos []record.Photo) int {
	dated := 0
	for _, p := range photos {
		if p.Dated() {
			dated++
		}
	}
	return dated
}
