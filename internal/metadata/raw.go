package metadata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RawMetadata is the flat tag map reported for one file by the extraction
// layer. It is read-only to everything downstream of extraction.
type RawMetadata map[string]any

// Lookup returns the value stored under key, if any.
func (m RawMetadata) Lookup(key string) (any, bool) {
	value, ok := m[key]
	return value, ok
}

// String returns the trimmed string form of the value stored under key, or
// the empty string when the key is absent.
func (m RawMetadata) String(key string) string {
	value, ok := m[key]
	if !ok {
		return ""
	}
	return Stringify(value)
}

// SortedKeys returns the tag names in lexical order. Map iteration order is
// not stable across runs; resolvers iterate these keys so field selection is
// deterministic.
func (m RawMetadata) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Stringify renders a raw tag value as trimmed text. Floats that carry no
// fractional part print as integers, matching how extraction tools report
// whole-number tags.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
